// Package report renders trial results for the outside world: a
// TTY-aware console reporter and a SQLite sink for persisted runs.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/typetrial/internal/trial"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// Console writes human-readable trial lines. Color escape codes are
// emitted only when the writer is a terminal.
type Console struct {
	w     io.Writer
	color bool
}

func NewConsole(w io.Writer) *Console {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{w: w, color: color}
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + colorReset
}

// Trial renders one result: a pass line with the success counter, or the
// structured failure record.
func (c *Console) Trial(res trial.Result) {
	if res.Passed() {
		fmt.Fprintf(c.w, "%s %s %s (%d/%d draws)\n",
			c.paint(colorGreen, "PASS"), res.Kind, res.Name, res.Successes, res.Successes)
		return
	}
	fmt.Fprintf(c.w, "%s %s %s after %d successful draws\n%s\n",
		c.paint(colorRed, "FAIL"), res.Kind, res.Name, res.Successes, res.Failure.Error())
}

// Diag renders a diagnostic warning or verbose trace line.
func (c *Console) Diag(format string, args ...any) {
	fmt.Fprintf(c.w, "%s\n", c.paint(colorGray, fmt.Sprintf(format, args...)))
}
