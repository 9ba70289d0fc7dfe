package trial

import (
	"fmt"
	"strings"

	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/value"
)

// FailureKind classifies why a trial failed.
type FailureKind string

const (
	// FailSpecNotFound: the descriptor source has no signature for the
	// requested function.
	FailSpecNotFound FailureKind = "spec_not_found"

	// FailSpecMismatch: the two implementations' signatures are not
	// structurally equivalent. Surfaced before any draws.
	FailSpecMismatch FailureKind = "spec_mismatch"

	// FailValidation: a produced output does not satisfy its validator.
	FailValidation FailureKind = "validation_failure"

	// FailDivergence: two implementations produced different outputs, or
	// one output is invalid while the other is not.
	FailDivergence FailureKind = "result_divergence"

	// FailInvalidAccepted: the implementation completed normally on
	// deliberately invalid input.
	FailInvalidAccepted FailureKind = "invalid_input_accepted"
)

// Failure is the single structured record a failed trial emits for the
// reporting layer to render.
type Failure struct {
	Kind     FailureKind
	Input    value.Value
	Outputs  []value.Value
	Expected descriptor.Descriptor
	Message  string
}

func (f *Failure) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", f.Kind, f.Message)
	if f.Input != nil {
		fmt.Fprintf(&b, "\n  input: %s", f.Input.Inspect())
	}
	for i, out := range f.Outputs {
		if out == nil {
			continue
		}
		label := "output"
		if len(f.Outputs) > 1 {
			label = fmt.Sprintf("output %c", 'A'+i)
		}
		fmt.Fprintf(&b, "\n  %s: %s (%s)", label, out.Inspect(), value.TypeName(out))
	}
	if f.Expected != nil {
		fmt.Fprintf(&b, "\n  expected: %s", f.Expected.String())
	}
	return b.String()
}

// HarnessFailure is an assertion-level failure raised by the harness
// itself or by nested checks inside an implementation wrapper. It
// propagates verbatim through the trial loop and is never reinterpreted
// as an expected rejection of invalid input.
type HarnessFailure struct {
	Msg string
}

func (h HarnessFailure) Error() string { return h.Msg }

// Assert panics with a HarnessFailure when cond is false. Implementation
// wrappers can use it for nested equality checks that must abort the
// whole trial rather than count as a rejection.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(HarnessFailure{Msg: fmt.Sprintf(format, args...)})
	}
}
