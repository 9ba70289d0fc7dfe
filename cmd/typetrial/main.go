package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/funvibe/typetrial/internal/config"
	"github.com/funvibe/typetrial/internal/gen"
	"github.com/funvibe/typetrial/internal/report"
	"github.com/funvibe/typetrial/internal/source"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [options]

Commands:
  describe [-I dir] <file.proto>...            list derived signatures and messages
  sample   [-I dir] [-n N] [-seed S] <file.proto> <message>
                                               print N generated values for a message
  help                                         show this message

Options:
  -I dir       add a proto import path (repeatable)
  -n N         number of samples (default 5)
  -seed S      fixed generator seed
  -config f    load trial configuration from f
`, os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "describe":
		os.Exit(runDescribe(os.Args[2:]))
	case "sample":
		os.Exit(runSample(os.Args[2:]))
	case "help", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

// cliOptions are the flags shared by both commands.
type cliOptions struct {
	importPaths []string
	samples     int
	seed        int64
	rest        []string
}

func parseOptions(args []string) (cliOptions, error) {
	opts := cliOptions{samples: 5}
	i := 0
	for i < len(args) {
		arg := args[i]
		switch arg {
		case "-I":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-I requires a directory")
			}
			opts.importPaths = append(opts.importPaths, args[i+1])
			i += 2
		case "-n":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-n requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 1 {
				return opts, fmt.Errorf("invalid sample count %q", args[i+1])
			}
			opts.samples = n
			i += 2
		case "-seed":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-seed requires a number")
			}
			s, err := strconv.ParseInt(args[i+1], 10, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid seed %q", args[i+1])
			}
			opts.seed = s
			i += 2
		case "-config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-config requires a file")
			}
			cfg, err := config.Load(args[i+1])
			if err != nil {
				return opts, err
			}
			if cfg.TrialCount > 0 {
				opts.samples = cfg.TrialCount
			}
			if cfg.Seed != 0 {
				opts.seed = cfg.Seed
			}
			i += 2
		default:
			opts.rest = append(opts.rest, arg)
			i++
		}
	}
	return opts, nil
}

func runDescribe(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(opts.rest) == 0 {
		fmt.Fprintln(os.Stderr, "describe: at least one .proto file required")
		return 1
	}

	fs, err := source.ParseProtoFiles(opts.importPaths, opts.rest...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, name := range sortedMessages(fs) {
		d, _ := fs.Message(name)
		fmt.Printf("message %s\n  %s\n", name, d.String())
	}
	for _, target := range sortedSignatures(fs) {
		sig, _ := fs.Signature(target)
		fmt.Printf("rpc %s %s\n", target, sig.String())
	}
	return 0
}

func runSample(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(opts.rest) != 2 {
		fmt.Fprintln(os.Stderr, "sample: expected <file.proto> <message>")
		return 1
	}

	fs, err := source.ParseProtoFiles(opts.importPaths, opts.rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	d, ok := fs.Message(opts.rest[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "message %s not found in %s\n", opts.rest[1], opts.rest[0])
		return 1
	}

	console := report.NewConsole(os.Stdout)
	g := gen.New(gen.Options{
		Resolver: fs,
		Seed:     opts.seed,
		Diag:     func(format string, a ...any) { console.Diag(format, a...) },
	})

	stream := g.Generator(d)
	for i := 0; i < opts.samples; i++ {
		fmt.Println(stream.Draw().Inspect())
	}
	return 0
}

func sortedMessages(fs *source.FileSet) []string {
	names := fs.MessageNames()
	sort.Strings(names)
	return names
}

func sortedSignatures(fs *source.FileSet) []string {
	targets := fs.SignatureTargets()
	sort.Strings(targets)
	return targets
}
