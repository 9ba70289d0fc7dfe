// Package trial drives repeated generator draws against implementations
// under test. Three trial kinds exist: conformance (outputs satisfy the
// return descriptor), cross-implementation (two implementations agree on
// identical inputs), and robustness (invalid inputs are rejected).
//
// Execution is single-threaded and strictly sequential: draws, calls and
// validations happen one sample at a time, and the success counter is a
// scoped cell owned by the running trial alone.
package trial

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/gen"
	"github.com/funvibe/typetrial/internal/source"
	"github.com/funvibe/typetrial/internal/validate"
	"github.com/funvibe/typetrial/internal/value"
)

// DefaultTrialCount bounds the number of draws per trial unless
// configured otherwise.
const DefaultTrialCount = 100

// Kind names a trial kind.
type Kind string

const (
	Conformance Kind = "conformance"
	Cross       Kind = "cross"
	Robustness  Kind = "robustness"
)

// Impl is an implementation under test: an opaque callable applied to N
// positional arguments, returning a value or an error signal.
type Impl func(args []value.Value) (value.Value, error)

// DiagFunc receives diagnostics and verbose per-draw traces.
type DiagFunc func(format string, args ...any)

// Options configure a Runner.
type Options struct {
	// TrialCount is the number of draws per trial. Zero means
	// DefaultTrialCount.
	TrialCount int

	// VerboseTrace emits one diagnostic line per draw.
	VerboseTrace bool

	// Seed fixes generator seeds for reproducible trials. Zero draws a
	// fresh seed per stream.
	Seed int64

	// Resolver resolves remote references during generation and
	// validation.
	Resolver descriptor.Resolver

	// Diag receives diagnostics. Nil discards them.
	Diag DiagFunc
}

// Result is the outcome of one trial.
type Result struct {
	ID        uuid.UUID
	Kind      Kind
	Name      string
	Successes int
	Failure   *Failure
}

// Passed reports whether the trial completed all draws without failure.
func (r Result) Passed() bool { return r.Failure == nil }

// counter is the scoped success cell of one running trial. It is created
// at trial entry and its value is captured into the result before the
// trial returns, panic or not. Nothing outside the trial ever sees it.
type counter struct {
	n int
}

func (c *counter) increment() { c.n++ }

// Runner executes trials.
type Runner struct {
	gen   *gen.Synthesizer
	val   *validate.Synthesizer
	count int
	trace bool
	diag  DiagFunc
}

func NewRunner(opts Options) *Runner {
	diag := opts.Diag
	if diag == nil {
		diag = func(string, ...any) {}
	}
	count := opts.TrialCount
	if count <= 0 {
		count = DefaultTrialCount
	}
	return &Runner{
		gen: gen.New(gen.Options{
			Resolver: opts.Resolver,
			Seed:     opts.Seed,
			Diag:     gen.DiagFunc(diag),
		}),
		val: validate.New(validate.Options{
			Resolver: opts.Resolver,
			Diag:     validate.DiagFunc(diag),
		}),
		count: count,
		trace: opts.VerboseTrace,
		diag:  diag,
	}
}

// Conformance draws input tuples, invokes the implementation and checks
// each output against the return descriptor.
func (r *Runner) Conformance(name string, sig source.Signature, impl Impl) (result Result) {
	result = Result{ID: uuid.New(), Kind: Conformance, Name: name}
	c := &counter{}
	defer func() { result.Successes = c.n }()

	inputs := r.gen.TupleGenerator(sig.Params)
	validOut := r.val.Validator(sig.Return)

	for i := 0; i < r.count; i++ {
		input := inputs.Draw().(*value.Tuple)
		if r.trace {
			r.diag("%s draw %d: %s", name, i, input.Inspect())
		}
		out, err := invoke(impl, input.Elements)
		if err != nil {
			result.Failure = &Failure{
				Kind:     FailValidation,
				Input:    input,
				Expected: sig.Return,
				Message:  fmt.Sprintf("implementation signalled an error: %v", err),
			}
			return result
		}
		if !validOut(out) {
			result.Failure = &Failure{
				Kind:     FailValidation,
				Input:    input,
				Outputs:  []value.Value{out},
				Expected: sig.Return,
				Message:  "output does not conform to the return descriptor",
			}
			return result
		}
		c.increment()
	}
	return result
}

// CrossImplementation refuses to run unless both signatures are
// structurally equivalent, then draws one shared input per trial and
// requires both outputs to validate and to be equal by value.
func (r *Runner) CrossImplementation(name string, sigA, sigB source.Signature, implA, implB Impl) (result Result) {
	result = Result{ID: uuid.New(), Kind: Cross, Name: name}

	if !descriptor.EquivalentSignatures(sigA.Params, sigA.Return, sigB.Params, sigB.Return) {
		result.Failure = &Failure{
			Kind:    FailSpecMismatch,
			Message: fmt.Sprintf("signatures differ: %s vs %s", sigA.String(), sigB.String()),
		}
		return result
	}

	c := &counter{}
	defer func() { result.Successes = c.n }()

	inputs := r.gen.TupleGenerator(sigA.Params)
	validOut := r.val.Validator(sigA.Return)

	for i := 0; i < r.count; i++ {
		input := inputs.Draw().(*value.Tuple)
		if r.trace {
			r.diag("%s draw %d: %s", name, i, input.Inspect())
		}
		// Both calls happen back to back on the same goroutine with the
		// identical input value.
		outA, errA := invoke(implA, input.Elements)
		outB, errB := invoke(implB, input.Elements)
		if errA != nil || errB != nil {
			result.Failure = &Failure{
				Kind:    FailDivergence,
				Input:   input,
				Message: fmt.Sprintf("errors: A=%v, B=%v", errA, errB),
			}
			return result
		}
		okA, okB := validOut(outA), validOut(outB)
		if okA != okB || !value.Equal(outA, outB) {
			result.Failure = &Failure{
				Kind:     FailDivergence,
				Input:    input,
				Outputs:  []value.Value{outA, outB},
				Expected: sigA.Return,
				Message:  "implementations disagree on identical input",
			}
			return result
		}
		if !okA {
			result.Failure = &Failure{
				Kind:     FailValidation,
				Input:    input,
				Outputs:  []value.Value{outA},
				Expected: sigA.Return,
				Message:  "both outputs fail the shared validator",
			}
			return result
		}
		c.increment()
	}
	return result
}

// Robustness draws deliberately invalid input tuples. An error signal
// from the implementation counts as success; completing normally is a
// failure (invalid input was accepted).
func (r *Runner) Robustness(name string, sig source.Signature, impl Impl) (result Result) {
	result = Result{ID: uuid.New(), Kind: Robustness, Name: name}
	c := &counter{}
	defer func() { result.Successes = c.n }()

	inputs := r.gen.InvalidTupleGenerator(sig.Params)

	for i := 0; i < r.count; i++ {
		input := inputs.Draw().(*value.Tuple)
		if r.trace {
			r.diag("%s draw %d: %s", name, i, input.Inspect())
		}
		out, err := invoke(impl, input.Elements)
		if err == nil {
			result.Failure = &Failure{
				Kind:    FailInvalidAccepted,
				Input:   input,
				Outputs: []value.Value{out},
				Message: "implementation accepted invalid input",
			}
			return result
		}
		c.increment()
	}
	return result
}

// invoke applies the implementation and converts a non-assertion panic
// into an error signal. HarnessFailure panics propagate verbatim.
func invoke(impl Impl, args []value.Value) (out value.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if hf, ok := rec.(HarnessFailure); ok {
				panic(hf)
			}
			err = fmt.Errorf("implementation raised: %v", rec)
		}
	}()
	return impl(args)
}
