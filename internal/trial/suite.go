package trial

import (
	"github.com/google/uuid"

	"github.com/funvibe/typetrial/internal/source"
)

// Case is one registered test unit: a trial kind, the signature(s), and
// the implementation reference(s). Cases are registered at runtime and
// run in registration order.
type Case struct {
	Name  string
	Kind  Kind
	Impl  Impl
	Other Impl // second implementation, cross trials only

	// Either a fixed signature or a source lookup, resolved at run time.
	Sig    source.Signature
	Src    source.Source
	Target string

	// SigB covers cross trials whose second implementation declares its
	// own signature. Nil means Sig is shared.
	SigB *source.Signature
}

// Suite accumulates registered cases and runs them one after another.
type Suite struct {
	opts  Options
	cases []Case
}

func NewSuite(opts Options) *Suite {
	return &Suite{opts: opts}
}

// AddConformance registers a conformance trial for a fixed signature.
func (s *Suite) AddConformance(name string, sig source.Signature, impl Impl) {
	s.cases = append(s.cases, Case{Name: name, Kind: Conformance, Sig: sig, Impl: impl})
}

// AddConformanceFor registers a conformance trial whose signature is
// looked up from a descriptor source when the suite runs.
func (s *Suite) AddConformanceFor(src source.Source, target string, impl Impl) {
	s.cases = append(s.cases, Case{Name: target, Kind: Conformance, Src: src, Target: target, Impl: impl})
}

// AddCross registers a cross-implementation trial. sigB may be nil when
// both implementations share one declared signature.
func (s *Suite) AddCross(name string, sigA source.Signature, sigB *source.Signature, implA, implB Impl) {
	s.cases = append(s.cases, Case{Name: name, Kind: Cross, Sig: sigA, SigB: sigB, Impl: implA, Other: implB})
}

// AddRobustness registers a robustness trial for a fixed signature.
func (s *Suite) AddRobustness(name string, sig source.Signature, impl Impl) {
	s.cases = append(s.cases, Case{Name: name, Kind: Robustness, Sig: sig, Impl: impl})
}

// Len returns the number of registered cases.
func (s *Suite) Len() int { return len(s.cases) }

// Run executes all cases sequentially. emit, when non-nil, receives each
// result as it completes. A failure aborts only its own case.
func (s *Suite) Run(emit func(Result)) []Result {
	results := make([]Result, 0, len(s.cases))
	runner := NewRunner(s.opts)

	for _, c := range s.cases {
		res := s.runCase(runner, c)
		if emit != nil {
			emit(res)
		}
		results = append(results, res)
	}
	return results
}

func (s *Suite) runCase(runner *Runner, c Case) Result {
	sig := c.Sig
	if c.Src != nil {
		resolved, err := c.Src.Signature(c.Target)
		if err != nil {
			return Result{
				ID:   uuid.New(),
				Kind: c.Kind,
				Name: c.Name,
				Failure: &Failure{
					Kind:    FailSpecNotFound,
					Message: err.Error(),
				},
			}
		}
		sig = resolved
	}

	switch c.Kind {
	case Conformance:
		return runner.Conformance(c.Name, sig, c.Impl)
	case Cross:
		sigB := sig
		if c.SigB != nil {
			sigB = *c.SigB
		}
		return runner.CrossImplementation(c.Name, sig, sigB, c.Impl, c.Other)
	case Robustness:
		return runner.Robustness(c.Name, sig, c.Impl)
	}

	return Result{
		ID:   uuid.New(),
		Kind: c.Kind,
		Name: c.Name,
		Failure: &Failure{
			Kind:    FailSpecNotFound,
			Message: "unknown trial kind " + string(c.Kind),
		},
	}
}
