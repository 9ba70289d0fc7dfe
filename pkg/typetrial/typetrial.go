// Package typetrial is the public surface of the trial engine. It
// re-exports the descriptor vocabulary, the value model, trial
// registration and the reporters, so consumers never import internal
// packages directly.
package typetrial

import (
	"io"

	"github.com/funvibe/typetrial/internal/config"
	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/gen"
	"github.com/funvibe/typetrial/internal/report"
	"github.com/funvibe/typetrial/internal/source"
	"github.com/funvibe/typetrial/internal/trial"
	"github.com/funvibe/typetrial/internal/validate"
	"github.com/funvibe/typetrial/internal/value"
)

// Descriptor vocabulary.
type (
	Descriptor       = descriptor.Descriptor
	Primitive        = descriptor.Primitive
	PrimitiveKind    = descriptor.PrimitiveKind
	BoundedInteger   = descriptor.BoundedInteger
	Literal          = descriptor.Literal
	Sequence         = descriptor.Sequence
	KeyedSequence    = descriptor.KeyedSequence
	TupleDescriptor  = descriptor.Tuple
	Field            = descriptor.Field
	Mapping          = descriptor.Mapping
	StructuredRecord = descriptor.StructuredRecord
	Union            = descriptor.Union
	RemoteReference  = descriptor.RemoteReference
	Resolver         = descriptor.Resolver
)

const (
	KindInteger   = descriptor.KindInteger
	KindFloat     = descriptor.KindFloat
	KindBoolean   = descriptor.KindBoolean
	KindAtom      = descriptor.KindAtom
	KindBinary    = descriptor.KindBinary
	KindBitstring = descriptor.KindBitstring
	KindString    = descriptor.KindString
	KindCharlist  = descriptor.KindCharlist
	KindAny       = descriptor.KindAny
	KindTerm      = descriptor.KindTerm
	KindNull      = descriptor.KindNull
)

// Equivalent reports structural equality of two descriptors.
func Equivalent(a, b Descriptor) bool { return descriptor.Equivalent(a, b) }

// Stock bounded-integer shapes.
var (
	NonNegInteger = descriptor.NonNegInteger
	PosInteger    = descriptor.PosInteger
	NegInteger    = descriptor.NegInteger
	Range         = descriptor.Range
)

// Value model.
type (
	Value     = value.Value
	Integer   = value.Integer
	Float     = value.Float
	Boolean   = value.Boolean
	Atom      = value.Atom
	String    = value.String
	Bitstring = value.Bitstring
	List      = value.List
	Tuple     = value.Tuple
	Map       = value.Map
	MapEntry  = value.MapEntry
	Nil       = value.Nil
)

var (
	// Equal performs a deep value equality check.
	Equal = value.Equal

	// TypeName infers a diagnostic type name from a runtime value.
	TypeName = value.TypeName

	// FromGo converts a native Go value to an engine value.
	FromGo = value.FromGo

	// ToGo converts an engine value back to a native Go value.
	ToGo = value.ToGo
)

// Trial harness.
type (
	Impl      = trial.Impl
	Options   = trial.Options
	Result    = trial.Result
	Failure   = trial.Failure
	Suite     = trial.Suite
	Runner    = trial.Runner
	TrialKind = trial.Kind
)

const (
	Conformance = trial.Conformance
	Cross       = trial.Cross
	Robustness  = trial.Robustness

	DefaultTrialCount = trial.DefaultTrialCount
)

var (
	NewSuite  = trial.NewSuite
	NewRunner = trial.NewRunner
	Assert    = trial.Assert
)

// Descriptor sources.
type (
	Signature = source.Signature
	Source    = source.Source
	Registry  = source.Registry
	FileSet   = source.FileSet
)

var (
	NewRegistry     = source.NewRegistry
	ParseProtoFiles = source.ParseProtoFiles
)

// Synthesizers, for callers that want raw generators and validators
// without the harness.
type (
	GenOptions      = gen.Options
	Stream          = gen.Stream
	ValidateOptions = validate.Options
	Predicate       = validate.Predicate
)

// NewGenerator builds a generator synthesizer.
func NewGenerator(opts GenOptions) *gen.Synthesizer { return gen.New(opts) }

// NewValidator builds a validator synthesizer.
func NewValidator(opts ValidateOptions) *validate.Synthesizer { return validate.New(opts) }

// Reporting.
type (
	Console    = report.Console
	SQLiteSink = report.SQLiteSink
)

// NewConsole builds a TTY-aware console reporter.
func NewConsole(w io.Writer) *Console { return report.NewConsole(w) }

// OpenSQLite opens (creating if needed) a SQLite result store.
func OpenSQLite(path string) (*SQLiteSink, error) { return report.OpenSQLite(path) }

// Configuration.
type Config = config.Config

var LoadConfig = config.Load

// RunnerOptions translates a loaded configuration into trial options.
func RunnerOptions(cfg Config, resolver Resolver, diag trial.DiagFunc) Options {
	return Options{
		TrialCount:   cfg.TrialCount,
		VerboseTrace: cfg.VerboseTrace,
		Seed:         cfg.Seed,
		Resolver:     resolver,
		Diag:         diag,
	}
}
