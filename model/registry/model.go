package registry

import "github.com/outpostdev/typeforge/pkg/value"

// SourceKind discriminates the variants of Source.
type SourceKind int

const (
	// FqnSource variants: one way to produce a value of a specific FQN.
	SrcClassInstantiation SourceKind = iota
	SrcStaticMethodCall
	SrcStaticPropertyAccess
	SrcValueObject

	// ValueSource variants: one alternative inside a ValueDistribution.
	// SrcFqnRef is only ever legal inside a ValueDistribution; Resolve
	// inlines it away, so generator/mutator code never sees one.
	SrcFqnRef
	SrcPrimitive
	SrcNoValue
	SrcArray
	SrcMap
	SrcConstant
	SrcCustom
)

func (k SourceKind) String() string {
	switch k {
	case SrcClassInstantiation:
		return "ClassInstantiation"
	case SrcStaticMethodCall:
		return "StaticMethodCall"
	case SrcStaticPropertyAccess:
		return "StaticPropertyAccess"
	case SrcValueObject:
		return "ValueObject"
	case SrcFqnRef:
		return "FqnRef"
	case SrcPrimitive:
		return "Primitive"
	case SrcNoValue:
		return "NoValue"
	case SrcArray:
		return "Array"
	case SrcMap:
		return "Map"
	case SrcConstant:
		return "Constant"
	case SrcCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// DistRef is a stable, content-derived handle into Model.Distributions.
type DistRef uint64

// ParameterSource binds a constructor/method parameter name to the
// distribution describing its legal values.
type ParameterSource struct {
	Name string
	Dist DistRef
}

// FieldSource binds a struct field name to the distribution describing its
// legal values.
type FieldSource struct {
	Name string
	Dist DistRef
}

// Source is the single tagged-variant type used for both FqnSources
// (indexed by the FQN they produce) and the ValueSources that make up a
// ValueDistribution. Only the fields relevant to Kind are meaningful.
type Source struct {
	Kind SourceKind

	// ClassInstantiation, ValueObject: the produced type's FQN.
	// StaticMethodCall, StaticPropertyAccess: the declaring class/enum FQN.
	// FqnRef: the FQN to splat in during Resolve.
	FQN string

	// StaticMethodCall, StaticPropertyAccess.
	StaticMethod   string
	StaticProperty string
	TargetFQN      string

	// ClassInstantiation, StaticMethodCall: parameters in declaration order.
	Params []ParameterSource

	// ValueObject: fields in declaration order.
	Fields []FieldSource

	// Array, Map: the element distribution.
	Ref DistRef

	// Primitive: "string" | "number" | "boolean" | "date" | "json" | "any".
	PrimitiveName string

	// Constant: a fully-formed literal value.
	Const value.Value

	// Custom: the registered plug-in name.
	CustomName string
}

// ValueDistribution is an ordered list of alternative ValueSources. Order
// matters: it is the indexing space for DistPtr.SourceIndex (after
// resolution), and the generator always tries alternatives in order.
type ValueDistribution []Source

// Model is the persistable Distribution Model: every way to obtain a
// value of each FQN, plus the content-addressed distribution table those
// FqnSources' parameters/fields point into.
type Model struct {
	FqnSources    map[string][]Source        `json:"fqnSources"`
	Distributions map[DistRef]ValueDistribution `json:"distributions"`
}

// NewModel returns an empty Model ready for AddFqnSource calls, or for
// wrapping in a Registry (Wrap) to Record distributions into it.
func NewModel() *Model {
	return &Model{
		FqnSources:    make(map[string][]Source),
		Distributions: make(map[DistRef]ValueDistribution),
	}
}

// AddFqnSource appends src to the source list for fqn. Used by the
// extractor; exported so custom extractors outside model/extract can
// populate a Model directly (e.g. in tests, or a loader the core doesn't
// know about).
func (m *Model) AddFqnSource(fqn string, src Source) {
	m.FqnSources[fqn] = append(m.FqnSources[fqn], src)
}
