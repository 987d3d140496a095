package extract

// RefKind discriminates the shapes a TypeRef can take.
type RefKind int

const (
	RefPrimitive RefKind = iota
	RefArray
	RefMap
	RefUnion
	RefFqn
)

// TypeRef is a normalized type reference: a primitive name, an array or
// map of some element type, a union of alternatives, or a reference to
// another FQN in the same registry.
type TypeRef struct {
	Kind      RefKind
	Primitive string // set when Kind == RefPrimitive: "string", "number", "boolean", "date", "json", "any"
	Elem      *TypeRef
	Union     []TypeRef
	FQN       string
}

// Param is one constructor, method, or struct-field parameter.
type Param struct {
	Name     string
	Type     TypeRef
	Optional bool
}

// Signature is an ordered parameter list, in declaration order.
type Signature struct {
	Params []Param
}

// StaticMethod is a class's static factory method.
type StaticMethod struct {
	Name          string
	Params        []Param
	ReturnFQN     string
	ReturnIsClass bool
}

// StaticProperty is a class or enum's static readonly property.
type StaticProperty struct {
	Name    string
	TypeFQN string
}

// Class is a constructible (or abstract) type: a constructor signature
// plus any static members. Ancestors lists every supertype and
// implemented interface FQN, already flattened transitively by the
// caller.
type Class struct {
	FQN              string
	Concrete         bool
	Constructor      *Signature
	StaticMethods    []StaticMethod
	StaticProperties []StaticProperty
	Ancestors        []string
}

// Struct is a plain data shape: a flat field list, no behavior.
type Struct struct {
	FQN        string
	Fields     []Param
	Interfaces []string
}

// Enum is a closed set of named members.
type Enum struct {
	FQN     string
	Members []string
}

// Registry is the normalized input this package consumes: every class,
// struct, and enum the host library exposes, keyed by its own FQN.
type Registry struct {
	Classes map[string]Class
	Structs map[string]Struct
	Enums   map[string]Enum
}
