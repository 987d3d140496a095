package value

// Equal performs a structural comparison of two Values, DistPtr included.
// The evaluator-equivalence law (v1 == v2 implies identical evaluated
// artifacts) is stated over this function, not over Go's ==, since Value
// contains slices.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	if !ptrEqual(a.Ptr, b.Ptr) {
		return false
	}
	switch a.Kind {
	case KindClassInstantiation:
		return a.FQN == b.FQN && stringsEqual(a.ParameterNames, b.ParameterNames) && argsEqual(a.Arguments, b.Arguments)
	case KindStaticMethodCall:
		return a.FQN == b.FQN && a.StaticMethod == b.StaticMethod && a.TargetFQN == b.TargetFQN &&
			stringsEqual(a.ParameterNames, b.ParameterNames) && argsEqual(a.Arguments, b.Arguments)
	case KindStaticPropertyAccess:
		return a.FQN == b.FQN && a.StaticProperty == b.StaticProperty && a.TargetFQN == b.TargetFQN
	case KindStructLiteral:
		return a.FQN == b.FQN && entriesEqual(a.Entries, b.Entries)
	case KindMapLiteral:
		return entriesEqual(a.Entries, b.Entries)
	case KindArray:
		return argsEqual(a.Elements, b.Elements)
	case KindPrimitive:
		if a.Prim != b.Prim {
			return false
		}
		switch a.Prim {
		case PrimString:
			return a.Str == b.Str
		case PrimNumber:
			return a.Num == b.Num
		case PrimBoolean:
			return a.Bool == b.Bool
		case PrimDate:
			return a.Date.Equal(b.Date)
		}
		return true
	case KindNoValue, KindScope:
		return true
	case KindVariable:
		return a.Name == b.Name
	default:
		return false
	}
}

func ptrEqual(a, b *DistPtr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func argsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func entriesEqual(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
