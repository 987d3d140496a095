package value

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireDistPtr is the JSON shape of a DistPtr.
type wireDistPtr struct {
	DistID      uint64 `json:"distId"`
	SourceIndex int    `json:"sourceIndex"`
}

// wireEntry is the JSON shape of an Entry; entries are encoded as an
// ordered array of {key, value} pairs rather than a JSON object so that
// StructLiteral's declaration order survives the round trip.
type wireEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// wireValue is the on-the-wire shape of a Value: a "kind" discriminator
// plus the union of fields needed by every variant. Fields are omitempty
// so a given variant's JSON only contains what it actually needs.
type wireValue struct {
	Kind string       `json:"kind"`
	Ptr  *wireDistPtr `json:"distPtr,omitempty"`

	FQN            string            `json:"fqn,omitempty"`
	StaticMethod   string            `json:"staticMethod,omitempty"`
	StaticProperty string            `json:"staticProperty,omitempty"`
	TargetFQN      string            `json:"targetFqn,omitempty"`
	ParameterNames []string          `json:"parameterNames,omitempty"`
	Arguments      []json.RawMessage `json:"arguments,omitempty"`

	Entries []wireEntry `json:"entries,omitempty"`

	Elements []json.RawMessage `json:"elements,omitempty"`

	Prim string  `json:"primKind,omitempty"`
	Str  string  `json:"str,omitempty"`
	Num  float64 `json:"num,omitempty"`
	Bool bool    `json:"bool,omitempty"`
	Date string  `json:"date,omitempty"`

	Name string `json:"name,omitempty"`
}

func kindName(k Kind) string { return k.String() }

func kindFromName(s string) (Kind, error) {
	for k := KindClassInstantiation; k <= KindVariable; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("value: unknown kind %q", s)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	w := wireValue{Kind: kindName(v.Kind)}
	if v.Ptr != nil {
		w.Ptr = &wireDistPtr{DistID: v.Ptr.DistID, SourceIndex: v.Ptr.SourceIndex}
	}

	switch v.Kind {
	case KindClassInstantiation, KindStaticMethodCall:
		w.FQN = v.FQN
		w.StaticMethod = v.StaticMethod
		w.TargetFQN = v.TargetFQN
		w.ParameterNames = v.ParameterNames
		for _, a := range v.Arguments {
			raw, err := json.Marshal(a)
			if err != nil {
				return nil, err
			}
			w.Arguments = append(w.Arguments, raw)
		}
	case KindStaticPropertyAccess:
		w.FQN = v.FQN
		w.StaticProperty = v.StaticProperty
		w.TargetFQN = v.TargetFQN
	case KindStructLiteral:
		w.FQN = v.FQN
		for _, e := range v.Entries {
			raw, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			w.Entries = append(w.Entries, wireEntry{Key: e.Key, Value: raw})
		}
	case KindMapLiteral:
		for _, e := range v.Entries {
			raw, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			w.Entries = append(w.Entries, wireEntry{Key: e.Key, Value: raw})
		}
	case KindArray:
		for _, e := range v.Elements {
			raw, err := json.Marshal(e)
			if err != nil {
				return nil, err
			}
			w.Elements = append(w.Elements, raw)
		}
	case KindPrimitive:
		w.Prim = v.Prim.String()
		switch v.Prim {
		case PrimString:
			w.Str = v.Str
		case PrimNumber:
			w.Num = v.Num
		case PrimBoolean:
			w.Bool = v.Bool
		case PrimDate:
			w.Date = v.Date.UTC().Format(time.RFC3339Nano)
		}
	case KindNoValue, KindScope:
		// no payload
	case KindVariable:
		w.Name = v.Name
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, err := kindFromName(w.Kind)
	if err != nil {
		return err
	}

	out := Value{Kind: kind}
	if w.Ptr != nil {
		out.Ptr = &DistPtr{DistID: w.Ptr.DistID, SourceIndex: w.Ptr.SourceIndex}
	}

	switch kind {
	case KindClassInstantiation, KindStaticMethodCall:
		out.FQN = w.FQN
		out.StaticMethod = w.StaticMethod
		out.TargetFQN = w.TargetFQN
		out.ParameterNames = w.ParameterNames
		for _, raw := range w.Arguments {
			var arg Value
			if err := json.Unmarshal(raw, &arg); err != nil {
				return err
			}
			out.Arguments = append(out.Arguments, arg)
		}
	case KindStaticPropertyAccess:
		out.FQN = w.FQN
		out.StaticProperty = w.StaticProperty
		out.TargetFQN = w.TargetFQN
	case KindStructLiteral:
		out.FQN = w.FQN
		for _, e := range w.Entries {
			var ev Value
			if err := json.Unmarshal(e.Value, &ev); err != nil {
				return err
			}
			out.Entries = append(out.Entries, Entry{Key: e.Key, Value: ev})
		}
	case KindMapLiteral:
		for _, e := range w.Entries {
			var ev Value
			if err := json.Unmarshal(e.Value, &ev); err != nil {
				return err
			}
			out.Entries = append(out.Entries, Entry{Key: e.Key, Value: ev})
		}
	case KindArray:
		for _, raw := range w.Elements {
			var ev Value
			if err := json.Unmarshal(raw, &ev); err != nil {
				return err
			}
			out.Elements = append(out.Elements, ev)
		}
	case KindPrimitive:
		switch w.Prim {
		case "string":
			out.Prim = PrimString
			out.Str = w.Str
		case "number":
			out.Prim = PrimNumber
			out.Num = w.Num
		case "boolean":
			out.Prim = PrimBoolean
			out.Bool = w.Bool
		case "date":
			out.Prim = PrimDate
			t, err := time.Parse(time.RFC3339Nano, w.Date)
			if err != nil {
				return fmt.Errorf("value: invalid date %q: %w", w.Date, err)
			}
			out.Date = t
		default:
			return fmt.Errorf("value: unknown primitive kind %q", w.Prim)
		}
	case KindVariable:
		out.Name = w.Name
	}

	*v = out
	return nil
}
