package value

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than
// text, mirroring the teacher's typed-error convention.
type ErrKind int

const (
	ErrKindModelNotFound ErrKind = iota
	ErrKindNoSources
	ErrKindHashCollision
	ErrKindUnknownCustom
	ErrKindEvaluation
	ErrKindNoValueAtEval
	ErrKindMutatorReused
	ErrKindRebind
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindModelNotFound:
		return "ModelNotFound"
	case ErrKindNoSources:
		return "NoSourcesInDistribution"
	case ErrKindHashCollision:
		return "HashCollision"
	case ErrKindUnknownCustom:
		return "UnknownCustomDistribution"
	case ErrKindEvaluation:
		return "EvaluationFailure"
	case ErrKindNoValueAtEval:
		return "NoValueAtEval"
	case ErrKindMutatorReused:
		return "MutatorReused"
	case ErrKindRebind:
		return "Rebind"
	default:
		return "Unknown"
	}
}

// Error is a typed error with an optional underlying cause. It is the one
// error shape used across pkg/value, model/*, and explore/* so that a
// caller can type-assert once and branch on Kind instead of matching error
// text.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Newf builds an *Error with a formatted message.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error with a formatted message and an underlying cause.
func Wrap(kind ErrKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
