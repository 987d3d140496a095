package discretize

import "github.com/outpostdev/typeforge/pkg/value"

// StmtKind discriminates the two Statement variants.
type StmtKind int

const (
	StmtAssignment StmtKind = iota
	StmtExpression
)

func (k StmtKind) String() string {
	if k == StmtAssignment {
		return "Assignment"
	}
	return "Expression"
}

// Statement is either a named binding (Assignment) or a standalone,
// unbound expression (Expression) — the latter always the last element
// of a Discretize result.
type Statement struct {
	Kind StmtKind
	Name string // Assignment only
	Expr value.Value
}
