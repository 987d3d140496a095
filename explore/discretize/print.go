package discretize

import (
	"fmt"
	"strings"

	"github.com/outpostdev/typeforge/pkg/value"
)

// printWrapColumn is where an argument list wraps onto its own indented
// lines instead of staying on the statement's line.
const printWrapColumn = 100

// Print renders stmts as one line per statement — "name = Call(args)" for
// an Assignment, "Call(args)" for the trailing Expression — wrapping an
// argument list onto indented lines once the single-line form would pass
// printWrapColumn. It is a pure rendering layer: it never evaluates or
// mutates stmts, only formats them for the explore and synth
// subcommands' output.
func Print(stmts []Statement) string {
	var b strings.Builder
	for _, s := range stmts {
		expr := printExpr(s.Expr)
		var line string
		if s.Kind == StmtAssignment {
			line = fmt.Sprintf("%s = %s", s.Name, expr)
		} else {
			line = expr
		}
		isCall := s.Expr.Kind == value.KindClassInstantiation || s.Expr.Kind == value.KindStaticMethodCall
		if len(line) <= printWrapColumn || !isCall {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(printWrapped(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func printWrapped(s Statement) string {
	prefix := ""
	if s.Kind == StmtAssignment {
		prefix = s.Name + " = "
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(printCallee(s.Expr))
	b.WriteString("(\n")
	for _, a := range s.Expr.Arguments {
		b.WriteString("  ")
		b.WriteString(printExpr(a))
		b.WriteString(",\n")
	}
	b.WriteString(")")
	return b.String()
}

func printCallee(v value.Value) string {
	if v.Kind == value.KindStaticMethodCall {
		return v.TargetFQN + "." + v.StaticMethod
	}
	return v.FQN
}

func printExpr(v value.Value) string {
	switch v.Kind {
	case value.KindClassInstantiation:
		return "new " + v.FQN + "(" + printArgs(v.Arguments) + ")"
	case value.KindStaticMethodCall:
		return v.TargetFQN + "." + v.StaticMethod + "(" + printArgs(v.Arguments) + ")"
	case value.KindStaticPropertyAccess:
		return v.TargetFQN + "." + v.StaticProperty
	case value.KindStructLiteral:
		return "{" + printEntries(v.Entries) + "}"
	case value.KindMapLiteral:
		return "{" + printEntries(v.Entries) + "}"
	case value.KindArray:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			parts[i] = printExpr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.KindPrimitive:
		return printPrimitive(v)
	case value.KindNoValue:
		return "<no value>"
	case value.KindScope:
		return "<scope>"
	case value.KindVariable:
		return v.Name
	default:
		return "<unknown>"
	}
}

func printPrimitive(v value.Value) string {
	switch v.Prim {
	case value.PrimString:
		return fmt.Sprintf("%q", v.Str)
	case value.PrimNumber:
		return fmt.Sprintf("%g", v.Num)
	case value.PrimBoolean:
		return fmt.Sprintf("%t", v.Bool)
	case value.PrimDate:
		return v.Date.Format("2006-01-02T15:04:05Z")
	default:
		return "<primitive>"
	}
}

func printArgs(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printExpr(a)
	}
	return strings.Join(parts, ", ")
}

func printEntries(entries []value.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Key + ": " + printExpr(e.Value)
	}
	return strings.Join(parts, ", ")
}
