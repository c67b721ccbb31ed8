package logic

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Literal is a predicate applied to terms, with a polarity.
type Literal struct {
	Negated   bool
	Predicate string
	Args      []Term
}

func (l Literal) String() string {
	return l.render(func(t Term) string { return t.Name })
}

// Equal reports structural equality (same polarity, predicate and arguments,
// variables compared by name).
func (l Literal) Equal(other Literal) bool {
	if l.Negated != other.Negated || l.Predicate != other.Predicate || len(l.Args) != len(other.Args) {
		return false
	}
	return lo.EveryBy(lo.Zip2(l.Args, other.Args), func(pair lo.Tuple2[Term, Term]) bool {
		return pair.A == pair.B
	})
}

// shape renders the literal with every variable masked, so that literal
// ordering inside a clause does not depend on variable names.
func (l Literal) shape() string {
	return l.render(func(t Term) string {
		if t.Variable {
			return "*"
		}
		return t.Name
	})
}

func (l Literal) render(term func(Term) string) string {
	var builder strings.Builder
	if l.Negated {
		builder.WriteByte('-')
	}
	builder.WriteString(l.Predicate)
	if len(l.Args) > 0 {
		fmt.Fprintf(&builder, "(%s)", strings.Join(lo.Map(l.Args, func(t Term, _ int) string { return term(t) }), ","))
	}
	return builder.String()
}
