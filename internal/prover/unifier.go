package prover

import "resolution/pkg/logic"

// MatchComplementary reports whether two literals can act as the
// complementary pair of a resolution step: equal predicate and arity,
// opposite polarity, and position-wise unifiable arguments. On success it
// returns the unifying substitution.
//
// The literals' owning clauses must already be standardized apart; matching
// literals that share variable names across clauses is unsound.
func MatchComplementary(a, b logic.Literal) (logic.Substitution, bool) {
	if a.Negated == b.Negated || a.Predicate != b.Predicate || len(a.Args) != len(b.Args) {
		return nil, false
	}
	subst := make(logic.Substitution)
	for i := range a.Args {
		if !unify(subst, a.Args[i], b.Args[i]) {
			return nil, false
		}
	}
	return subst, true
}

// unify extends subst so that x and y denote the same term, or reports
// failure. Terms are atomic (function-free), so there is no occurs-check.
func unify(subst logic.Substitution, x, y logic.Term) bool {
	x, y = subst.Walk(x), subst.Walk(y)
	switch {
	case x.Variable && y.Variable && x.Name == y.Name:
		return true
	case x.Variable:
		subst.Bind(x, y)
		return true
	case y.Variable:
		subst.Bind(y, x)
		return true
	default:
		return x.Name == y.Name
	}
}
