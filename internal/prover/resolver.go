package prover

import "resolution/pkg/logic"

// Resolve computes the resolvent of two standardized-apart clauses on the
// complementary literal pair (left[i], right[j]) under subst: the
// substitution is applied throughout both clauses, the matched literals are
// dropped, and the remainders are unioned with duplicates removed. An empty
// result means a contradiction was derived.
//
// Callers must only invoke Resolve after MatchComplementary succeeded on
// left[i] and right[j], and never with left and right being the same clause.
func Resolve(left, right logic.Clause, i, j int, subst logic.Substitution) logic.Clause {
	remainder := make([]logic.Literal, 0, len(left)+len(right)-2)
	for k, literal := range left {
		if k != i {
			remainder = append(remainder, subst.Apply(literal))
		}
	}
	for k, literal := range right {
		if k != j {
			remainder = append(remainder, subst.Apply(literal))
		}
	}
	return logic.NewClause(remainder...)
}
