package prover

import (
	"testing"

	"resolution/pkg/logic"
)

func mustLiteral(t *testing.T, text string) logic.Literal {
	t.Helper()
	literal, err := logic.ParseLiteral(text)
	if err != nil {
		t.Fatalf("cannot parse literal %q: %v", text, err)
	}
	return literal
}

func mustClause(t *testing.T, literals ...string) logic.Clause {
	t.Helper()
	clause, err := logic.ParseClause(literals)
	if err != nil {
		t.Fatalf("cannot parse clause %v: %v", literals, err)
	}
	return clause
}

// socratesKB is the running example: greeks are men, men are mortal,
// philosophers are thinkers, socrates is a greek philosopher.
func socratesKB(t *testing.T, goal []string) logic.KnowledgeBase {
	t.Helper()
	kb := logic.KnowledgeBase{
		Predicates: map[string]int{"man": 1, "mortal": 1, "greek": 1, "philosopher": 1, "thinker": 1},
		Clauses: []logic.Clause{
			mustClause(t, "-man(X)", "mortal(X)"),
			mustClause(t, "-greek(X)", "man(X)"),
			mustClause(t, "-philosopher(X)", "thinker(X)"),
			mustClause(t, "greek(socrates)"),
			mustClause(t, "philosopher(socrates)"),
		},
	}
	if goal != nil {
		kb.Goal = mustClause(t, goal...)
	}
	return kb
}
