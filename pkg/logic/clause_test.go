package logic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustClause(t *testing.T, literals ...string) Clause {
	t.Helper()
	clause, err := ParseClause(literals)
	if err != nil {
		t.Fatalf("cannot parse clause %v: %v", literals, err)
	}
	return clause
}

func TestNewClause(t *testing.T) {
	literal, err := ParseLiteral("man(socrates)")
	assert.Nil(t, err)

	clause := NewClause(literal, literal, literal)

	assert.Len(t, clause, 1)
	assert.False(t, clause.Empty())
	assert.True(t, NewClause().Empty())
}

func TestClauseString(t *testing.T) {
	assert.Equal(t, "{-man(X), mortal(X)}", mustClause(t, "-man(X)", "mortal(X)").String())
	assert.Equal(t, "{}", NewClause().String())
}

func TestClauseKey(t *testing.T) {
	t.Run("renamed variables are alpha-equivalent", func(t *testing.T) {
		a := mustClause(t, "-man(X)", "mortal(X)")
		b := mustClause(t, "-man(Anything)", "mortal(Anything)")

		assert.Equal(t, a.Key(), b.Key())
		assert.True(t, a.EquivalentTo(b))
	})

	t.Run("literal order does not matter", func(t *testing.T) {
		a := mustClause(t, "-man(X)", "mortal(X)")
		b := mustClause(t, "mortal(Y)", "-man(Y)")

		assert.True(t, a.EquivalentTo(b))
	})

	t.Run("shared versus repeated variables differ", func(t *testing.T) {
		a := mustClause(t, "edge(X,Y)")
		b := mustClause(t, "edge(X,X)")

		assert.False(t, a.EquivalentTo(b))
	})

	t.Run("constants are not renamed", func(t *testing.T) {
		a := mustClause(t, "man(socrates)")
		b := mustClause(t, "man(plato)")

		assert.False(t, a.EquivalentTo(b))
	})

	t.Run("polarity matters", func(t *testing.T) {
		a := mustClause(t, "man(X)")
		b := mustClause(t, "-man(X)")

		assert.False(t, a.EquivalentTo(b))
	})

	t.Run("symmetric variable swap is alpha-equivalent", func(t *testing.T) {
		a := mustClause(t, "edge(X,Y)", "edge(Y,X)")
		b := mustClause(t, "edge(Y,X)", "edge(X,Y)")

		assert.True(t, a.EquivalentTo(b))
	})

	t.Run("chained literals are alpha-equivalent in either order", func(t *testing.T) {
		// Same chain X->Y->Z, spelled with the links in opposite orders
		// (A=Y, B=Z, C=X); the shapes of all literals tie.
		a := mustClause(t, "path(X,Y)", "path(Y,Z)")
		b := mustClause(t, "path(A,B)", "path(C,A)")

		assert.Equal(t, a.Key(), b.Key())
		assert.True(t, a.EquivalentTo(b))
	})

	t.Run("tied shapes with different linkage are not equivalent", func(t *testing.T) {
		chain := mustClause(t, "path(X,Y)", "path(Y,Z)")
		fanOut := mustClause(t, "path(X,Y)", "path(X,Z)")

		assert.False(t, chain.EquivalentTo(fanOut))
	})

	t.Run("three-literal chain is alpha-equivalent under rotation", func(t *testing.T) {
		a := mustClause(t, "path(X,Y)", "path(Y,Z)", "path(Z,W)")
		b := mustClause(t, "path(C,D)", "path(A,B)", "path(B,C)")

		assert.True(t, a.EquivalentTo(b))
	})
}

func TestClauseRename(t *testing.T) {
	clause := mustClause(t, "-parent(X,Y)", "-parent(Y,Z)", "grandparent(X,Z)")

	counter := 0
	renamed := clause.Rename(func(string) string {
		counter++
		return fmt.Sprintf("V%d", counter)
	})

	// Three distinct variables, renamed consistently across literals.
	assert.Equal(t, 3, counter)
	assert.Equal(t, "{-parent(V1,V2), -parent(V2,V3), grandparent(V1,V3)}", renamed.String())
	// The original clause is untouched.
	assert.Equal(t, "{-parent(X,Y), -parent(Y,Z), grandparent(X,Z)}", clause.String())
	// Renaming preserves alpha-equivalence.
	assert.True(t, clause.EquivalentTo(renamed))
}
