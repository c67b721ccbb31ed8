package logic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of literals with set semantics: construction drops
// duplicate literals, and identity between clauses is alpha-equivalence (see
// Key). The empty clause denotes contradiction.
type Clause []Literal

// NewClause builds a clause from the given literals, dropping structural
// duplicates while preserving first-occurrence order.
func NewClause(literals ...Literal) Clause {
	clause := make(Clause, 0, len(literals))
	for _, literal := range literals {
		duplicate := lo.SomeBy(clause, func(present Literal) bool { return present.Equal(literal) })
		if !duplicate {
			clause = append(clause, literal)
		}
	}
	return clause
}

func (c Clause) Empty() bool {
	return len(c) == 0
}

func (c Clause) String() string {
	return fmt.Sprintf("{%s}", strings.Join(lo.Map(c, func(l Literal, _ int) string { return l.String() }), ", "))
}

// Rename returns a copy of the clause with every variable renamed through
// fresh. Each distinct variable is passed to fresh exactly once.
func (c Clause) Rename(fresh func(old string) string) Clause {
	renaming := make(map[string]string)
	renamed := make(Clause, len(c))
	for i, literal := range c {
		args := make([]Term, len(literal.Args))
		for j, arg := range literal.Args {
			if !arg.Variable {
				args[j] = arg
				continue
			}
			name, seen := renaming[arg.Name]
			if !seen {
				name = fresh(arg.Name)
				renaming[arg.Name] = name
			}
			args[j] = Variable(name)
		}
		renamed[i] = Literal{Negated: literal.Negated, Predicate: literal.Predicate, Args: args}
	}
	return renamed
}

// Key returns the alpha-equivalence key of the clause: literals are ordered
// by their variable-masked shape, variables are renamed canonically in order
// of first appearance, and the rendered literals are sorted and joined.
// Literals with equal shapes make the ordering (and so the renaming)
// ambiguous, so every ordering of each tied block is keyed and the smallest
// key wins. Two clauses are alpha-equivalent iff their keys are equal.
func (c Clause) Key() string {
	ordered := slices.Clone(c)
	slices.SortStableFunc(ordered, func(a, b Literal) int { return strings.Compare(a.shape(), b.shape()) })

	keys := lo.Map(shapeTiedOrderings(ordered), func(candidate Clause, _ int) string {
		return candidate.canonicalKey()
	})
	return lo.Min(keys)
}

// canonicalKey renames variables in order of first appearance and joins the
// sorted rendered literals.
func (c Clause) canonicalKey() string {
	canonical := 0
	renamed := c.Rename(func(string) string {
		canonical++
		return fmt.Sprintf("_%d", canonical)
	})

	rendered := lo.Map(renamed, func(l Literal, _ int) string { return l.String() })
	slices.Sort(rendered)
	return strings.Join(rendered, " | ")
}

// shapeTiedOrderings builds every ordering of the clause that permutes
// literals only within runs of equal shape. ordered must already be sorted
// by shape; literals with a unique shape keep their position, so the result
// is a single ordering whenever no shapes tie.
func shapeTiedOrderings(ordered Clause) []Clause {
	blocks := make([]Clause, 0, len(ordered))
	for _, literal := range ordered {
		last := len(blocks) - 1
		if last >= 0 && blocks[last][0].shape() == literal.shape() {
			blocks[last] = append(blocks[last], literal)
		} else {
			blocks = append(blocks, Clause{literal})
		}
	}

	orderings := make([]Clause, 0, 1)
	buildOrderings(blocks, 0, make(Clause, 0, len(ordered)), &orderings)
	return orderings
}

func buildOrderings(blocks []Clause, currentBlock int, prefix Clause, orderings *[]Clause) {
	if currentBlock >= len(blocks) {
		*orderings = append(*orderings, prefix)
		return
	}
	for _, permuted := range permutations(blocks[currentBlock]) {
		buildOrderings(blocks, currentBlock+1, append(slices.Clone(prefix), permuted...), orderings)
	}
}

func permutations(literals Clause) []Clause {
	if len(literals) <= 1 {
		return []Clause{slices.Clone(literals)}
	}
	result := make([]Clause, 0, len(literals))
	for i, literal := range literals {
		rest := make(Clause, 0, len(literals)-1)
		rest = append(rest, literals[:i]...)
		rest = append(rest, literals[i+1:]...)
		for _, sub := range permutations(rest) {
			result = append(result, append(Clause{literal}, sub...))
		}
	}
	return result
}

// EquivalentTo reports alpha-equivalence: structural equality after canonical
// variable renaming.
func (c Clause) EquivalentTo(other Clause) bool {
	return c.Key() == other.Key()
}
