package prover

import (
	"fmt"

	"resolution/pkg/logic"
)

// Status is the terminal state of a proof attempt.
type Status int

const (
	Searching Status = iota
	ProvedEmpty
	SaturatedNoProof
)

func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case ProvedEmpty:
		return "proved"
	case SaturatedNoProof:
		return "not-proved"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Result summarizes one proof attempt.
type Result struct {
	Status  Status
	Rounds  int
	Steps   int
	Clauses int
}

type Prover interface {
	Prove(kb logic.KnowledgeBase) Result // Runs resolution to the empty clause or to saturation; always terminates on function-free input
}

func NewProver(tracer Tracer) Prover {
	if tracer == nil {
		tracer = DefaultTracer{}
	}
	return &saturationProver{tracer: tracer}
}

// saturationProver derives resolvents round by round over a snapshot of the
// clause store; clauses inserted mid-round are only paired from the next
// round on, which makes runs reproducible.
type saturationProver struct {
	tracer Tracer
	fresh  uint64
}

func (p *saturationProver) Prove(kb logic.KnowledgeBase) Result {
	store := NewClauseStore()
	result := Result{Status: Searching}

	// Seeds are renamed so no two clauses share variable identity.
	for _, clause := range kb.SeedClauses() {
		store.Insert(p.standardize(clause))
		if clause.Empty() {
			result.Status = ProvedEmpty
			result.Clauses = store.Size()
			return result
		}
	}

	for result.Status == Searching {
		result.Rounds++
		snapshot := store.All()
		progress := false

		for i := 0; i < len(snapshot) && result.Status == Searching; i++ {
			for j := i + 1; j < len(snapshot) && result.Status == Searching; j++ {
				if p.resolvePair(store, snapshot, i, j, &result) {
					progress = true
				}
			}
		}
		if result.Status == Searching && !progress {
			result.Status = SaturatedNoProof
		}
	}

	result.Clauses = store.Size()
	return result
}

// resolvePair standardizes the pair apart, tries every literal pair, and
// inserts every new resolvent. It reports whether the store grew and flips
// the result to ProvedEmpty as soon as the empty clause appears.
func (p *saturationProver) resolvePair(store *ClauseStore, snapshot []logic.Clause, i, j int, result *Result) bool {
	left, right := p.standardize(snapshot[i]), p.standardize(snapshot[j])
	progress := false

	for li, a := range left {
		for ri, b := range right {
			subst, ok := MatchComplementary(a, b)
			if !ok {
				continue
			}
			resolvent := Resolve(left, right, li, ri, subst)
			id, inserted := store.Insert(resolvent)
			if !inserted {
				continue
			}
			progress = true
			result.Steps++
			p.tracer.Trace(Step{
				LeftID:      i,
				RightID:     j,
				Left:        snapshot[i],
				Right:       snapshot[j],
				ResolventID: id,
				Resolvent:   resolvent,
			})
			if resolvent.Empty() {
				result.Status = ProvedEmpty
				return progress
			}
		}
	}
	return progress
}

// standardize renames a clause's variables to globally fresh names, so that
// the two sides of a resolution attempt can never share a variable.
func (p *saturationProver) standardize(clause logic.Clause) logic.Clause {
	return clause.Rename(func(string) string {
		p.fresh++
		return fmt.Sprintf("V%d", p.fresh)
	})
}
