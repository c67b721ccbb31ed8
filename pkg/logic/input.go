package logic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// KnowledgeBase is a validated CNF problem: the knowledge-base clauses plus
// an optional already-negated goal clause.
type KnowledgeBase struct {
	Predicates map[string]int
	Clauses    []Clause
	Goal       Clause
}

// SeedClauses returns the clauses a proof attempt starts from: the
// knowledge base followed by the negated goal (when present).
func (kb KnowledgeBase) SeedClauses() []Clause {
	seeds := make([]Clause, len(kb.Clauses), len(kb.Clauses)+1)
	copy(seeds, kb.Clauses)
	if kb.Goal != nil {
		seeds = append(seeds, kb.Goal)
	}
	return seeds
}

// MalformedClauseError reports a literal whose arity disagrees with its
// predicate's declared (or first-seen) arity. It is the only fatal input
// condition.
type MalformedClauseError struct {
	Clause    string
	Predicate string
	Arity     int
	Declared  int
}

func (err MalformedClauseError) Error() string {
	return fmt.Sprintf("malformed clause %v: predicate %q used with arity %d, declared with arity %d",
		err.Clause, err.Predicate, err.Arity, err.Declared)
}

type kbInput struct {
	Predicates map[string]int `mapstructure:"predicates"`
	Clauses    [][]string     `mapstructure:"clauses"`
	Goal       []string       `mapstructure:"goal"`
}

// InputFromFile loads a knowledge base, choosing the decoder by file
// extension (.json, .yaml or .yml).
func InputFromFile(file string) (KnowledgeBase, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return InputFromJson(file)
	case ".yaml", ".yml":
		return InputFromYaml(file)
	default:
		return KnowledgeBase{}, fmt.Errorf("unsupported input extension on %q (expected .json, .yaml or .yml)", file)
	}
}

func InputFromJson(file string) (KnowledgeBase, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return KnowledgeBase{}, err
	}
	var inputMap map[string]any
	if err := json.Unmarshal(bytes, &inputMap); err != nil {
		return KnowledgeBase{}, err
	}
	return inputFromMap(inputMap)
}

func InputFromYaml(file string) (KnowledgeBase, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return KnowledgeBase{}, err
	}
	var inputMap map[string]any
	if err := yaml.Unmarshal(bytes, &inputMap); err != nil {
		return KnowledgeBase{}, err
	}
	return inputFromMap(inputMap)
}

func inputFromMap(inputMap map[string]any) (KnowledgeBase, error) {
	var input kbInput
	if err := mapstructure.Decode(inputMap, &input); err != nil {
		return KnowledgeBase{}, fmt.Errorf("cannot decode input: %v", err)
	}

	kb := KnowledgeBase{Predicates: input.Predicates}
	if kb.Predicates == nil {
		kb.Predicates = make(map[string]int)
	}

	for _, literals := range input.Clauses {
		clause, err := ParseClause(literals)
		if err != nil {
			return KnowledgeBase{}, err
		}
		kb.Clauses = append(kb.Clauses, clause)
	}
	if input.Goal != nil {
		goal, err := ParseClause(input.Goal)
		if err != nil {
			return KnowledgeBase{}, err
		}
		kb.Goal = goal
	}

	if err := kb.validateArities(); err != nil {
		return KnowledgeBase{}, err
	}
	return kb, nil
}

// validateArities checks every literal against the declared arity of its
// predicate; predicates without a declaration take the arity of their first
// occurrence.
func (kb KnowledgeBase) validateArities() error {
	for _, clause := range kb.SeedClauses() {
		for _, literal := range clause {
			declared, known := kb.Predicates[literal.Predicate]
			if !known {
				kb.Predicates[literal.Predicate] = len(literal.Args)
				continue
			}
			if declared != len(literal.Args) {
				return MalformedClauseError{
					Clause:    clause.String(),
					Predicate: literal.Predicate,
					Arity:     len(literal.Args),
					Declared:  declared,
				}
			}
		}
	}
	return nil
}
