package logic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ParseLiteral parses the textual literal notation used by knowledge-base
// files: an optional leading '-' for negation, a predicate name, and an
// optional parenthesized argument list, e.g. "-parent(X,homer)". Names
// starting with an uppercase letter or underscore are variables (Prolog
// convention); every other name is a constant.
func ParseLiteral(text string) (Literal, error) {
	trimmed := strings.TrimSpace(text)

	var literal Literal
	if rest, negated := strings.CutPrefix(trimmed, "-"); negated {
		literal.Negated = true
		trimmed = rest
	}

	name, argList, hasArgs := strings.Cut(trimmed, "(")
	if err := validateName(name); err != nil {
		return Literal{}, fmt.Errorf("cannot parse literal %q: %v", text, err)
	}
	literal.Predicate = name

	if !hasArgs {
		return literal, nil
	}
	argList, closed := strings.CutSuffix(argList, ")")
	if !closed {
		return Literal{}, fmt.Errorf("cannot parse literal %q: missing closing parenthesis", text)
	}

	for _, arg := range strings.Split(argList, ",") {
		arg = strings.TrimSpace(arg)
		if err := validateName(arg); err != nil {
			return Literal{}, fmt.Errorf("cannot parse literal %q: %v", text, err)
		}
		if isVariableName(arg) {
			literal.Args = append(literal.Args, Variable(arg))
		} else {
			literal.Args = append(literal.Args, Constant(arg))
		}
	}
	return literal, nil
}

// ParseClause parses each literal text and assembles the clause, preserving
// set semantics.
func ParseClause(literals []string) (Clause, error) {
	parsed := make([]Literal, len(literals))
	for i, text := range literals {
		literal, err := ParseLiteral(text)
		if err != nil {
			return nil, err
		}
		parsed[i] = literal
	}
	return NewClause(parsed...), nil
}

func isVariableName(name string) bool {
	first := []rune(name)[0]
	return first == '_' || unicode.IsUpper(first)
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	runes := []rune(name)
	if !unicode.IsLetter(runes[0]) && runes[0] != '_' {
		return fmt.Errorf("name %q must start with a letter or underscore", name)
	}
	valid := lo.EveryBy(runes, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	})
	if !valid {
		return fmt.Errorf("name %q contains an invalid character", name)
	}
	return nil
}
