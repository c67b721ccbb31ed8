package logic

// Substitution maps variable names to terms. A variable may be bound to
// another variable, forming a chain; Walk follows chains to the final term.
// The vocabulary is function-free, so no occurs-check is needed (a binding
// can never be cyclic through a compound term).
type Substitution map[string]Term

// Walk follows bindings from t until it reaches an unbound variable or a
// constant.
func (s Substitution) Walk(t Term) Term {
	for t.Variable {
		bound, ok := s[t.Name]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

// Bind records that variable v stands for term t. v must be unbound after
// walking; callers walk both sides before binding.
func (s Substitution) Bind(v Term, t Term) {
	s[v.Name] = t
}

// Apply replaces every variable of the literal by its walked binding.
func (s Substitution) Apply(l Literal) Literal {
	args := make([]Term, len(l.Args))
	for i, arg := range l.Args {
		args[i] = s.Walk(arg)
	}
	return Literal{Negated: l.Negated, Predicate: l.Predicate, Args: args}
}

// ApplyClause applies the substitution to every literal, deduplicating
// literals that collapse onto each other.
func (s Substitution) ApplyClause(c Clause) Clause {
	applied := make([]Literal, len(c))
	for i, literal := range c {
		applied[i] = s.Apply(literal)
	}
	return NewClause(applied...)
}
