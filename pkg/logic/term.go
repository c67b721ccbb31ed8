package logic

// Term is a single argument of a literal: either a constant (globally
// meaningful name) or a variable (meaningful only within its owning clause).
// The vocabulary is function-free, so terms are never compound.
type Term struct {
	Name     string
	Variable bool
}

func Constant(name string) Term {
	return Term{Name: name}
}

func Variable(name string) Term {
	return Term{Name: name, Variable: true}
}

func (t Term) String() string {
	return t.Name
}
