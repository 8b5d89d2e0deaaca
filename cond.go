package kanren

// Clause is one line of conde, conda or condu: goals that must all hold.
// The first goal is the head tested by conda and condu.
type Clause []Goal

func (c Clause) head() Goal {
	if len(c) == 0 {
		return Succeed()
	}
	return c[0]
}

func (c Clause) rest() []Goal {
	if len(c) == 0 {
		return nil
	}
	return c[1:]
}

// Conde succeeds for every clause that succeeds. Answers of all clauses
// are interleaved.
func Conde(clauses ...Clause) Goal {
	goals := make([]Goal, len(clauses))
	for i, c := range clauses {
		goals[i] = ConjPlus(c...)
	}
	return DisjPlus(goals...)
}

// Conda commits to the first clause whose head succeeds. The remaining
// goals of that clause run on every answer of the head; later clauses are
// never tried, even if those goals fail. The last clause is a plain
// conjunction.
func Conda(clauses ...Clause) Goal {
	switch len(clauses) {
	case 0:
		return Fail()
	case 1:
		return ConjPlus(clauses[0]...)
	}
	c := clauses[0]
	return Ifte(c.head(), ConjPlus(c.rest()...), Conda(clauses[1:]...))
}

// Condu is Conda where the head of each clause contributes at most one
// answer.
func Condu(clauses ...Clause) Goal {
	once := make([]Clause, len(clauses))
	for i, c := range clauses {
		once[i] = append(Clause{Once(c.head())}, c.rest()...)
	}
	return Conda(once...)
}
