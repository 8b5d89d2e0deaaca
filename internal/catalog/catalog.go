// Package catalog holds named example queries over the kanren library.
// The CLI runs them and the golden tests pin their answers.
package catalog

import (
	"sort"

	"github.com/deosjr/kanren"
)

// Query is a named query with its variables and goals.
type Query struct {
	Name        string
	Description string
	Vars        []string
	// Infinite marks queries with infinitely many answers; running them
	// unbounded would never return.
	Infinite bool
	Body     func(vars []kanren.Value) []kanren.Goal
}

var queries = map[string]*Query{}

func register(q *Query) {
	if _, ok := queries[q.Name]; ok {
		panic("catalog: duplicate query " + q.Name)
	}
	queries[q.Name] = q
}

// Lookup finds a query by name.
func Lookup(name string) (*Query, bool) {
	q, ok := queries[name]
	return q, ok
}

// All returns every query sorted by name.
func All() []*Query {
	out := make([]*Query, 0, len(queries))
	for _, q := range queries {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var fives, sixes, sevens func(x any) kanren.Goal

// chaino relates x to a chain of variables of any length ending in 1.
var chaino func(x any) kanren.Goal

func repeato(name string, n int, self *func(any) kanren.Goal) func(any) kanren.Goal {
	return kanren.Defrel1(name, "x", func(x kanren.Value) []kanren.Goal {
		return []kanren.Goal{kanren.Disj(kanren.Equalo(x, n), (*self)(x))}
	})
}

func init() {
	fives = repeato("fives", 5, &fives)
	sixes = repeato("sixes", 6, &sixes)
	sevens = repeato("sevens", 7, &sevens)
	chaino = kanren.Defrel1("chaino", "x", func(x kanren.Value) []kanren.Goal {
		return []kanren.Goal{kanren.Conde(
			kanren.Clause{kanren.Equalo(x, 1)},
			kanren.Clause{kanren.Fresh1("y", func(y kanren.Value) []kanren.Goal {
				return []kanren.Goal{kanren.Equalo(x, y), chaino(y)}
			})},
		)}
	})

	register(&Query{
		Name:        "membero",
		Description: "members of the list (1 2 3)",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Membero(v[0], kanren.List(1, 2, 3))}
		},
	})
	register(&Query{
		Name:        "appendo",
		Description: "every way to split (1 2 3) into two lists",
		Vars:        []string{"x", "y"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Appendo(v[0], v[1], kanren.List(1, 2, 3))}
		},
	})
	register(&Query{
		Name:        "naturals",
		Description: "the natural numbers counting up from 0",
		Vars:        []string{"n"},
		Infinite:    true,
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Naturalo(0, v[0])}
		},
	})
	register(&Query{
		Name:        "fair-disj",
		Description: "fives, sixes and sevens folded into one disjunction",
		Vars:        []string{"x"},
		Infinite:    true,
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.DisjPlus(fives(v[0]), sixes(v[0]), sevens(v[0]))}
		},
	})
	register(&Query{
		Name:        "round-robin",
		Description: "nevero, fives, sixes and sevens interleaved round-robin",
		Vars:        []string{"x"},
		Infinite:    true,
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Interleave(kanren.Nevero(), fives(v[0]), sixes(v[0]), sevens(v[0]))}
		},
	})
	register(&Query{
		Name:        "pluso",
		Description: "every pair of binary numerals summing to 4",
		Vars:        []string{"x", "y"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Pluso(v[0], v[1], kanren.BuildNum(4))}
		},
	})
	register(&Query{
		Name:        "minuso",
		Description: "7 - 3 in binary numerals",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Minuso(kanren.BuildNum(7), kanren.BuildNum(3), v[0])}
		},
	})
	register(&Query{
		Name:        "conde",
		Description: "three clauses, every succeeding clause contributes",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{threeClauses(kanren.Conde, v[0])}
		},
	})
	register(&Query{
		Name:        "conda",
		Description: "three clauses, commits to the first whose head succeeds",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{threeClauses(kanren.Conda, v[0])}
		},
	})
	register(&Query{
		Name:        "condu",
		Description: "conda over a head with two answers, only the first is kept",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			q := v[0]
			return []kanren.Goal{kanren.Condu(
				kanren.Clause{kanren.Membero(q, kanren.List("olive", "oil")), kanren.Succeed()},
				kanren.Clause{kanren.Equalo(q, "virgin")},
			)}
		},
	})
	register(&Query{
		Name:        "chain",
		Description: "a self-referential chain of equalities of any length",
		Vars:        []string{"q"},
		Infinite:    true,
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{chaino(v[0])}
		},
	})
	register(&Query{
		Name:        "short-circuit",
		Description: "nevero conjoined with a goal that fails on its own still terminates",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.ConjSCE(kanren.Nevero(), kanren.Conj(kanren.Equalo(v[0], 1), kanren.Equalo(v[0], 2)))}
		},
	})
	register(&Query{
		Name:        "unbound",
		Description: "reification of variables left unbound",
		Vars:        []string{"q"},
		Body: func(v []kanren.Value) []kanren.Goal {
			return []kanren.Goal{kanren.Fresh2("x", "y", func(x, y kanren.Value) []kanren.Goal {
				return []kanren.Goal{kanren.Equalo(v[0], kanren.List(x, y, x))}
			})}
		},
	})
}

// threeClauses is the shape used to contrast the clause operators: the
// first clause's head succeeds but its continuation fails.
func threeClauses(op func(...kanren.Clause) kanren.Goal, q kanren.Value) kanren.Goal {
	return op(
		kanren.Clause{kanren.Equalo(q, "tea"), kanren.Fail()},
		kanren.Clause{kanren.Equalo(q, "cup")},
		kanren.Clause{kanren.Equalo(q, "saucer")},
	)
}
