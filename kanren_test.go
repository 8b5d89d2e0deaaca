package kanren

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fives(x Value) Goal {
	return Disj(Equalo(x, 5), Delay(func() Goal { return fives(x) }))
}

func sixes(x Value) Goal {
	return Disj(Equalo(x, 6), Delay(func() Goal { return sixes(x) }))
}

func sevens(x Value) Goal {
	return Disj(Equalo(x, 7), Delay(func() Goal { return sevens(x) }))
}

func goals(g ...Goal) []Goal { return g }

func TestKanren(t *testing.T) {
	n5, n6, n7 := Int(5), Int(6), Int(7)
	for i, tt := range []struct {
		goal func(q Value) []Goal
		take int
		want []Value
	}{
		{
			goal: func(q Value) []Goal {
				return goals(Equalo(q, n5))
			},
			want: []Value{n5},
		},
		{
			goal: func(q Value) []Goal {
				return goals(Disj(Equalo(q, n5), Equalo(q, n6)))
			},
			want: []Value{n5, n6},
		},
		{
			goal: func(x Value) []Goal {
				return goals(fives(x))
			},
			take: 3,
			want: []Value{n5, n5, n5},
		},
		{
			goal: func(x Value) []Goal {
				return goals(Disj(fives(x), Disj(sixes(x), sevens(x))))
			},
			take: 9,
			want: []Value{n5, n6, n5, n7, n5, n6, n5, n7, n5},
		},
		{
			goal: func(x Value) []Goal {
				return goals(DisjPlus(fives(x), sixes(x), sevens(x)))
			},
			take: 9,
			want: []Value{n5, n6, n5, n7, n5, n6, n5, n7, n5},
		},
		{
			goal: func(x Value) []Goal {
				return goals(Interleave(fives(x), sixes(x), sevens(x)))
			},
			take: 9,
			want: []Value{n5, n6, n7, n5, n6, n7, n5, n6, n7},
		},
		{
			goal: func(x Value) []Goal {
				return goals(Interleave(Nevero(), fives(x), sixes(x), sevens(x)))
			},
			take: 9,
			want: []Value{n5, n6, n7, n5, n6, n7, n5, n6, n7},
		},
		{
			goal: func(q Value) []Goal {
				return goals(Fresh2("x", "y", func(x, y Value) []Goal {
					return goals(Equalo(x, n5), Equalo(y, n6), Equalo(q, Cons(x, y)))
				}))
			},
			want: []Value{Pair{n5, n6}},
		},
		{
			goal: func(q Value) []Goal {
				return goals(Fresh2("x", "y", func(x, y Value) []Goal {
					return goals(Equalo(q, Cons(x, y)), Conj(Equalo(x, n5), Equalo(y, n6)))
				}))
			},
			want: []Value{Pair{n5, n6}},
		},
		{
			goal: func(q Value) []Goal {
				return goals(Equalo(n5, n6))
			},
			want: []Value{},
		},
		{
			goal: func(q Value) []Goal {
				return goals(ConjSCE(Equalo(n5, n6), Nevero()))
			},
			want: []Value{},
		},
		{
			goal: func(q Value) []Goal {
				return goals(ConjSCE(Nevero(), Equalo(n5, n6)))
			},
			want: []Value{},
		},
		{
			goal: func(x Value) []Goal {
				return goals(Fresh1("y", func(y Value) []Goal {
					return goals(ConjSCE(Equalo(y, n5), Equalo(x, y)))
				}))
			},
			want: []Value{n5},
		},
		{
			goal: func(x Value) []Goal {
				return goals(Equalo(x, Cons(1, x)))
			},
			want: []Value{},
		},
	} {
		var got []Value
		if tt.take == 0 {
			got = RunStar("q", tt.goal)
		} else {
			got = Run(tt.take, "q", tt.goal)
		}
		assert.Equal(t, tt.want, got, "%d)", i)
	}
}

func funcPointer(g Goal) uintptr {
	return reflect.ValueOf(g).Pointer()
}

func neverApplied(State) *Stream {
	panic("goal applied")
}

func TestFoldIdentities(t *testing.T) {
	st := EmptyState()

	s := ConjPlus()(st)
	require.NotNil(t, s)
	assert.Len(t, s.TakeAll(), 1, "empty conjunction succeeds once")

	assert.Nil(t, DisjPlus()(st), "empty disjunction fails")

	// singletons are returned as is, not wrapped
	assert.Equal(t, funcPointer(neverApplied), funcPointer(ConjPlus(neverApplied)))
	assert.Equal(t, funcPointer(neverApplied), funcPointer(DisjPlus(neverApplied)))
	assert.NotEqual(t, funcPointer(neverApplied), funcPointer(ConjPlus(neverApplied, neverApplied)))
}

func TestFoldDirection(t *testing.T) {
	n5, n6, n7 := Int(5), Int(6), Int(7)
	right := Run(9, "x", func(x Value) []Goal {
		return goals(DisjPlus(fives(x), sixes(x), sevens(x)))
	})
	left := Run(9, "x", func(x Value) []Goal {
		return goals(Disj(DisjPlus(fives(x), sixes(x)), sevens(x)))
	})
	assert.Equal(t, []Value{n5, n6, n5, n7, n5, n6, n5, n7, n5}, right)
	assert.Equal(t, []Value{n5, n7, n6, n7, n5, n7, n6, n7, n5}, left)
	assert.ElementsMatch(t, []Value{n5, n6, n7}, uniq(right))
	assert.ElementsMatch(t, []Value{n5, n6, n7}, uniq(left))
}

func TestConjAssociativity(t *testing.T) {
	g0 := func(x, y Value) Goal { return Membero(x, List(1, 2)) }
	g1 := func(x, y Value) Goal { return Membero(y, List("a", "b")) }
	g2 := func(x, y Value) Goal { return Conde(Clause{Equalo(x, 1)}, Clause{Equalo(y, "b")}) }

	right := RunStarVars([]string{"x", "y"}, func(v []Value) []Goal {
		return goals(ConjPlus(g0(v[0], v[1]), g1(v[0], v[1]), g2(v[0], v[1])))
	})
	left := RunStarVars([]string{"x", "y"}, func(v []Value) []Goal {
		return goals(ConjPlus(ConjPlus(g0(v[0], v[1]), g1(v[0], v[1])), g2(v[0], v[1])))
	})
	assert.ElementsMatch(t, right, left)
	assert.ElementsMatch(t, []Value{
		List(1, "a"), List(1, "b"), List(1, "b"), List(2, "b"),
	}, right)
}

func TestOnce(t *testing.T) {
	got := RunStar("q", func(q Value) []Goal {
		return goals(Once(Membero(q, List(1, 2, 3))))
	})
	assert.Equal(t, []Value{Int(1)}, got)

	got = RunStar("q", func(q Value) []Goal {
		return goals(Once(Membero(q, Nil)))
	})
	assert.Empty(t, got)
}

func TestIfte(t *testing.T) {
	got := RunStar("q", func(q Value) []Goal {
		return goals(Ifte(Membero(q, List(1, 2)), Succeed(), Equalo(q, 3)))
	})
	assert.Equal(t, []Value{Int(1), Int(2)}, got)

	got = RunStar("q", func(q Value) []Goal {
		return goals(Ifte(Fail(), Succeed(), Equalo(q, 3)))
	})
	assert.Equal(t, []Value{Int(3)}, got)

	// a condition that only produces answers after suspending still
	// selects the then branch
	got = Run(1, "q", func(q Value) []Goal {
		return goals(Ifte(Naturalo(0, q), Succeed(), Equalo(q, "never")))
	})
	assert.Equal(t, []Value{Int(0)}, got)
}

func uniq(vs []Value) []Value {
	seen := map[Value]bool{}
	var out []Value
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
