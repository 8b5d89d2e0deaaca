// Package kanren is a miniKanren embedded in Go: goals are functions from
// a state to a lazy stream of states, composed with conjunction,
// disjunction, relations with suspended bodies, and the conde/conda/condu
// clause operators.
package kanren

// Goal maps a state to the stream of states in which it holds.
type Goal func(State) *Stream

// Succeed holds in every state.
func Succeed() Goal {
	return func(st State) *Stream {
		return unit(st)
	}
}

// Fail holds in no state.
func Fail() Goal {
	return func(State) *Stream {
		return nil
	}
}

// Equalo unifies u and v.
func Equalo(u, v any) Goal {
	uv, vv := ValueOf(u), ValueOf(v)
	return func(st State) *Stream {
		s, ok := st.unify(uv, vv)
		if !ok {
			return nil
		}
		return unit(s)
	}
}

// Disj interleaves the answers of g1 and g2.
func Disj(g1, g2 Goal) Goal {
	return func(st State) *Stream {
		return mplus(g1(st), g2(st))
	}
}

// Conj runs g2 in every state produced by g1.
func Conj(g1, g2 Goal) Goal {
	return func(st State) *Stream {
		return bind(g1(st), g2)
	}
}

// DisjPlus folds goals to the right with Disj. No goals fail; a single
// goal is returned as is.
func DisjPlus(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail()
	case 1:
		return goals[0]
	}
	return Disj(goals[0], DisjPlus(goals[1:]...))
}

// ConjPlus folds goals to the right with Conj. No goals succeed; a single
// goal is returned as is.
func ConjPlus(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed()
	case 1:
		return goals[0]
	}
	return Conj(goals[0], ConjPlus(goals[1:]...))
}

// Ifte runs then on every answer of cond. If cond has no answers at all,
// it runs els on the original state instead.
func Ifte(cond, then, els Goal) Goal {
	return func(st State) *Stream {
		var loop func(s *Stream) *Stream
		loop = func(s *Stream) *Stream {
			switch {
			case s == nil:
				return els(st)
			case s.immature():
				return suspension(func() *Stream {
					return loop(s.delayed())
				})
			}
			return bind(s, then)
		}
		return loop(cond(st))
	}
}

// Once cuts the answers of g down to its first.
func Once(g Goal) Goal {
	return func(st State) *Stream {
		var loop func(s *Stream) *Stream
		loop = func(s *Stream) *Stream {
			switch {
			case s == nil:
				return nil
			case s.immature():
				return suspension(func() *Stream {
					return loop(s.delayed())
				})
			}
			return unit(s.st)
		}
		return loop(g(st))
	}
}
