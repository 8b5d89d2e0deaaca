package kanren

// ConjSCE is a short-circuiting Conj.
// Conj cannot notice that g2 fails when g1 never produces an answer:
// bind keeps forcing g1 forever. ConjSCE also runs g2 alone against the
// incoming state, stepping both streams in lock-step. If that lookahead
// runs dry before the conjunction yields anything, the whole goal fails.
// As soon as either side produces an answer the lookahead is dropped and
// the plain conjunction continues.
// Only sound when failure of g2 is preserved by extending the state,
// which holds for goals built from unification alone.
func ConjSCE(g1, g2 Goal) Goal {
	return func(st State) *Stream {
		return shortCircuit(Conj(g1, g2)(st), g2(st))
	}
}

func shortCircuit(str, ahead *Stream) *Stream {
	switch {
	case str == nil:
		return nil
	case !str.immature():
		return str
	case ahead == nil:
		return nil
	case !ahead.immature():
		return str
	}
	return suspension(func() *Stream {
		return shortCircuit(str.delayed(), ahead.delayed())
	})
}
