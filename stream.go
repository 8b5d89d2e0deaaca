package kanren

// Stream is a lazy sequence of states. A nil *Stream is empty. A mature
// stream has a head state and a tail; an immature stream holds a
// suspension that produces the rest when forced.
type Stream struct {
	st      State
	next    *Stream
	delayed func() *Stream // signals an immature stream
}

func unit(st State) *Stream {
	return &Stream{st: st}
}

func cons(st State, next *Stream) *Stream {
	return &Stream{st: st, next: next}
}

func suspension(f func() *Stream) *Stream {
	return &Stream{delayed: f}
}

func (s *Stream) immature() bool {
	return s != nil && s.delayed != nil
}

// Delay defers building a goal until the stream it feeds is forced.
func Delay(f func() Goal) Goal {
	return func(st State) *Stream {
		return suspension(func() *Stream {
			return f()(st)
		})
	}
}

func mplus(s1, s2 *Stream) *Stream {
	switch {
	case s1 == nil:
		return s2
	case s1.immature():
		return suspension(func() *Stream {
			return mplus(s2, s1.delayed())
		})
	}
	return cons(s1.st, mplus(s1.next, s2))
}

func bind(s *Stream, g Goal) *Stream {
	switch {
	case s == nil:
		return nil
	case s.immature():
		return suspension(func() *Stream {
			return bind(s.delayed(), g)
		})
	}
	return mplus(g(s.st), bind(s.next, g))
}

// pull forces suspensions until the stream is mature or empty. forced,
// when non-nil, is incremented once per suspension.
func pull(s *Stream, forced *int) *Stream {
	for s.immature() {
		s = s.delayed()
		if forced != nil {
			*forced++
		}
	}
	return s
}

// Take returns at most n states. The tail after the n-th state is never
// forced.
func (s *Stream) Take(n int) []State {
	states := []State{}
	for n > 0 {
		s = pull(s, nil)
		if s == nil {
			break
		}
		states = append(states, s.st)
		s = s.next
		n--
	}
	return states
}

// TakeAll pulls the stream to exhaustion. It does not return for
// infinite streams.
func (s *Stream) TakeAll() []State {
	states := []State{}
	for {
		s = pull(s, nil)
		if s == nil {
			return states
		}
		states = append(states, s.st)
		s = s.next
	}
}
