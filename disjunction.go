package kanren

// Interleave is an n-ary disjunction that visits its goals round-robin.
// Every round takes one step from each live stream: a mature stream gives
// up its head, an immature one is forced once. Answers of goals that are
// equally productive therefore come out in goal order, and a goal that
// never produces anything cannot delay the others.
func Interleave(goals ...Goal) Goal {
	return func(st State) *Stream {
		streams := make([]*Stream, 0, len(goals))
		for _, g := range goals {
			streams = append(streams, g(st))
		}
		return roundRobin(nil, streams)
	}
}

func roundRobin(buffer []State, streams []*Stream) *Stream {
	if len(buffer) > 0 {
		return cons(buffer[0], roundRobin(buffer[1:], streams))
	}
	if len(streams) == 0 {
		return nil
	}
	return suspension(func() *Stream {
		return roundRobin(refill(streams))
	})
}

// refill takes one step from every stream and returns the heads found
// together with the streams that are not yet exhausted.
func refill(streams []*Stream) ([]State, []*Stream) {
	buffer := []State{}
	active := make([]*Stream, 0, len(streams))
	for _, s := range streams {
		switch {
		case s == nil:
			continue
		case s.immature():
			active = append(active, s.delayed())
		default:
			buffer = append(buffer, s.st)
			active = append(active, s.next)
		}
	}
	return buffer, active
}
