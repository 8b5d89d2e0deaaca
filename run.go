package kanren

import (
	"context"
	"iter"
)

// query is a goal together with the value to reify from its answers.
type query struct {
	goal Goal
	q    Value
}

// newQuery binds the query variables and conjoins body's goals under
// them. With one name the variable itself is reified; with several, a
// vector variable is unified with the list of them and reified instead.
func newQuery(names []string, body func(vars []Value) []Goal) query {
	var q Value
	g := Fresh(names, func(vars []Value) []Goal {
		if len(vars) == 1 {
			q = vars[0]
			return body(vars)
		}
		vec := NewVar("q")
		q = vec
		return append([]Goal{Equalo(vec, List(valuesToAny(vars)...))}, body(vars)...)
	})
	return query{goal: g, q: q}
}

func valuesToAny(vs []Value) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func single(body func(q Value) []Goal) func([]Value) []Goal {
	return func(vars []Value) []Goal {
		return body(vars[0])
	}
}

func (qy query) stream() *Stream {
	return qy.goal(EmptyState())
}

func (qy query) reify(states []State) []Value {
	out := make([]Value, len(states))
	for i, st := range states {
		out[i] = st.Reify(qy.q)
	}
	return out
}

// Run returns at most n answers for q. Nothing past the n-th answer is
// computed; for n <= 0 body is never called and nothing is applied.
func Run(n int, q string, body func(q Value) []Goal) []Value {
	return RunVars(n, []string{q}, single(body))
}

// RunVars is Run over several query variables; each answer is the list
// of their values.
func RunVars(n int, names []string, body func(vars []Value) []Goal) []Value {
	if n <= 0 {
		return []Value{}
	}
	qy := newQuery(names, body)
	return qy.reify(qy.stream().Take(n))
}

// RunStar returns every answer for q. It does not return if there are
// infinitely many.
func RunStar(q string, body func(q Value) []Goal) []Value {
	return RunStarVars([]string{q}, single(body))
}

func RunStarVars(names []string, body func(vars []Value) []Goal) []Value {
	qy := newQuery(names, body)
	return qy.reify(qy.stream().TakeAll())
}

// RunSeq returns a handle that computes answers for q on demand.
func RunSeq(q string, body func(q Value) []Goal) *Solutions {
	return RunSeqVars([]string{q}, single(body))
}

func RunSeqVars(names []string, body func(vars []Value) []Goal) *Solutions {
	qy := newQuery(names, body)
	return &Solutions{q: qy.q, start: qy.goal}
}

// Solutions pulls answers of a query one at a time. The goal is not
// applied until the first pull, and every pull forces only as many
// suspensions as it takes to reach the next answer.
type Solutions struct {
	q      Value
	start  Goal
	s      *Stream
	begun  bool
	forced int
}

// Next returns the next answer, or false once there are no more.
func (sol *Solutions) Next() (Value, bool) {
	sol.begin()
	sol.s = pull(sol.s, &sol.forced)
	return sol.advance()
}

// NextContext is Next, but checks ctx before every suspension it forces.
// It returns ctx's error as soon as ctx is done; the handle stays usable
// and a later pull resumes the search.
func (sol *Solutions) NextContext(ctx context.Context) (Value, bool, error) {
	sol.begin()
	for sol.s.immature() {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		sol.s = sol.s.delayed()
		sol.forced++
	}
	v, ok := sol.advance()
	return v, ok, nil
}

func (sol *Solutions) begin() {
	if !sol.begun {
		sol.s = sol.start(EmptyState())
		sol.begun = true
	}
}

// advance takes the head of a stream that is mature or empty.
func (sol *Solutions) advance() (Value, bool) {
	if sol.s == nil {
		return nil, false
	}
	st := sol.s.st
	sol.s = sol.s.next
	return st.Reify(sol.q), true
}

// Take pulls up to n more answers.
func (sol *Solutions) Take(n int) []Value {
	out := []Value{}
	for ; n > 0; n-- {
		v, ok := sol.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// All yields the remaining answers. Stopping the loop early leaves the
// rest unexplored; a later pull resumes where the loop stopped.
func (sol *Solutions) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			v, ok := sol.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Forced reports how many suspensions have been forced so far.
func (sol *Solutions) Forced() int {
	return sol.forced
}
