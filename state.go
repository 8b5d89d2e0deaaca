package kanren

// State is a substitution under construction. States are never
// modified; goals derive new states from the ones they receive.
type State struct {
	sub *substitution
}

// EmptyState has no bindings.
func EmptyState() State {
	return State{}
}

// Bindings reports how many variables the state binds.
func (st State) Bindings() int {
	return st.sub.Len()
}

func (st State) walk(u Value) Value {
	for {
		uvar, ok := u.(Var)
		if !ok {
			return u
		}
		e, ok := st.sub.Lookup(uvar)
		if !ok {
			return u
		}
		u = e
	}
}

func (st State) walkstar(u Value) Value {
	v := st.walk(u)
	if t, ok := v.(Pair); ok {
		return Pair{Car: st.walkstar(t.Car), Cdr: st.walkstar(t.Cdr)}
	}
	return v
}

func (st State) extend(v Var, e Value) (State, bool) {
	if st.occursCheck(v, e) {
		return State{}, false
	}
	return State{sub: st.sub.Insert(v, e)}, true
}

func (st State) unify(u, v Value) (State, bool) {
	u0 := st.walk(u)
	v0 := st.walk(v)
	if u0 == v0 {
		return st, true
	}
	if uvar, ok := u0.(Var); ok {
		return st.extend(uvar, v0)
	}
	if vvar, ok := v0.(Var); ok {
		return st.extend(vvar, u0)
	}
	upair, uok := u0.(Pair)
	vpair, vok := v0.(Pair)
	if uok && vok {
		s0, ok := st.unify(upair.Car, vpair.Car)
		if !ok {
			return State{}, false
		}
		return s0.unify(upair.Cdr, vpair.Cdr)
	}
	return State{}, false
}

func (st State) occursCheck(v Var, e Value) bool {
	e0 := st.walk(e)
	if evar, ok := e0.(Var); ok {
		return v == evar
	}
	epair, ok := e0.(Pair)
	if !ok {
		return false
	}
	return st.occursCheck(v, epair.Car) || st.occursCheck(v, epair.Cdr)
}

// Reify resolves v as far as the state allows. Variables that remain
// unbound become Unbound(0), Unbound(1), ... in order of first
// appearance.
func (st State) Reify(v Value) Value {
	v = st.walkstar(v)
	names := map[Var]Unbound{}
	return reifyNames(v, names)
}

func reifyNames(v Value, names map[Var]Unbound) Value {
	switch t := v.(type) {
	case Var:
		s, ok := names[t]
		if !ok {
			s = Unbound(len(names))
			names[t] = s
		}
		return s
	case Pair:
		car := reifyNames(t.Car, names)
		return Pair{Car: car, Cdr: reifyNames(t.Cdr, names)}
	}
	return v
}
