package kanren

var (
	conso, caro, cdro, nullo, pairo *Relation
	membero, appendo, naturalo      *Relation
	nevero, alwayso                 *Relation
)

// relations refer to each other through these variables, which a package
// level initializer cannot do without an initialization cycle
func init() {
	conso = Builtins.Defrel("conso", []string{"a", "d", "p"}, func(args []Value) []Goal {
		a, d, p := args[0], args[1], args[2]
		return []Goal{Equalo(Cons(a, d), p)}
	}, WithVisibility(Exported), WithDoc("p is the pair of a and d"))

	caro = Builtins.Defrel("caro", []string{"p", "a"}, func(args []Value) []Goal {
		p, a := args[0], args[1]
		return []Goal{Fresh1("d", func(d Value) []Goal {
			return []Goal{conso.Call(a, d, p)}
		})}
	}, WithVisibility(Exported), WithDoc("a is the head of p"))

	cdro = Builtins.Defrel("cdro", []string{"p", "d"}, func(args []Value) []Goal {
		p, d := args[0], args[1]
		return []Goal{Fresh1("a", func(a Value) []Goal {
			return []Goal{conso.Call(a, d, p)}
		})}
	}, WithVisibility(Exported), WithDoc("d is the tail of p"))

	nullo = Builtins.Defrel("nullo", []string{"x"}, func(args []Value) []Goal {
		return []Goal{Equalo(Nil, args[0])}
	}, WithVisibility(Exported), WithDoc("x is the empty list"))

	pairo = Builtins.Defrel("pairo", []string{"p"}, func(args []Value) []Goal {
		p := args[0]
		return []Goal{Fresh2("a", "d", func(a, d Value) []Goal {
			return []Goal{conso.Call(a, d, p)}
		})}
	}, WithVisibility(Exported), WithDoc("p is a pair"))

	membero = Builtins.Defrel("membero", []string{"x", "l"}, func(args []Value) []Goal {
		x, l := args[0], args[1]
		return []Goal{Conde(
			Clause{caro.Call(l, x)},
			Clause{Fresh1("d", func(d Value) []Goal {
				return []Goal{cdro.Call(l, d), membero.Call(x, d)}
			})},
		)}
	}, WithVisibility(Exported), WithDoc("x is an element of l"))

	appendo = Builtins.Defrel("appendo", []string{"l", "s", "out"}, func(args []Value) []Goal {
		l, s, out := args[0], args[1], args[2]
		return []Goal{Conde(
			Clause{nullo.Call(l), Equalo(s, out)},
			Clause{Fresh3("a", "d", "res", func(a, d, res Value) []Goal {
				return []Goal{
					conso.Call(a, d, l),
					conso.Call(a, res, out),
					appendo.Call(d, s, res),
				}
			})},
		)}
	}, WithVisibility(Exported), WithDoc("out is l followed by s"))

	naturalo = Builtins.Defrel("naturalo", []string{"from", "n"}, func(args []Value) []Goal {
		from, n := args[0], args[1]
		return []Goal{func(st State) *Stream {
			next, ok := st.walk(from).(Int)
			if !ok {
				return nil
			}
			return Disj(
				Equalo(n, next),
				naturalo.Call(next+1, n),
			)(st)
		}}
	}, WithVisibility(Exported), WithDoc("n is a natural number counting up from from"))

	nevero = Builtins.Defrel("nevero", nil, func([]Value) []Goal {
		return []Goal{nevero.Call()}
	}, WithVisibility(Exported), WithDoc("never succeeds and never fails"))

	alwayso = Builtins.Defrel("alwayso", nil, func([]Value) []Goal {
		return []Goal{Disj(Succeed(), alwayso.Call())}
	}, WithVisibility(Exported), WithDoc("succeeds infinitely often"))
}

// Conso holds when p is the pair of a and d.
func Conso(a, d, p any) Goal { return conso.Call(a, d, p) }

// Caro holds when a is the head of the pair p.
func Caro(p, a any) Goal { return caro.Call(p, a) }

// Cdro holds when d is the tail of the pair p.
func Cdro(p, d any) Goal { return cdro.Call(p, d) }

// Nullo holds when x is the empty list.
func Nullo(x any) Goal { return nullo.Call(x) }

// Pairo holds when p is a pair.
func Pairo(p any) Goal { return pairo.Call(p) }

// Membero holds when x is an element of the list l.
func Membero(x, l any) Goal { return membero.Call(x, l) }

// Appendo holds when out is l followed by s.
func Appendo(l, s, out any) Goal { return appendo.Call(l, s, out) }

// Naturalo enumerates n = from, from+1, from+2, ... without end. from may
// be a variable, but it must be bound to an Int by the time the relation
// runs; otherwise the goal fails.
func Naturalo(from, n any) Goal { return naturalo.Call(from, n) }

// Nevero neither succeeds nor fails; pulling from it never returns.
func Nevero() Goal { return nevero.Call() }

// Alwayso succeeds an unbounded number of times.
func Alwayso() Goal { return alwayso.Call() }
