// after Appendix B of http://webyrd.net/quines/quines.pdf

package kanren

import "fmt"

const (
	n0 = Int(0)
	n1 = Int(1)
)

var p1 = List(n1)

// BuildNum returns the little-endian binary list for n, the numeral
// representation used by the arithmetic relations. Zero is the empty
// list.
func BuildNum(n int) Value {
	if n < 0 {
		panic("only non-negative integers supported by BuildNum")
	}
	if n == 0 {
		return Nil
	}
	if n%2 == 0 {
		// n is even
		return Pair{Car: n0, Cdr: BuildNum(n / 2)}
	}
	// n is odd
	return Pair{Car: n1, Cdr: BuildNum((n - 1) / 2)}
}

// ParseNum is the inverse of BuildNum.
func ParseNum(e Value) (int, error) {
	n := 0
	i := 1
	for e != Nil {
		p, ok := e.(Pair)
		if !ok {
			return 0, fmt.Errorf("not a valid oleg numeral: expected list, got %v", e)
		}
		x, ok := p.Car.(Int)
		if !ok || (x != n0 && x != n1) {
			return 0, fmt.Errorf("not a valid oleg numeral: expected bit, got %v", p.Car)
		}
		n += int(x) * i
		i += i
		e = p.Cdr
	}
	return n, nil
}

var zeroo, poso, gt1o, fullAddero, addero, genAddero *Relation

func init() {
	zeroo = Builtins.Defrel("zeroo", []string{"n"}, func(args []Value) []Goal {
		return []Goal{Equalo(Nil, args[0])}
	}, WithVisibility(Exported), WithDoc("n is the numeral zero"))

	poso = Builtins.Defrel("poso", []string{"n"}, func(args []Value) []Goal {
		n := args[0]
		return []Goal{Fresh2("a", "d", func(a, d Value) []Goal {
			return []Goal{Equalo(Cons(a, d), n)}
		})}
	}, WithVisibility(Exported), WithDoc("n is a positive numeral"))

	gt1o = Builtins.Defrel("gt1o", []string{"n"}, func(args []Value) []Goal {
		n := args[0]
		return []Goal{Fresh3("a", "ad", "dd", func(a, ad, dd Value) []Goal {
			return []Goal{Equalo(Cons(a, Cons(ad, dd)), n)}
		})}
	}, WithVisibility(Exported), WithDoc("n is a numeral greater than one"))

	fullAddero = Builtins.Defrel("full-addero", []string{"b", "x", "y", "r", "c"}, func(args []Value) []Goal {
		b, x, y, r, c := args[0], args[1], args[2], args[3], args[4]
		bits := func(vb, vx, vy, vr, vc Int) Clause {
			return Clause{Equalo(vb, b), Equalo(vx, x), Equalo(vy, y), Equalo(vr, r), Equalo(vc, c)}
		}
		return []Goal{Conde(
			bits(n0, n0, n0, n0, n0),
			bits(n1, n0, n0, n1, n0),
			bits(n0, n1, n0, n1, n0),
			bits(n1, n1, n0, n0, n1),
			bits(n0, n0, n1, n1, n0),
			bits(n1, n0, n1, n0, n1),
			bits(n0, n1, n1, n0, n1),
			bits(n1, n1, n1, n1, n1),
		)}
	}, WithDoc("b + x + y = r + 2c over single bits"))

	addero = Builtins.Defrel("addero", []string{"d", "n", "m", "r"}, func(args []Value) []Goal {
		d, n, m, r := args[0], args[1], args[2], args[3]
		return []Goal{Conde(
			Clause{Equalo(n0, d), Equalo(Nil, m), Equalo(n, r)},
			Clause{Equalo(n0, d), Equalo(Nil, n), Equalo(m, r), poso.Call(m)},
			Clause{Equalo(n1, d), Equalo(Nil, m), addero.Call(n0, n, p1, r)},
			Clause{Equalo(n1, d), Equalo(Nil, n), poso.Call(m), addero.Call(n0, p1, m, r)},
			Clause{Equalo(p1, n), Equalo(p1, m), Fresh2("a", "c", func(a, c Value) []Goal {
				return []Goal{Equalo(List(a, c), r), fullAddero.Call(d, n1, n1, a, c)}
			})},
			Clause{Equalo(p1, n), genAddero.Call(d, n, m, r)},
			Clause{Equalo(p1, m), gt1o.Call(n), gt1o.Call(r), addero.Call(d, p1, n, r)},
			Clause{gt1o.Call(n), genAddero.Call(d, n, m, r)},
		)}
	}, WithDoc("n + m + d = r, d being a carry bit"))

	genAddero = Builtins.Defrel("gen-addero", []string{"d", "n", "m", "r"}, func(args []Value) []Goal {
		d, n, m, r := args[0], args[1], args[2], args[3]
		names := []string{"a", "b", "c", "e", "x", "y", "z"}
		return []Goal{Fresh(names, func(v []Value) []Goal {
			a, b, c, e, x, y, z := v[0], v[1], v[2], v[3], v[4], v[5], v[6]
			return []Goal{
				Equalo(Cons(a, x), n),
				Equalo(Cons(b, y), m), poso.Call(y),
				Equalo(Cons(c, z), r), poso.Call(z),
				fullAddero.Call(d, a, b, c, e),
				addero.Call(e, x, y, z),
			}
		})}
	})
}

func Zeroo(n any) Goal { return zeroo.Call(n) }
func Poso(n any) Goal  { return poso.Call(n) }
func Gt1o(n any) Goal  { return gt1o.Call(n) }

func FullAddero(b, x, y, r, c any) Goal { return fullAddero.Call(b, x, y, r, c) }

// Addero holds when n + m + d = r for numerals n, m, r and carry bit d.
func Addero(d, n, m, r any) Goal { return addero.Call(d, n, m, r) }

func GenAddero(d, n, m, r any) Goal { return genAddero.Call(d, n, m, r) }

// Pluso holds when n + m = k.
func Pluso(n, m, k any) Goal {
	return Addero(n0, n, m, k)
}

// Minuso holds when n - m = k.
func Minuso(n, m, k any) Goal {
	return Pluso(m, k, n)
}
