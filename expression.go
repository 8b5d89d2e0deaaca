package kanren

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"
)

// Value is a term: a logic variable, an atom, or a pair.
// lack of union types makes us invent things like this
type Value interface {
	isValue()
	String() string
}

// Valuer is implemented by host types that can be used as relation
// arguments.
type Valuer interface {
	ToValue() Value
}

// Var is a logic variable. Identity is the id; the name is only for
// debugging.
type Var struct {
	id   uint64
	name string
}

var varCounter atomic.Uint64

// NewVar returns a variable distinct from every other variable,
// including those created with the same name.
func NewVar(name string) Var {
	return Var{id: varCounter.Add(1), name: name}
}

func (v Var) Name() string { return v.name }

type Int int64

type Str string

type Bool bool

// Sym is a symbol atom.
type Sym string

// Unbound is what reification puts in place of a variable left unbound:
// the n-th distinct such variable becomes Unbound(n), printed _.n. It is
// a type of its own so that no symbol can be mistaken for it.
type Unbound int

type special uint8

const (
	emptylist special = iota
)

// Nil is the empty list.
const Nil = emptylist

type Pair struct {
	Car Value
	Cdr Value
}

func (Var) isValue()     {}
func (Int) isValue()     {}
func (Str) isValue()     {}
func (Bool) isValue()    {}
func (Sym) isValue()     {}
func (Unbound) isValue() {}
func (special) isValue() {}
func (Pair) isValue()    {}

// Cons builds a pair from two convertible values.
func Cons(car, cdr any) Value {
	return Pair{Car: ValueOf(car), Cdr: ValueOf(cdr)}
}

// List builds a proper list.
func List(e ...any) Value {
	var out Value = emptylist
	for i := len(e) - 1; i >= 0; i-- {
		out = Pair{Car: ValueOf(e[i]), Cdr: out}
	}
	return out
}

// ValueOf converts x into a Value. It panics on types it cannot convert.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return emptylist
	case Value:
		return t
	case Valuer:
		return t.ToValue()
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case uint:
		return uintValue(uint64(t))
	case uint64:
		return uintValue(t)
	case uintptr:
		return uintValue(uint64(t))
	case string:
		return Str(norm.NFC.String(t))
	case bool:
		return Bool(t)
	case []Value:
		return listOf(len(t), func(i int) Value { return t[i] })
	case []any:
		return listOf(len(t), func(i int) Value { return ValueOf(t[i]) })
	case []int:
		return listOf(len(t), func(i int) Value { return Int(t[i]) })
	case []string:
		return listOf(len(t), func(i int) Value { return ValueOf(t[i]) })
	}
	panic(fmt.Sprintf("kanren: cannot convert %T to a Value", x))
}

func uintValue(u uint64) Value {
	if u > math.MaxInt64 {
		panic(fmt.Sprintf("kanren: %d overflows Int", u))
	}
	return Int(u)
}

func listOf(n int, at func(int) Value) Value {
	var out Value = emptylist
	for i := n - 1; i >= 0; i-- {
		out = Pair{Car: at(i), Cdr: out}
	}
	return out
}

// Slice returns the elements of a proper list. ok is false for anything
// that is not a proper list.
func Slice(v Value) (elems []Value, ok bool) {
	for {
		if v == emptylist {
			return elems, true
		}
		p, isPair := v.(Pair)
		if !isPair {
			return nil, false
		}
		elems = append(elems, p.Car)
		v = p.Cdr
	}
}

// Native converts a value into plain Go data for encoding: proper lists
// become slices, improper pairs become a car/cdr map and variables
// become their display string.
func Native(v Value) any {
	switch t := v.(type) {
	case Int:
		return int64(t)
	case Str:
		return string(t)
	case Bool:
		return bool(t)
	case Sym:
		return string(t)
	case Unbound:
		return t.String()
	case Var:
		return t.String()
	case special:
		return []any{}
	case Pair:
		if elems, ok := Slice(t); ok {
			out := make([]any, len(elems))
			for i, e := range elems {
				out[i] = Native(e)
			}
			return out
		}
		return map[string]any{"car": Native(t.Car), "cdr": Native(t.Cdr)}
	}
	return nil
}

// remainder is formatting logic

func (v Var) String() string {
	return v.name + "#" + strconv.FormatUint(v.id, 10)
}

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (s Str) String() string {
	return strconv.Quote(string(s))
}

func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (s Sym) String() string {
	return string(s)
}

func (u Unbound) String() string {
	return "_." + strconv.Itoa(int(u))
}

func (s special) String() string {
	switch s {
	case emptylist:
		return "()"
	default:
		panic("unknown special")
	}
}

func (p Pair) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(p.Car.String())
	var rest Value = p.Cdr
	for {
		switch t := rest.(type) {
		case Pair:
			sb.WriteString(" ")
			sb.WriteString(t.Car.String())
			rest = t.Cdr
			continue
		case special:
		default:
			sb.WriteString(" . ")
			sb.WriteString(t.String())
		}
		break
	}
	sb.WriteString(")")
	return sb.String()
}
