package kanren

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Visibility marks whether a relation is meant for use outside the
// package that defines it. It is metadata only.
type Visibility int

const (
	Local Visibility = iota
	Exported
)

func (v Visibility) String() string {
	if v == Exported {
		return "exported"
	}
	return "local"
}

// Relation is a named goal constructor. Its body is only evaluated when
// the stream of an application is forced, so relations may refer to
// themselves.
type Relation struct {
	Name       string
	Params     []string
	Visibility Visibility
	Doc        string

	body func(args []Value) []Goal
}

// RelationOption sets optional metadata on a relation being defined.
type RelationOption func(*Relation)

// WithVisibility sets the relation's Visibility. The default is Local.
func WithVisibility(v Visibility) RelationOption {
	return func(r *Relation) { r.Visibility = v }
}

// WithDoc attaches a one-line description to the relation.
func WithDoc(doc string) RelationOption {
	return func(r *Relation) { r.Doc = doc }
}

// Defrel defines a relation over params. body receives the arguments in
// parameter order and returns the goals to conjoin.
func Defrel(name string, params []string, body func(args []Value) []Goal, opts ...RelationOption) *Relation {
	r := &Relation{
		Name:   name,
		Params: slices.Clone(params),
		body:   body,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Arity is the number of parameters the relation takes.
func (r *Relation) Arity() int {
	return len(r.Params)
}

// Call applies the relation. It panics if the number of arguments does
// not match the parameters.
func (r *Relation) Call(args ...any) Goal {
	if len(args) != len(r.Params) {
		panic(fmt.Sprintf("kanren: %s takes %d arguments, got %d", r.Name, len(r.Params), len(args)))
	}
	vals := make([]Value, len(args))
	for i, a := range args {
		vals[i] = ValueOf(a)
	}
	return func(st State) *Stream {
		own := slices.Clone(vals)
		return suspension(func() *Stream {
			return ConjPlus(r.body(own)...)(st)
		})
	}
}

func (r *Relation) String() string {
	return fmt.Sprintf("(%s %v)", r.Name, r.Params)
}

// Defrel1 defines a relation of one parameter and returns its constructor.
func Defrel1(name, a string, body func(a Value) []Goal, opts ...RelationOption) func(a any) Goal {
	r := Defrel(name, []string{a}, func(args []Value) []Goal {
		return body(args[0])
	}, opts...)
	return func(a any) Goal { return r.Call(a) }
}

// Defrel2 defines a relation of two parameters and returns its constructor.
func Defrel2(name, a, b string, body func(a, b Value) []Goal, opts ...RelationOption) func(a, b any) Goal {
	r := Defrel(name, []string{a, b}, func(args []Value) []Goal {
		return body(args[0], args[1])
	}, opts...)
	return func(a, b any) Goal { return r.Call(a, b) }
}

// Defrel3 defines a relation of three parameters and returns its constructor.
func Defrel3(name, a, b, c string, body func(a, b, c Value) []Goal, opts ...RelationOption) func(a, b, c any) Goal {
	r := Defrel(name, []string{a, b, c}, func(args []Value) []Goal {
		return body(args[0], args[1], args[2])
	}, opts...)
	return func(a, b, c any) Goal { return r.Call(a, b, c) }
}

// Registry is a set of relations addressable by name.
type Registry struct {
	mu        sync.RWMutex
	relations map[string]*Relation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{relations: map[string]*Relation{}}
}

// Builtins holds the relations defined by this package.
var Builtins = NewRegistry()

// Defrel defines a relation and registers it. Redefining a name panics.
func (reg *Registry) Defrel(name string, params []string, body func(args []Value) []Goal, opts ...RelationOption) *Relation {
	r := Defrel(name, params, body, opts...)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.relations[name]; ok {
		panic(fmt.Sprintf("kanren: relation %s defined twice", name))
	}
	reg.relations[name] = r
	return r
}

// Lookup returns the relation registered under name.
func (reg *Registry) Lookup(name string) (*Relation, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.relations[name]
	return r, ok
}

// Relations returns every registered relation sorted by name.
func (reg *Registry) Relations() []*Relation {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Relation, 0, len(reg.relations))
	for _, r := range reg.relations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Exported returns the registered relations marked Exported, sorted by
// name.
func (reg *Registry) Exported() []*Relation {
	var out []*Relation
	for _, r := range reg.Relations() {
		if r.Visibility == Exported {
			out = append(out, r)
		}
	}
	return out
}
