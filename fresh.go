package kanren

// Fresh introduces one new variable per name and conjoins the goals body
// builds with them. Each call allocates new variables, even when names
// repeat across calls.
func Fresh(names []string, body func(vars []Value) []Goal) Goal {
	vars := make([]Value, len(names))
	for i, name := range names {
		vars[i] = NewVar(name)
	}
	return ConjPlus(body(vars)...)
}

// missing macros here. fixed arity variants of Fresh for the common cases

// Fresh1 is Fresh for a single variable.
func Fresh1(x string, body func(x Value) []Goal) Goal {
	return ConjPlus(body(NewVar(x))...)
}

// Fresh2 is Fresh for two variables.
func Fresh2(x, y string, body func(x, y Value) []Goal) Goal {
	return ConjPlus(body(NewVar(x), NewVar(y))...)
}

// Fresh3 is Fresh for three variables.
func Fresh3(x, y, z string, body func(x, y, z Value) []Goal) Goal {
	return ConjPlus(body(NewVar(x), NewVar(y), NewVar(z))...)
}
