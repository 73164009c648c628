package fpcoll

// Identity returns x unchanged.
func Identity[T any](x T) T {
	return x
}

// Const creates a supplier which always returns x.
func Const[T any](x T) func() T {
	return func() T { return x }
}

// Compose chains first and then: the result maps a to then(first(a)).
func Compose[A, B, C any](first func(A) B, then func(B) C) func(A) C {
	return func(a A) C { return then(first(a)) }
}

// Not negates a boolean. Composed with a predicate, it creates the complement.
func Not(b bool) bool {
	return !b
}

// Equals is a predicate for adjacent elements, suitable for ops.Combine.
func Equals[T comparable](a, b T) bool {
	return a == b
}
