// Package collection provides generic, functional-style helpers for slices.
// It mirrors Laravel's Collection API — Map, Filter, Reject, First, Contains,
// Reduce, Sum.
//
// Usage:
//
//	names := collection.Map(products, func(p models.Product) string { return p.Name })
//	tees := collection.Filter(products, func(p models.Product) bool { return p.Category == "tees" })
//	total := collection.Sum(lines, func(l models.CartLine) float64 { return l.Price * float64(l.Quantity) })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject returns elements of s for which fn returns false (inverse of Filter).
func Reject[T any](s []T, fn func(T) bool) []T {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Search returns the index of the first element matching fn, or -1.
func Search[T any](s []T, fn func(T) bool) int {
	for i, v := range s {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// Reduce folds s into a single value, starting from init.
func Reduce[T, R any](s []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds up the numeric value extracted from every element.
func Sum[T any, N int | int64 | float64](s []T, fn func(T) N) N {
	var total N
	for _, v := range s {
		total += fn(v)
	}
	return total
}

// Max returns the largest value extracted from the elements, or zero for
// an empty slice.
func Max[T any, N int | int64 | float64](s []T, fn func(T) N) N {
	var max N
	for _, v := range s {
		if n := fn(v); n > max {
			max = n
		}
	}
	return max
}
