package slotlru

import (
	"golang.org/x/exp/constraints"
)

// Ordered is the key-comparison constraint used throughout this package.
// Cmp returns a negative number if the receiver is less than other, zero
// if they are equal, and a positive number if the receiver is greater.
//
// Two keys are considered equal iff neither compares less than the other;
// the order index relies on this to dedupe keys and to binary-search.
type Ordered[T any] interface {
	Cmp(T) int
}

// NativeOrdered wraps a primitive ordered type (the types enumerated by
// constraints.Ordered) so it satisfies Ordered[T], for callers who don't
// want to write a Cmp method for an int or string key.
type NativeOrdered[T constraints.Ordered] struct {
	Val T
}

func (a NativeOrdered[T]) Cmp(b NativeOrdered[T]) int {
	switch {
	case a.Val < b.Val:
		return -1
	case a.Val > b.Val:
		return 1
	default:
		return 0
	}
}

var _ Ordered[NativeOrdered[int]] = NativeOrdered[int]{}

// cmpUint compares two values of an unsigned index type, returning -1,
// 0 or 1, without involving the caller's key-ordering at all. Nothing
// in the package calls it at present; sentinel checks compare slot
// indices with == and != directly.
func cmpUint[T constraints.Unsigned](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}
