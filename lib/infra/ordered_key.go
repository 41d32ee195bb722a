package infra

import "cmp"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of the numeric ordering.
type Number interface {
	Integer | Float
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator is a three-way total order over T.
// Assume i is the new element.
//  1. i == j, return 0.
//  2. i > j, return a positive number, turn to right part.
//  3. i < j, return a negative number, turn to left part.
type Comparator[T any] func(i, j T) int

// OrderedCompare is the natural order of integers, floats and strings.
// NaN is ordered before every other float.
func OrderedCompare[K OrderedKey](i, j K) int {
	return cmp.Compare[K](i, j)
}

// NumericCompare returns the sign of i-j. The difference is never computed,
// so the extreme values of the integer types can not overflow.
func NumericCompare[N Number](i, j N) int {
	return OrderedCompare[N](i, j)
}

// ReverseComparator turns the order upside down.
func ReverseComparator[T any](fn Comparator[T]) Comparator[T] {
	if fn == nil {
		return nil
	}
	return func(i, j T) int {
		return fn(j, i)
	}
}
