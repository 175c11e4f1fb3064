// Package mask holds the bit logic shared by generated bitmask types.
//
// Generated types with an integer representation delegate their predicates to the generic
// functions here; 128-bit types are backed by Uint128 or Int128.
package mask

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits of T.
func Width[T constraints.Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// None returns the value with no bit set.
func None[T constraints.Integer]() T {
	return 0
}

// All returns the value with every bit of T set, the maximum for unsigned types and -1 for signed.
func All[T constraints.Integer]() T {
	return ^T(0)
}

// Bit returns the value with only bit i set. For signed types the top bit is the minimum value.
func Bit[T constraints.Integer](i int) T {
	if i < 0 || i >= Width[T]() {
		panic(fmt.Errorf("bit %d out of range for %d-bit mask", i, Width[T]()))
	}
	return T(1) << i
}

func IsNone[T constraints.Integer](m T) bool {
	return m == None[T]()
}

func IsAll[T constraints.Integer](m T) bool {
	return m == All[T]()
}

// Contains reports whether every bit of o is set in m.
func Contains[T constraints.Integer](m, o T) bool {
	return m&o == o
}

// Intersects reports whether any bit of o is set in m.
func Intersects[T constraints.Integer](m, o T) bool {
	return m&o != 0
}

func Union[T constraints.Integer](m, o T) T {
	return m | o
}

func Intersection[T constraints.Integer](m, o T) T {
	return m & o
}

func Difference[T constraints.Integer](m, o T) T {
	return m &^ o
}

func SymmetricDifference[T constraints.Integer](m, o T) T {
	return m ^ o
}

func Complement[T constraints.Integer](m T) T {
	return ^m
}

// Unsigned returns the bit pattern of m as an uint64 limited to the width of T,
// so negative signed values are not sign extended.
func Unsigned[T constraints.Integer](m T) uint64 {
	w := Width[T]()
	if w >= 64 {
		return uint64(m)
	}
	return uint64(m) & (1<<w - 1)
}
