package mask

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Flag names one declared bit of a generated type.
type Flag[T any] struct {
	Name  string
	Value T
}

// Format renders m as the '|' joined names of the flags it contains, followed by the hex
// of any remaining undeclared bits. The zero value renders as "0".
func Format[T constraints.Integer](m T, flags []Flag[T]) string {
	if m == 0 {
		return "0"
	}
	var b strings.Builder
	rest := m
	for _, f := range flags {
		if f.Value != 0 && m&f.Value == f.Value {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(f.Name)
			rest &^= f.Value
		}
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(Unsigned(rest), 16))
	}
	return b.String()
}

// WideFormat is Format for the 128-bit representations.
func WideFormat[T Wide[T]](m T, flags []Flag[T]) string {
	if m.IsZero() {
		return "0"
	}
	var b strings.Builder
	rest := m
	for _, f := range flags {
		if !f.Value.IsZero() && m.And(f.Value) == f.Value {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(f.Name)
			rest = rest.AndNot(f.Value)
		}
	}
	if !rest.IsZero() {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("0x")
		b.WriteString(rest.Hex())
	}
	return b.String()
}
