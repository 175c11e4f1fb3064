package generator

import (
	"fmt"
	"strconv"

	"github.com/ZenLiuCN/bitmask/mask"
)

// Width is an underlying representation a bitmask can be generated with.
type Width struct {
	Name     string // Go spelling, also a directive token
	Alias    string // short directive token
	Bits     int
	Signed   bool
	Platform bool // uint or int, whose size depends on the target
}

var widths = []Width{
	{Name: "uint8", Alias: "u8", Bits: 8},
	{Name: "uint16", Alias: "u16", Bits: 16},
	{Name: "uint32", Alias: "u32", Bits: 32},
	{Name: "uint64", Alias: "u64", Bits: 64},
	{Name: "uint128", Alias: "u128", Bits: 128},
	{Name: "uint", Alias: "usize", Bits: 32, Platform: true},
	{Name: "int8", Alias: "i8", Bits: 8, Signed: true},
	{Name: "int16", Alias: "i16", Bits: 16, Signed: true},
	{Name: "int32", Alias: "i32", Bits: 32, Signed: true},
	{Name: "int64", Alias: "i64", Bits: 64, Signed: true},
	{Name: "int128", Alias: "i128", Bits: 128, Signed: true},
	{Name: "int", Alias: "isize", Bits: 32, Signed: true, Platform: true},
}

// DefaultWidth is used when neither a directive nor a default selects one.
var DefaultWidth = widths[5]

// LookupWidth finds a width by its Go name or alias.
func LookupWidth(token string) (Width, bool) {
	for _, w := range widths {
		if w.Name == token || w.Alias == token {
			return w, true
		}
	}
	return Width{}, false
}

// Widths lists every supported width.
func Widths() []Width {
	return append([]Width(nil), widths...)
}

func (w Width) Wide() bool {
	return w.Bits == 128
}

// Limit is the maximum number of variants. A platform int keeps its sign bit free
// since that bit is not at the same position on 32 and 64-bit targets.
func (w Width) Limit() int {
	if w.Platform && w.Signed {
		return w.Bits - 1
	}
	return w.Bits
}

// GoType is the type the generated bitmask is stored as.
func (w Width) GoType() string {
	switch {
	case w.Wide() && w.Signed:
		return "mask.Int128"
	case w.Wide():
		return "mask.Uint128"
	default:
		return w.Name
	}
}

func (w Width) String() string {
	return w.Name
}

// Literal is the Go expression of the value with only bit i set.
func (w Width) Literal(i int) string {
	top := w.Signed && i == w.Bits-1
	if !w.Wide() {
		if top {
			return "-0x" + strconv.FormatUint(mask.Bit[uint64](i), 16)
		}
		return "0x" + strconv.FormatUint(mask.Bit[uint64](i), 16)
	}
	switch {
	case top:
		return fmt.Sprintf("%s{Hi: -0x%x}", w.GoType(), uint64(1)<<63)
	case i >= 64:
		return fmt.Sprintf("%s{Hi: 0x%x}", w.GoType(), uint64(1)<<(i-64))
	default:
		return fmt.Sprintf("%s{Lo: 0x%x}", w.GoType(), uint64(1)<<i)
	}
}

// Value is the decimal value with only bit i set.
func (w Width) Value(i int) string {
	if w.Signed && i == w.Bits-1 {
		if w.Wide() {
			return mask.BitInt128(i).String()
		}
		return "-" + strconv.FormatUint(mask.Bit[uint64](i), 10)
	}
	return mask.Bit128(i).String()
}
