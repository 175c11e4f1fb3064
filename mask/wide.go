package mask

import (
	"errors"
	"math/big"
	"strconv"
)

var (
	ErrOverflow = errors.New("value overflows 128 bits")
)

// Wide is implemented by the 128-bit representations.
type Wide[T any] interface {
	comparable
	And(T) T
	Or(T) T
	Xor(T) T
	AndNot(T) T
	Not() T
	IsZero() bool
	Hex() string
}

func WideIsNone[T Wide[T]](m T) bool {
	return m.IsZero()
}

func WideIsAll[T Wide[T]](m T) bool {
	return m.Not().IsZero()
}

// WideContains reports whether every bit of o is set in m.
func WideContains[T Wide[T]](m, o T) bool {
	return m.And(o) == o
}

// WideIntersects reports whether any bit of o is set in m.
func WideIntersects[T Wide[T]](m, o T) bool {
	return !m.And(o).IsZero()
}

// Uint128 is an unsigned 128-bit integer split in two halves.
type Uint128 struct {
	Hi, Lo uint64
}

// MaxUint128 has every bit set.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// Bit128 returns the Uint128 with only bit i set.
func Bit128(i int) Uint128 {
	switch {
	case i < 0 || i >= 128:
		panic("bit " + strconv.Itoa(i) + " out of range for 128-bit mask")
	case i < 64:
		return Uint128{Lo: 1 << i}
	default:
		return Uint128{Hi: 1 << (i - 64)}
	}
}

func (u Uint128) And(v Uint128) Uint128    { return Uint128{u.Hi & v.Hi, u.Lo & v.Lo} }
func (u Uint128) Or(v Uint128) Uint128     { return Uint128{u.Hi | v.Hi, u.Lo | v.Lo} }
func (u Uint128) Xor(v Uint128) Uint128    { return Uint128{u.Hi ^ v.Hi, u.Lo ^ v.Lo} }
func (u Uint128) AndNot(v Uint128) Uint128 { return Uint128{u.Hi &^ v.Hi, u.Lo &^ v.Lo} }
func (u Uint128) Not() Uint128             { return Uint128{^u.Hi, ^u.Lo} }
func (u Uint128) IsZero() bool             { return u.Hi == 0 && u.Lo == 0 }

// Bit reports whether bit i is set.
func (u Uint128) Bit(i int) bool {
	return !u.And(Bit128(i)).IsZero()
}

// Hex renders the bit pattern in base 16 without prefix.
func (u Uint128) Hex() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 16)
	}
	lo := strconv.FormatUint(u.Lo, 16)
	for len(lo) < 16 {
		lo = "0" + lo
	}
	return strconv.FormatUint(u.Hi, 16) + lo
}

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

// Uint128FromBig converts b, failing when it is negative or wider than 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, ErrOverflow
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// BitInt128 returns the Int128 with only bit i set. Bit 127 is the minimum value.
func BitInt128(i int) Int128 {
	return Uint128ToInt128(Bit128(i))
}

// Uint128ToInt128 reinterprets the bit pattern of u as signed.
func Uint128ToInt128(u Uint128) Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

func (s Int128) unsigned() Uint128 {
	return Uint128{Hi: uint64(s.Hi), Lo: s.Lo}
}

func (s Int128) And(v Int128) Int128    { return Int128{s.Hi & v.Hi, s.Lo & v.Lo} }
func (s Int128) Or(v Int128) Int128     { return Int128{s.Hi | v.Hi, s.Lo | v.Lo} }
func (s Int128) Xor(v Int128) Int128    { return Int128{s.Hi ^ v.Hi, s.Lo ^ v.Lo} }
func (s Int128) AndNot(v Int128) Int128 { return Int128{s.Hi &^ v.Hi, s.Lo &^ v.Lo} }
func (s Int128) Not() Int128            { return Int128{^s.Hi, ^s.Lo} }
func (s Int128) IsZero() bool           { return s.Hi == 0 && s.Lo == 0 }
func (s Int128) Bit(i int) bool         { return s.unsigned().Bit(i) }
func (s Int128) Hex() string            { return s.unsigned().Hex() }

func (s Int128) Big() *big.Int {
	b := s.unsigned().Big()
	if s.Hi < 0 {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return b
}

func (s Int128) String() string {
	return s.Big().String()
}

// Int128FromBig converts b, failing when it lies outside the signed 128-bit range.
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Sign() >= 0 {
		if b.BitLen() > 127 {
			return Int128{}, ErrOverflow
		}
		u, err := Uint128FromBig(b)
		return Uint128ToInt128(u), err
	}
	// two's complement image of b
	t := new(big.Int).Add(b, new(big.Int).Lsh(big.NewInt(1), 128))
	if t.BitLen() < 128 {
		return Int128{}, ErrOverflow
	}
	u, err := Uint128FromBig(t)
	return Uint128ToInt128(u), err
}
