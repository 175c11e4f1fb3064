package mask

import (
	"math"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func checkWidth[T constraints.Integer](t *testing.T, bits int, all T) {
	t.Helper()
	assert.Equal(t, bits, Width[T]())
	assert.Equal(t, T(0), None[T]())
	assert.Equal(t, all, All[T]())
	assert.True(t, IsAll(All[T]()))
	assert.True(t, IsNone(None[T]()))
	assert.Equal(t, T(1), Bit[T](0))
	assert.Equal(t, T(2), Bit[T](1))
	assert.Panics(t, func() { Bit[T](bits) })
	assert.Panics(t, func() { Bit[T](-1) })
}

func TestWidths(t *testing.T) {
	checkWidth[uint8](t, 8, math.MaxUint8)
	checkWidth[uint16](t, 16, math.MaxUint16)
	checkWidth[uint32](t, 32, math.MaxUint32)
	checkWidth[uint64](t, 64, math.MaxUint64)
	checkWidth[int8](t, 8, -1)
	checkWidth[int16](t, 16, -1)
	checkWidth[int32](t, 32, -1)
	checkWidth[int64](t, 64, -1)
	checkWidth[uint](t, bits.UintSize, math.MaxUint)
	checkWidth[int](t, bits.UintSize, -1)
}

func TestSignedTopBit(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), Bit[int8](7))
	assert.Equal(t, int16(math.MinInt16), Bit[int16](15))
	assert.Equal(t, int64(math.MinInt64), Bit[int64](63))
	assert.Equal(t, uint64(0x80), Unsigned(Bit[int8](7)))
	assert.Equal(t, uint64(0xffff), Unsigned(int16(-1)))
}

func TestContainsIntersects(t *testing.T) {
	m := Bit[uint8](3) | Bit[uint8](5)
	assert.True(t, Contains(m, Bit[uint8](3)))
	assert.True(t, Contains(m, m))
	assert.True(t, Contains(m, None[uint8]()))
	assert.False(t, Contains(m, Bit[uint8](0)))
	assert.False(t, Contains(m, Bit[uint8](3)|Bit[uint8](0)))

	assert.True(t, Intersects(m, Bit[uint8](3)|Bit[uint8](0)))
	assert.False(t, Intersects(m, Bit[uint8](0)))
	assert.False(t, Intersects(m, None[uint8]()))
}

func TestSetOperations(t *testing.T) {
	a, b := int16(0b0110), int16(0b0011)
	assert.Equal(t, int16(0b0111), Union(a, b))
	assert.Equal(t, int16(0b0010), Intersection(a, b))
	assert.Equal(t, int16(0b0100), Difference(a, b))
	assert.Equal(t, int16(0b0101), SymmetricDifference(a, b))
	assert.Equal(t, int16(^0b0110), Complement(a))
	assert.Equal(t, All[int16](), Union(a, Complement(a)))
}

func TestFormat(t *testing.T) {
	flags := []Flag[uint8]{{"read", 1}, {"write", 2}, {"exec", 4}}
	assert.Equal(t, "0", Format[uint8](0, flags))
	assert.Equal(t, "read|exec", Format[uint8](5, flags))
	assert.Equal(t, "read|write|exec|0xf8", Format(All[uint8](), flags))
	assert.Equal(t, "0x40", Format[uint8](0x40, flags))

	signed := []Flag[int8]{{"low", 1}, {"top", math.MinInt8}}
	assert.Equal(t, "low|top|0x7e", Format(All[int8](), signed))
}

func TestUint128(t *testing.T) {
	assert.Equal(t, Uint128{Lo: 1}, Bit128(0))
	assert.Equal(t, Uint128{Hi: 1}, Bit128(64))
	assert.Equal(t, Uint128{Hi: 1 << 63}, Bit128(127))
	assert.Panics(t, func() { Bit128(128) })

	m := Bit128(1).Or(Bit128(100))
	assert.True(t, m.Bit(100))
	assert.False(t, m.Bit(99))
	assert.True(t, WideContains(m, Bit128(100)))
	assert.False(t, WideContains(m, Bit128(100).Or(Bit128(0))))
	assert.True(t, WideIntersects(m, Bit128(100).Or(Bit128(0))))
	assert.False(t, WideIntersects(m, Bit128(0)))
	assert.True(t, WideIsAll(MaxUint128))
	assert.True(t, WideIsNone(Uint128{}))
	assert.Equal(t, MaxUint128, Uint128{}.Not())
	assert.Equal(t, Bit128(1), m.AndNot(Bit128(100)))
	assert.Equal(t, Bit128(1), m.Xor(Bit128(100)))

	assert.Equal(t, "10000000000000000000000002", m.Hex())
	assert.Equal(t, "340282366920938463463374607431768211455", MaxUint128.String())

	u, err := Uint128FromBig(m.Big())
	require.NoError(t, err)
	assert.Equal(t, m, u)
	_, err = Uint128FromBig(new(big.Int).Lsh(big.NewInt(1), 128))
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Uint128FromBig(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestInt128(t *testing.T) {
	all := Int128{}.Not()
	assert.Equal(t, "-1", all.String())
	assert.Equal(t, "ffffffffffffffffffffffffffffffff", all.Hex())
	assert.True(t, WideIsAll(all))

	top := BitInt128(127)
	assert.Equal(t, Int128{Hi: math.MinInt64}, top)
	assert.Equal(t, "-170141183460469231731687303715884105728", top.String())

	s, err := Int128FromBig(top.Big())
	require.NoError(t, err)
	assert.Equal(t, top, s)
	s, err = Int128FromBig(big.NewInt(-2))
	require.NoError(t, err)
	assert.Equal(t, BitInt128(0).Not(), s)

	_, err = Int128FromBig(new(big.Int).Lsh(big.NewInt(1), 127))
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Int128FromBig(new(big.Int).Sub(top.Big(), big.NewInt(1)))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestWideFormat(t *testing.T) {
	flags := []Flag[Uint128]{{"a", Bit128(0)}, {"b", Bit128(70)}}
	assert.Equal(t, "0", WideFormat(Uint128{}, flags))
	assert.Equal(t, "a|b", WideFormat(Bit128(0).Or(Bit128(70)), flags))
	assert.Equal(t, "b|0x2", WideFormat(Bit128(1).Or(Bit128(70)), flags))
}
