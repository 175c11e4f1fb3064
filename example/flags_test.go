package example

import (
	"math"
	"testing"

	"github.com/ZenLiuCN/bitmask/mask"
	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	m := BitmaskNone
	assert.True(t, m.IsNone())
	assert.False(t, m.IsAll())
	assert.Equal(t, uint(0), m.Bits())
	assert.Equal(t, "0", m.String())
}

func TestAll(t *testing.T) {
	m := BitmaskAll
	assert.True(t, m.IsAll())
	assert.False(t, m.IsNone())
	assert.Equal(t, uint(math.MaxUint), m.Bits())
	assert.True(t, m.Contains(BitmaskAllFlags))
	assert.Equal(t, uint(0xff), BitmaskAllFlags.Bits())
	assert.False(t, BitmaskAllFlags.IsAll())
}

func TestBits(t *testing.T) {
	for i, f := range BitmaskFlags() {
		assert.Equal(t, uint(1)<<i, f.Bits())
	}
	m := BitmaskFlag1.Or(BitmaskFlag3)
	assert.True(t, m.Equal(0b101))
	assert.Equal(t, m, BitmaskFromBits(m.Bits()))
}

func TestIntersects(t *testing.T) {
	m := BitmaskFlag1 | BitmaskFlag2
	assert.True(t, m.Intersects(BitmaskFlag2|BitmaskFlag5))
	assert.False(t, m.Intersects(BitmaskFlag5|BitmaskFlag6))
	assert.False(t, m.Intersects(BitmaskNone))
}

func TestContains(t *testing.T) {
	m := BitmaskFlag1 | BitmaskFlag2 | BitmaskFlag3
	assert.True(t, m.Contains(BitmaskFlag1|BitmaskFlag3))
	assert.False(t, m.Contains(BitmaskFlag1|BitmaskFlag4))
	assert.True(t, m.Contains(BitmaskNone))
}

func TestMutation(t *testing.T) {
	var m Bitmask
	m.Insert(BitmaskFlag1 | BitmaskFlag2)
	assert.Equal(t, "flag1|flag2", m.String())
	m.Remove(BitmaskFlag1)
	assert.Equal(t, BitmaskFlag2, m)
	m.Toggle(BitmaskFlag2 | BitmaskFlag8)
	assert.Equal(t, BitmaskFlag8, m)
	m.Set(BitmaskFlag4, true)
	m.Retain(BitmaskFlag4 | BitmaskFlag5)
	assert.Equal(t, BitmaskFlag4, m)
	m.Set(BitmaskFlag4, false)
	assert.True(t, m.IsNone())
	assert.Equal(t, BitmaskFlag2, (BitmaskFlag1 | BitmaskFlag2).AndNot(BitmaskFlag1))
	assert.Equal(t, BitmaskFlag1, (BitmaskFlag1 | BitmaskFlag2).Xor(BitmaskFlag2))
	assert.Equal(t, BitmaskFlag2, (BitmaskFlag1 | BitmaskFlag2).And(BitmaskFlag2))
}

func TestInverted(t *testing.T) {
	assert.Equal(t, ^uint(0b0001), BitmaskInvertedFlag1Inverted.Bits())
	assert.Equal(t, ^uint(0b1000), BitmaskInvertedFlag4Inverted.Bits())
	assert.Equal(t, BitmaskInvertedFlag2.Not(), BitmaskInvertedFlag2Inverted)
	assert.False(t, BitmaskInvertedFlag3Inverted.Contains(BitmaskInvertedFlag3))
	assert.True(t, BitmaskInvertedFlag3Inverted.Contains(BitmaskInvertedFlag1|BitmaskInvertedFlag4))

	assert.Equal(t, uint8(0xfe), BitmaskU8Flag1Inverted.Bits())
	assert.Equal(t, uint8(0xfd), BitmaskU8Flag2Inverted.Bits())
	assert.Equal(t, int16(-2), BitmaskI16Flag1Inverted.Bits())
	assert.Equal(t, ^uint(2), BitmaskUsizeFlag2Inverted.Bits())
	assert.Equal(t, mask.Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64 - 1}, BitmaskU128Flag1Inverted.Bits())
}

func TestTypes(t *testing.T) {
	assert.Equal(t, uint(1), BitmaskUsizeFlag1.Bits())
	assert.Equal(t, uint(2), BitmaskUsizeFlag2.Bits())
	assert.Equal(t, uint8(1), BitmaskU8Flag1.Bits())
	assert.Equal(t, uint8(2), BitmaskU8Flag2.Bits())
	assert.Equal(t, uint16(1), BitmaskU16Flag1.Bits())
	assert.Equal(t, uint16(2), BitmaskU16Flag2.Bits())
	assert.Equal(t, uint32(1), BitmaskU32Flag1.Bits())
	assert.Equal(t, uint32(2), BitmaskU32Flag2.Bits())
	assert.Equal(t, uint64(1), BitmaskU64Flag1.Bits())
	assert.Equal(t, uint64(2), BitmaskU64Flag2.Bits())
	assert.Equal(t, mask.Bit128(0), BitmaskU128Flag1.Bits())
	assert.Equal(t, mask.Bit128(1), BitmaskU128Flag2.Bits())
	assert.Equal(t, 1, BitmaskIsizeFlag1.Bits())
	assert.Equal(t, 2, BitmaskIsizeFlag2.Bits())
	assert.Equal(t, int8(1), BitmaskI8Flag1.Bits())
	assert.Equal(t, int8(2), BitmaskI8Flag2.Bits())
	assert.Equal(t, int16(1), BitmaskI16Flag1.Bits())
	assert.Equal(t, int16(2), BitmaskI16Flag2.Bits())
	assert.Equal(t, int32(1), BitmaskI32Flag1.Bits())
	assert.Equal(t, int32(2), BitmaskI32Flag2.Bits())
	assert.Equal(t, int64(1), BitmaskI64Flag1.Bits())
	assert.Equal(t, int64(2), BitmaskI64Flag2.Bits())
	assert.Equal(t, mask.BitInt128(0), BitmaskI128Flag1.Bits())
	assert.Equal(t, mask.BitInt128(1), BitmaskI128Flag2.Bits())
}

func TestSigned(t *testing.T) {
	assert.Equal(t, int8(-128), SignedTop.Bits())
	assert.Equal(t, int8(-1), SignedAll.Bits())
	assert.Equal(t, SignedAll, SignedAllFlags)
	assert.True(t, SignedAllFlags.IsAll())
	assert.True(t, SignedAll.Contains(SignedTop|SignedLow))
	assert.Equal(t, "Low|B1|B2|B3|B4|B5|B6|Top", SignedAll.String())
	assert.Equal(t, "Low|Top", (SignedLow | SignedTop).String())
	assert.Len(t, SignedFlags(), 8)
}

func TestWide(t *testing.T) {
	assert.True(t, BitmaskU128None.IsNone())
	assert.True(t, BitmaskU128All.IsAll())
	assert.Equal(t, mask.MaxUint128, BitmaskU128All.Bits())
	m := BitmaskU128Flag1.Or(BitmaskU128Flag2)
	assert.Equal(t, BitmaskU128AllFlags, m)
	assert.True(t, m.Contains(BitmaskU128Flag2))
	assert.False(t, BitmaskU128Flag1.Intersects(BitmaskU128Flag2))
	assert.Equal(t, "Flag1|Flag2", m.String())
	assert.Equal(t, "Flag2", m.AndNot(BitmaskU128Flag1).String())
	assert.True(t, m.Equal(mask.Uint128{Lo: 3}))
	assert.Equal(t, m, BitmaskU128FromBits(m.Bits()))

	var s BitmaskI128
	s.Insert(BitmaskI128Flag2)
	s.Toggle(BitmaskI128Flag1)
	assert.Equal(t, BitmaskI128AllFlags, s)
	s.Set(BitmaskI128Flag2, false)
	assert.Equal(t, BitmaskI128Flag1, s)
	assert.Equal(t, "-1", BitmaskI128All.Bits().String())
	assert.Equal(t, "Flag1|Flag2|0xfffffffffffffffffffffffffffffffc", BitmaskI128All.String())
}
