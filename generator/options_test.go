package generator

import (
	"testing"

	"github.com/ZenLiuCN/bitmask/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	u8, _ := LookupWidth("u8")
	i16, _ := LookupWidth("int16")
	u128, _ := LookupWidth("uint128")
	tests := []struct {
		text     string
		width    Width
		inverted bool
		name     string
		err      error
	}{
		{text: "", width: DefaultWidth},
		{text: "u8", width: u8},
		{text: "inverted_flags, u8", width: u8, inverted: true},
		{text: "u8,inverted_flags", width: u8, inverted: true},
		{text: "i16 inverted", width: i16, inverted: true},
		{text: "uint128,name=Wide", width: u128, name: "Wide"},
		{text: "u8,u16", err: ErrDuplicateOption},
		{text: "u8,uint8", err: ErrDuplicateOption},
		{text: "inverted,inverted_flags", err: ErrDuplicateOption},
		{text: "name=A name=B", err: ErrDuplicateOption},
		{text: "trimprefix=a,trimprefix=b", err: ErrDuplicateOption},
		{text: "u7", err: ErrUnknownOption},
		{text: "trimprefix=", err: ErrUnknownOption},
		{text: "trimprefix=,trimprefix=a", err: ErrUnknownOption},
		{text: "name=1x", err: ErrUnknownOption},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			o, err := ParseDirective(tt.text)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			o = Options{}.Merge(o)
			assert.Equal(t, tt.width, o.Width)
			assert.Equal(t, tt.inverted, o.Inverted)
			assert.Equal(t, tt.name, o.Name)
		})
	}
}

func TestMergePrecedence(t *testing.T) {
	u32, _ := LookupWidth("u32")
	i8, _ := LookupWidth("i8")
	defaults := Options{}.WithWidth(u32).WithInverted(true)

	o := defaults.Merge(Options{})
	assert.Equal(t, u32, o.Width)
	assert.True(t, o.Inverted)

	trimmed, err := ParseDirective("trimprefix=perm")
	require.NoError(t, err)
	assert.Equal(t, "perm", defaults.Merge(trimmed).TrimPrefix)

	d, err := ParseDirective("i8")
	require.NoError(t, err)
	o = defaults.Merge(d)
	assert.Equal(t, i8, o.Width)
	assert.True(t, o.Inverted)

	o = defaults.Merge(Options{}.WithInverted(false))
	assert.False(t, o.Inverted)
}

func TestOptionsFromConfig(t *testing.T) {
	c, err := conf.Parse(`
bitmask {
  width: i64
  inverted: true
}`)
	require.NoError(t, err)
	o, err := OptionsFromConfig(c)
	require.NoError(t, err)
	o = Options{}.Merge(o)
	assert.Equal(t, "int64", o.Width.Name)
	assert.True(t, o.Inverted)

	o, err = OptionsFromConfig(conf.Empty())
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, Options{}.Merge(o).Width)

	c, err = conf.Parse(`bitmask.width: u9`)
	require.NoError(t, err)
	_, err = OptionsFromConfig(c)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestWidthLiterals(t *testing.T) {
	tests := []struct {
		width   string
		bit     int
		literal string
		value   string
	}{
		{"u8", 0, "0x1", "1"},
		{"u8", 7, "0x80", "128"},
		{"i8", 7, "-0x80", "-128"},
		{"i8", 6, "0x40", "64"},
		{"i16", 15, "-0x8000", "-32768"},
		{"u64", 63, "0x8000000000000000", "9223372036854775808"},
		{"i64", 63, "-0x8000000000000000", "-9223372036854775808"},
		{"usize", 31, "0x80000000", "2147483648"},
		{"isize", 30, "0x40000000", "1073741824"},
		{"u128", 0, "mask.Uint128{Lo: 0x1}", "1"},
		{"u128", 64, "mask.Uint128{Hi: 0x1}", "18446744073709551616"},
		{"u128", 127, "mask.Uint128{Hi: 0x8000000000000000}", "170141183460469231731687303715884105728"},
		{"i128", 127, "mask.Int128{Hi: -0x8000000000000000}", "-170141183460469231731687303715884105728"},
		{"i128", 65, "mask.Int128{Hi: 0x2}", "36893488147419103232"},
	}
	for _, tt := range tests {
		w, ok := LookupWidth(tt.width)
		require.True(t, ok, tt.width)
		assert.Equal(t, tt.literal, w.Literal(tt.bit), "%s bit %d", tt.width, tt.bit)
		assert.Equal(t, tt.value, w.Value(tt.bit), "%s bit %d", tt.width, tt.bit)
	}
}

func TestWidthLimits(t *testing.T) {
	limits := map[string]int{
		"u8": 8, "u16": 16, "u32": 32, "u64": 64, "u128": 128, "usize": 32,
		"i8": 8, "i16": 16, "i32": 32, "i64": 64, "i128": 128, "isize": 31,
	}
	assert.Len(t, Widths(), len(limits))
	for name, limit := range limits {
		w, ok := LookupWidth(name)
		require.True(t, ok, name)
		assert.Equal(t, limit, w.Limit(), name)
	}
}
