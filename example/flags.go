// Package example declares enumerations turned into bitmask types by bitmask-gene.
package example

//go:generate go run github.com/ZenLiuCN/bitmask/bitmask-gene -o flags_bitmask.go

//bitmask:usize
type bitmask int

const (
	flag1 bitmask = iota
	flag2
	flag3
	flag4
	flag5
	flag6
	flag7
	flag8
)

//bitmask:inverted_flags,trimprefix=inverted
type bitmaskInverted int

const (
	invertedFlag1 bitmaskInverted = iota
	invertedFlag2
	invertedFlag3
	invertedFlag4
)

//bitmask:usize,inverted_flags,trimprefix=usize
type bitmaskUsize int

const (
	usizeFlag1 bitmaskUsize = iota
	usizeFlag2
)

//bitmask:inverted_flags,u8,trimprefix=u8
type bitmaskU8 int

const (
	u8Flag1 bitmaskU8 = iota
	u8Flag2
)

//bitmask:i16,inverted_flags,trimprefix=i16
type bitmaskI16 int

const (
	i16Flag1 bitmaskI16 = iota
	i16Flag2
)

//bitmask:u16,trimprefix=u16
type bitmaskU16 int

const (
	u16Flag1 bitmaskU16 = iota
	u16Flag2
)

//bitmask:u32,trimprefix=u32
type bitmaskU32 int

const (
	u32Flag1 bitmaskU32 = iota
	u32Flag2
)

//bitmask:u64,trimprefix=u64
type bitmaskU64 int

const (
	u64Flag1 bitmaskU64 = iota
	u64Flag2
)

//bitmask:u128,inverted_flags,trimprefix=u128
type bitmaskU128 int

const (
	u128Flag1 bitmaskU128 = iota
	u128Flag2
)

//bitmask:isize,trimprefix=isize
type bitmaskIsize int

const (
	isizeFlag1 bitmaskIsize = iota
	isizeFlag2
)

//bitmask:i8,trimprefix=i8
type bitmaskI8 int

const (
	i8Flag1 bitmaskI8 = iota
	i8Flag2
)

//bitmask:i32,trimprefix=i32
type bitmaskI32 int

const (
	i32Flag1 bitmaskI32 = iota
	i32Flag2
)

//bitmask:i64,trimprefix=i64
type bitmaskI64 int

const (
	i64Flag1 bitmaskI64 = iota
	i64Flag2
)

//bitmask:i128,trimprefix=i128
type bitmaskI128 int

const (
	i128Flag1 bitmaskI128 = iota
	i128Flag2
)

//bitmask:i8,trimprefix=signed
type signed int

const (
	signedLow signed = iota
	signedB1
	signedB2
	signedB3
	signedB4
	signedB5
	signedB6
	signedTop
)
