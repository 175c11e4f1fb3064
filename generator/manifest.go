package generator

import (
	"fmt"
	"io"
	"math/big"

	"github.com/Jeffail/gabs/v2"
	"github.com/ZenLiuCN/bitmask/mask"
	"github.com/ZenLiuCN/fn"
	"golang.org/x/exp/constraints"
)

// Manifest describes the generated bitmasks of one package.
type Manifest struct {
	Package string
	Masks   []MaskInfo
}

type MaskInfo struct {
	Name     string
	Spec     string
	Width    string
	Bits     int  // storage size, 0 when it depends on the target
	Platform bool // uint or int
	Limit    int  // maximum number of flags
	Signed   bool
	Inverted bool
	Flags    []FlagInfo
}

type FlagInfo struct {
	Name    string
	Variant string
	Bit     int
	Value   string       // decimal, 128-bit values do not fit a JSON number
	Mask    mask.Uint128 // bit pattern of Value, read back by ReadManifest
}

// Manifest renders the resolved declarations as JSON.
func (g *Generator) Manifest() *gabs.Container {
	c := gabs.New()
	fn.Panic1(c.Set(g.packageName(), "package"))
	fn.Panic1(c.Array("masks"))
	for _, d := range g.declarations {
		m := gabs.New()
		fn.Panic1(m.Set(d.Name, "name"))
		fn.Panic1(m.Set(d.Spec, "spec"))
		fn.Panic1(m.Set(d.Width.Name, "width"))
		if d.Width.Platform {
			fn.Panic1(m.Set(0, "bits"))
		} else {
			fn.Panic1(m.Set(d.Width.Bits, "bits"))
		}
		fn.Panic1(m.Set(d.Width.Platform, "platform"))
		fn.Panic1(m.Set(d.Width.Limit(), "limit"))
		fn.Panic1(m.Set(d.Width.Signed, "signed"))
		fn.Panic1(m.Set(d.Inverted, "inverted"))
		fn.Panic1(m.Array("flags"))
		for _, v := range d.Variants {
			f := gabs.New()
			fn.Panic1(f.Set(v.Ident, "name"))
			fn.Panic1(f.Set(v.Name, "variant"))
			fn.Panic1(f.Set(v.Bit, "bit"))
			fn.Panic1(f.Set(d.Width.Value(v.Bit), "value"))
			fn.Panic(m.ArrayAppend(f.Data(), "flags"))
		}
		fn.Panic(c.ArrayAppend(m.Data(), "masks"))
	}
	return c
}

// ReadManifest parses a manifest written by the generator.
func ReadManifest(r io.Reader) (m *Manifest, err error) {
	g, err := ReadGabs(r)
	if err != nil {
		return
	}
	m = new(Manifest)
	m.Package, _ = g.String("package")
	for _, x := range g.Path("masks").Children() {
		mg := Gabs{x}
		var info MaskInfo
		info.Name, _ = mg.String("name")
		info.Spec, _ = mg.String("spec")
		info.Width, _ = mg.String("width")
		info.Bits, _ = mg.Integer("bits")
		info.Platform, _ = mg.Boolean("platform")
		info.Limit, _ = mg.Integer("limit")
		info.Signed, _ = mg.Boolean("signed")
		info.Inverted, _ = mg.Boolean("inverted")
		for _, y := range x.Path("flags").Children() {
			fg := Gabs{y}
			var f FlagInfo
			f.Name, _ = fg.String("name")
			f.Variant, _ = fg.String("variant")
			f.Bit, _ = fg.Integer("bit")
			f.Value, _ = fg.String("value")
			if f.Mask, err = parseFlagValue(f.Value, info.Signed); err != nil {
				return nil, fmt.Errorf("manifest flag %s: %w", f.Name, err)
			}
			info.Flags = append(info.Flags, f)
		}
		m.Masks = append(m.Masks, info)
	}
	return
}

// parseFlagValue returns the 128-bit pattern of a decimal flag value.
func parseFlagValue(v string, signed bool) (mask.Uint128, error) {
	b, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return mask.Uint128{}, fmt.Errorf("invalid value %q", v)
	}
	if !signed {
		return mask.Uint128FromBig(b)
	}
	s, err := mask.Int128FromBig(b)
	return mask.Uint128{Hi: uint64(s.Hi), Lo: s.Lo}, err
}

func ReadGabsProperty[T constraints.Ordered | ~bool](g *gabs.Container, p string, def ...T) (v T, ok bool) {
	if g != nil && g.ExistsP(p) {
		v, ok = g.Path(p).Data().(T)
		return
	}
	if len(def) != 0 {
		return def[0], false
	}
	return
}

func n2n[V any, F, T constraints.Integer | constraints.Float](fn func(V, string, ...F) (F, bool)) func(V, string, ...T) (T, bool) {
	return func(v V, p string, t ...T) (o T, ok bool) {
		var x F
		if len(t) == 0 {
			x, ok = fn(v, p)
			if !ok {
				return
			}
			return T(x), true
		}
		var f = make([]F, len(t))
		for i, t2 := range t {
			f[i] = F(t2)
		}
		x, ok = fn(v, p, f...)
		if !ok {
			return
		}
		return T(x), true
	}
}

var (
	GabsString  = ReadGabsProperty[string]
	GabsBoolean = ReadGabsProperty[bool]
	GabsNumber  = ReadGabsProperty[float64]
	GabsInteger = n2n[*gabs.Container, float64, int](GabsNumber)
)

type Gabs struct {
	*gabs.Container
}

func (g Gabs) String(p string, def ...string) (string, bool) {
	return GabsString(g.Container, p, def...)
}
func (g Gabs) Boolean(p string, def ...bool) (bool, bool) {
	return GabsBoolean(g.Container, p, def...)
}
func (g Gabs) Integer(p string, def ...int) (int, bool) {
	return GabsInteger(g.Container, p, def...)
}

func ReadGabs(r io.Reader) (g Gabs, err error) {
	buf := fn.GetBuffer()
	defer fn.PutBuffer(buf)
	if _, err = io.Copy(buf, r); err != nil {
		return
	}
	c, err := gabs.ParseJSONBuffer(buf)
	if err != nil {
		return
	}
	return Gabs{c}, nil
}
