package generator

import (
	"strings"
)

const (
	header     = "// Code generated by bitmask-gene; DO NOT EDIT."
	maskImport = "github.com/ZenLiuCN/bitmask/mask"
)

func (d *Declaration) write(w *Writer) {
	w.Import(maskImport)
	if d.Width.Wide() {
		d.writeWide(w)
	} else {
		d.writeInteger(w)
	}
}

func (d *Declaration) flagIdents(sep string) string {
	ids := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		ids[i] = v.Ident
	}
	return strings.Join(ids, sep)
}

func (d *Declaration) writeInteger(w *Writer) {
	w.F("\n// %[1]s is a bitmask of the %[2]s flags stored as %[3]s.\ntype %[1]s %[3]s\n", d.Name, d.Spec, d.Width.Name)
	w.F("\nconst (\n")
	for _, v := range d.Variants {
		w.F("\t%s %s = %s\n", v.Ident, d.Name, d.Width.Literal(v.Bit))
	}
	w.F(")\n")
	if d.Inverted {
		w.F("\nconst (\n")
		for _, v := range d.Variants {
			w.F("\t%[1]sInverted %[2]s = ^%[1]s\n", v.Ident, d.Name)
		}
		w.F(")\n")
	}
	w.F(`
// %[1]sNone has no bit set, %[1]sAll has every bit of %[2]s set and
// %[1]sAllFlags is the union of the declared flags.
const (
	%[1]sNone %[1]s = 0
	%[1]sAll %[1]s = ^%[1]sNone
	%[1]sAllFlags %[1]s = %[3]s
)
`, d.Name, d.Width.Name, d.flagIdents(" | "))
	d.writeTable(w, d.Name, "")
	w.F(`
// %[1]sFromBits converts the underlying integer without loss.
func %[1]sFromBits(bits %[2]s) %[1]s {
	return %[1]s(bits)
}
`, d.Name, d.Width.Name)
	d.writeFlags(w)
	w.F(`
// Bits returns the underlying integer.
func (m %[1]s) Bits() %[2]s {
	return %[2]s(m)
}

// Equal compares m with a raw integer.
func (m %[1]s) Equal(bits %[2]s) bool {
	return %[2]s(m) == bits
}

func (m %[1]s) IsNone() bool {
	return mask.IsNone(m)
}

func (m %[1]s) IsAll() bool {
	return mask.IsAll(m)
}

// Contains reports whether every flag of o is set in m.
func (m %[1]s) Contains(o %[1]s) bool {
	return mask.Contains(m, o)
}

// Intersects reports whether any flag of o is set in m.
func (m %[1]s) Intersects(o %[1]s) bool {
	return mask.Intersects(m, o)
}

func (m %[1]s) Or(o %[1]s) %[1]s {
	return mask.Union(m, o)
}

func (m %[1]s) And(o %[1]s) %[1]s {
	return mask.Intersection(m, o)
}

func (m %[1]s) Xor(o %[1]s) %[1]s {
	return mask.SymmetricDifference(m, o)
}

func (m %[1]s) AndNot(o %[1]s) %[1]s {
	return mask.Difference(m, o)
}

func (m %[1]s) Not() %[1]s {
	return mask.Complement(m)
}

// Insert sets the flags of o.
func (m *%[1]s) Insert(o %[1]s) {
	*m = mask.Union(*m, o)
}

// Remove clears the flags of o.
func (m *%[1]s) Remove(o %[1]s) {
	*m = mask.Difference(*m, o)
}

// Toggle flips the flags of o.
func (m *%[1]s) Toggle(o %[1]s) {
	*m = mask.SymmetricDifference(*m, o)
}

// Retain keeps only the flags also set in o.
func (m *%[1]s) Retain(o %[1]s) {
	*m = mask.Intersection(*m, o)
}
`, d.Name, d.Width.Name)
	d.writeSet(w)
	w.F(`
func (m %[1]s) String() string {
	return mask.Format(m, _%[1]s_flags)
}
`, d.Name)
}

func (d *Declaration) writeWide(w *Writer) {
	repr := d.Width.GoType()
	w.F("\n// %[1]s is a bitmask of the %[2]s flags stored as %[3]s.\ntype %[1]s struct {\n\tbits %[3]s\n}\n", d.Name, d.Spec, repr)
	w.F("\nvar (\n")
	for _, v := range d.Variants {
		w.F("\t%s = %s{%s}\n", v.Ident, d.Name, d.Width.Literal(v.Bit))
	}
	w.F(")\n")
	if d.Inverted {
		w.F("\nvar (\n")
		for _, v := range d.Variants {
			w.F("\t%[1]sInverted = %[1]s.Not()\n", v.Ident)
		}
		w.F(")\n")
	}
	or := d.Variants[0].Ident
	for _, v := range d.Variants[1:] {
		or += ".Or(" + v.Ident + ")"
	}
	w.F(`
// %[1]sNone has no bit set, %[1]sAll has every bit of %[2]s set and
// %[1]sAllFlags is the union of the declared flags.
var (
	%[1]sNone = %[1]s{}
	%[1]sAll = %[1]sNone.Not()
	%[1]sAllFlags = %[3]s
)
`, d.Name, d.Width.Name, or)
	d.writeTable(w, repr, ".bits")
	w.F(`
// %[1]sFromBits converts the underlying integer without loss.
func %[1]sFromBits(bits %[2]s) %[1]s {
	return %[1]s{bits}
}
`, d.Name, repr)
	d.writeFlags(w)
	w.F(`
// Bits returns the underlying integer.
func (m %[1]s) Bits() %[2]s {
	return m.bits
}

// Equal compares m with a raw integer.
func (m %[1]s) Equal(bits %[2]s) bool {
	return m.bits == bits
}

func (m %[1]s) IsNone() bool {
	return mask.WideIsNone(m.bits)
}

func (m %[1]s) IsAll() bool {
	return mask.WideIsAll(m.bits)
}

// Contains reports whether every flag of o is set in m.
func (m %[1]s) Contains(o %[1]s) bool {
	return mask.WideContains(m.bits, o.bits)
}

// Intersects reports whether any flag of o is set in m.
func (m %[1]s) Intersects(o %[1]s) bool {
	return mask.WideIntersects(m.bits, o.bits)
}

func (m %[1]s) Or(o %[1]s) %[1]s {
	return %[1]s{m.bits.Or(o.bits)}
}

func (m %[1]s) And(o %[1]s) %[1]s {
	return %[1]s{m.bits.And(o.bits)}
}

func (m %[1]s) Xor(o %[1]s) %[1]s {
	return %[1]s{m.bits.Xor(o.bits)}
}

func (m %[1]s) AndNot(o %[1]s) %[1]s {
	return %[1]s{m.bits.AndNot(o.bits)}
}

func (m %[1]s) Not() %[1]s {
	return %[1]s{m.bits.Not()}
}

// Insert sets the flags of o.
func (m *%[1]s) Insert(o %[1]s) {
	m.bits = m.bits.Or(o.bits)
}

// Remove clears the flags of o.
func (m *%[1]s) Remove(o %[1]s) {
	m.bits = m.bits.AndNot(o.bits)
}

// Toggle flips the flags of o.
func (m *%[1]s) Toggle(o %[1]s) {
	m.bits = m.bits.Xor(o.bits)
}

// Retain keeps only the flags also set in o.
func (m *%[1]s) Retain(o %[1]s) {
	m.bits = m.bits.And(o.bits)
}
`, d.Name, repr)
	d.writeSet(w)
	w.F(`
func (m %[1]s) String() string {
	return mask.WideFormat(m.bits, _%[1]s_flags)
}
`, d.Name)
}

// writeTable emits the name table used by String.
func (d *Declaration) writeTable(w *Writer, elem, field string) {
	w.F("\nvar _%s_flags = []mask.Flag[%s]{\n", d.Name, elem)
	for _, v := range d.Variants {
		w.F("\t{Name: %q, Value: %s%s},\n", v.Label, v.Ident, field)
	}
	w.F("}\n")
}

func (d *Declaration) writeFlags(w *Writer) {
	w.F(`
// %[1]sFlags returns the declared flags in declaration order.
func %[1]sFlags() []%[1]s {
	return []%[1]s{%[2]s}
}
`, d.Name, d.flagIdents(", "))
}

func (d *Declaration) writeSet(w *Writer) {
	w.F(`
// Set inserts or removes the flags of o.
func (m *%[1]s) Set(o %[1]s, on bool) {
	if on {
		m.Insert(o)
	} else {
		m.Remove(o)
	}
}
`, d.Name)
}
