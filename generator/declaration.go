package generator

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Declaration is one enum spec selected for generation.
type Declaration struct {
	Spec string // name of the enum spec type
	Options
	Variants []Variant

	idents []string

	pkg       *Package
	file      *File
	typeSpec  *ast.TypeSpec
	directive string
	marked    bool // carries a directive comment
}

// Variant is one declared flag.
type Variant struct {
	Name  string // constant name in the enum spec
	Label string // Name without the trimmed prefix
	Ident string // generated constant name
	Bit   int
}

func exported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func (d *Declaration) fail(err error, format string, args ...any) error {
	return &DeclarationError{
		Pos:    d.pkg.Fset.Position(d.typeSpec.Pos()),
		Spec:   d.Spec,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Resolve applies the directive over defaults, then validates the enum spec and collects its variants.
func (d *Declaration) Resolve(defaults Options) error {
	if d.marked && strings.TrimSpace(d.directive) == "" {
		return d.fail(ErrUnknownOption, "empty directive, write %susize for the default width", DirectivePrefix)
	}
	opt, err := ParseDirective(d.directive)
	if err != nil {
		return &DeclarationError{Pos: d.pkg.Fset.Position(d.typeSpec.Pos()), Spec: d.Spec, Err: err}
	}
	d.Options = defaults.Merge(opt)
	if d.typeSpec.Assign.IsValid() {
		return d.fail(ErrNotEnum, "alias declaration")
	}
	if d.typeSpec.TypeParams != nil {
		return d.fail(ErrNotEnum, "generic type")
	}
	obj, ok := d.pkg.Info.Defs[d.typeSpec.Name].(*types.TypeName)
	if !ok {
		return d.fail(ErrNotEnum, "no type information")
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return d.fail(ErrNotEnum, "underlying type %s is not an integer", obj.Type().Underlying())
	}
	if err = d.collect(obj); err != nil {
		return err
	}
	if n := len(d.Variants); n > d.Width.Limit() {
		return d.fail(ErrTooManyVariants, "%d variants exceed %d allowed by %s", n, d.Width.Limit(), d.Width)
	}
	return d.name()
}

type enumConst struct {
	obj *types.Const
	val int64
}

func (d *Declaration) collect(obj *types.TypeName) error {
	var cs []enumConst
	scope := obj.Parent()
	for id, def := range d.pkg.Info.Defs {
		c, ok := def.(*types.Const)
		if !ok || id.Name == "_" || c.Parent() != scope || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		v, exact := constant.Int64Val(constant.ToInt(c.Val()))
		if !exact {
			return d.fail(ErrVariantValues, "%s has value %s", c.Name(), c.Val())
		}
		cs = append(cs, enumConst{obj: c, val: v})
	}
	if len(cs) == 0 {
		return d.fail(ErrNotEnum, "no constants of type %s", d.Spec)
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].val != cs[j].val {
			return cs[i].val < cs[j].val
		}
		return cs[i].obj.Pos() < cs[j].obj.Pos()
	})
	d.Variants = make([]Variant, len(cs))
	for i, c := range cs {
		if c.val != int64(i) {
			return d.fail(ErrVariantValues, "%s has value %d, expected %d", c.obj.Name(), c.val, i)
		}
		d.Variants[i] = Variant{Name: c.obj.Name(), Bit: i}
	}
	return nil
}

// name picks the generated type name and checks every generated identifier is free.
func (d *Declaration) name() error {
	if d.Name == "" {
		if token.IsExported(d.Spec) {
			return d.fail(ErrNameClash, "exported spec needs a name= option")
		}
		d.Name = exported(d.Spec)
	}
	if d.Name == d.Spec {
		return d.fail(ErrNameClash, "generated type would replace %s", d.Spec)
	}
	idents := []string{d.Name, d.Name + "None", d.Name + "All", d.Name + "AllFlags", d.Name + "FromBits", d.Name + "Flags", "_" + d.Name + "_flags"}
	for i := range d.Variants {
		v := &d.Variants[i]
		v.Label = strings.TrimPrefix(v.Name, d.TrimPrefix)
		if v.Label == "" {
			return d.fail(ErrNameClash, "%s is empty without prefix %q", v.Name, d.TrimPrefix)
		}
		v.Ident = d.Name + exported(v.Label)
		idents = append(idents, v.Ident)
		if d.Inverted {
			idents = append(idents, v.Ident+"Inverted")
		}
	}
	d.idents = idents
	if d.pkg.Types == nil {
		return nil
	}
	generated := d.pkg.generatedNames()
	seen := make(map[string]bool, len(idents))
	for _, id := range idents {
		if seen[id] {
			return d.fail(ErrNameClash, "%s generated twice", id)
		}
		seen[id] = true
		if generated[id] {
			continue
		}
		if obj := d.pkg.Types.Scope().Lookup(id); obj != nil {
			return d.fail(ErrNameClash, "%s already declared at %s", id, d.pkg.Fset.Position(obj.Pos()))
		}
	}
	return nil
}

// Summary is a one line description for logs.
func (d *Declaration) Summary() string {
	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = v.Name
	}
	return fmt.Sprintf("%s -> %s(%s) [%s] inverted=%t", d.Spec, d.Name, d.Width, strings.Join(names, ","), d.Inverted)
}
