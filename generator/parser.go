package generator

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

type Context struct {
	Pkg  []*Package
	Logf func(format string, args ...any)
}

func (c *Context) Printf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Parse loads the packages named by files, a single directory or a list of go files.
func (c *Context) Parse(tags []string, files []string) error {
	pkg, err := packages.Load(&packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
		Tests:      false,
		Logf:       c.Logf,
	}, files...)
	if err != nil {
		return err
	}
	if len(pkg) != 1 {
		return fmt.Errorf("%w: %d found with %s", ErrMultiplePackages, len(pkg), strings.Join(files, ","))
	}
	for _, p := range pkg {
		// a stale generated file may no longer type check, declarations are still usable
		for _, e := range p.Errors {
			c.Printf("load %s: %s", p.PkgPath, e)
		}
		c.AddPackage(p.Name, p.Fset, p.Syntax, p.Types, p.TypesInfo)
	}
	return nil
}

// AddPackage registers an already type checked package.
func (c *Context) AddPackage(name string, fset *token.FileSet, syntax []*ast.File, pkg *types.Package, info *types.Info) *Package {
	p := &Package{
		Context: c,
		Name:    name,
		Fset:    fset,
		Types:   pkg,
		Info:    info,
	}
	p.ResolveFiles(syntax)
	c.Pkg = append(c.Pkg, p)
	return p
}

type Package struct {
	*Context
	Name  string
	Fset  *token.FileSet
	Types *types.Package
	Info  *types.Info
	Files []*File
}

func (p *Package) ResolveFiles(syntax []*ast.File) {
	p.Files = make([]*File, len(syntax))
	for i, f := range syntax {
		p.Files[i] = &File{
			Pkg:       p,
			file:      f,
			generated: ast.IsGenerated(f),
		}
	}
}

// generatedNames lists the package level names declared in generated files.
func (p *Package) generatedNames() map[string]bool {
	names := make(map[string]bool)
	for _, f := range p.Files {
		if !f.generated {
			continue
		}
		for _, d := range f.file.Decls {
			switch x := d.(type) {
			case *ast.FuncDecl:
				if x.Recv == nil {
					names[x.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, s := range x.Specs {
					switch sp := s.(type) {
					case *ast.TypeSpec:
						names[sp.Name.Name] = true
					case *ast.ValueSpec:
						for _, n := range sp.Names {
							names[n.Name] = true
						}
					}
				}
			}
		}
	}
	return names
}

type File struct {
	Pkg       *Package
	file      *ast.File
	generated bool
}

// directive returns the bitmask directive text of a type spec, looking at the enclosing
// declaration doc when the type spec has none of its own.
func directive(decl *ast.GenDecl, ts *ast.TypeSpec) (text string, found bool) {
	docs := []*ast.CommentGroup{ts.Doc}
	if len(decl.Specs) == 1 {
		docs = append(docs, decl.Doc)
	}
	var parts []string
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if t, ok := directiveText(c.Text); ok {
				parts = append(parts, t)
				found = true
			}
		}
		if found {
			break
		}
	}
	return strings.Join(parts, ","), found
}

// directiveText also accepts the "// bitmask:" spelling gofmt produces when the prefix is not
// directly followed by a token.
func directiveText(comment string) (string, bool) {
	if t, ok := strings.CutPrefix(comment, DirectivePrefix); ok {
		return t, true
	}
	return strings.CutPrefix(comment, "// "+strings.TrimPrefix(DirectivePrefix, "//"))
}

func decl(f *File, g *Generator) func(node ast.Node) bool {
	return func(node ast.Node) bool {
		if _, ok := node.(*ast.FuncDecl); ok {
			return false
		}
		dec, ok := node.(*ast.GenDecl)
		if !ok || dec.Tok != token.TYPE {
			return true
		}
		for _, spec := range dec.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			text, found := directive(dec, ts)
			if !g.wants(ts.Name.Name, found) {
				continue
			}
			g.declarations = append(g.declarations, &Declaration{
				Spec:      ts.Name.Name,
				pkg:       f.Pkg,
				file:      f,
				typeSpec:  ts,
				directive: text,
				marked:    found,
			})
		}
		return false
	}
}
