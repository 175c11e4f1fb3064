// Package generator turns enum specs, integer types with iota constants, into bitmask types.
//
// An enum spec is selected by name or by a directive comment:
//
//	//go:generate go run github.com/ZenLiuCN/bitmask/bitmask-gene -t permission
//	//bitmask:u8,inverted_flags
//	type permission int
//
//	const (
//		read permission = iota
//		write
//		execute
//	)
//
// Each variant becomes one bit of the generated type Permission, in declaration order.
package generator

//https://cs.opensource.google/go/x/tools/+/master:cmd/stringer/stringer.go;drc=daf94608b5e2caf763ba634b84e7a5ba7970e155;l=382
import (
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/imports"
)

type Generator struct {
	Context
	Dir          string
	Tags         []string
	Files        []string
	Types        []string // enum specs to generate, every directive carrying type when empty
	Defaults     Options
	Out          string // output file, <first spec>_bitmask.go when empty
	ManifestFile string // optional JSON manifest file

	declarations []*Declaration
}

func (g *Generator) wants(name string, directive bool) bool {
	if len(g.Types) == 0 {
		return directive
	}
	return slices.Contains(g.Types, name)
}

// Generate loads the sources, then writes the bitmask file and the manifest.
func (g *Generator) Generate() error {
	if err := g.Parse(g.Tags, g.Files); err != nil {
		return err
	}
	if err := g.Process(); err != nil {
		return err
	}
	return g.Write()
}

// Process collects and validates the declarations of every loaded package.
func (g *Generator) Process() error {
	g.declarations = nil
	for _, p := range g.Pkg {
		for _, file := range p.Files {
			if file.file != nil {
				ast.Inspect(file.file, decl(file, g))
			}
		}
	}
	var missing []string
	for _, t := range g.Types {
		if !slices.ContainsFunc(g.declarations, func(d *Declaration) bool { return d.Spec == t }) {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: type %s not found", ErrNotEnum, strings.Join(missing, ","))
	}
	if len(g.declarations) == 0 {
		return fmt.Errorf("%w: no type carries a %s directive", ErrNotEnum, DirectivePrefix)
	}
	var errs []error
	owner := make(map[string]string)
	for _, d := range g.declarations {
		if err := d.Resolve(g.Defaults); err != nil {
			errs = append(errs, err)
			continue
		}
		for _, id := range d.idents {
			if o, ok := owner[id]; ok {
				errs = append(errs, d.fail(ErrNameClash, "%s also generated for %s", id, o))
				break
			}
			owner[id] = d.Spec
		}
		g.Printf("resolved %s", d.Summary())
	}
	return errors.Join(errs...)
}

// Declarations are the resolved declarations in source order.
func (g *Generator) Declarations() []*Declaration {
	return g.declarations
}

func (g *Generator) packageName() string {
	if len(g.Pkg) == 0 {
		return ""
	}
	return g.Pkg[0].Name
}

// OutputFile is the path of the generated go file.
func (g *Generator) OutputFile() string {
	out := g.Out
	if out == "" {
		out = strings.ToLower(g.declarations[0].Spec) + "_bitmask.go"
	}
	if filepath.IsAbs(out) || g.Dir == "" {
		return out
	}
	return filepath.Join(g.Dir, out)
}

// Source renders the generated file. When formatting fails the raw source is returned
// together with the error so it can be inspected.
func (g *Generator) Source() ([]byte, error) {
	w := NewWriter()
	defer w.Release()
	w.Package = g.packageName()
	for _, d := range g.declarations {
		body := NewWriter()
		d.write(body)
		w.Append(body)
	}
	raw := w.File(header)
	src, err := imports.Process(g.OutputFile(), raw, &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return raw, err
	}
	return src, nil
}

func (g *Generator) Write() error {
	out := g.OutputFile()
	src, err := g.Source()
	if err != nil {
		g.Printf("warning: invalid generated: %s", err)
		g.Printf("warning: compile the package to analyze the error")
		if werr := os.WriteFile(out, src, 0o644); werr != nil {
			return werr
		}
		return err
	}
	if err = os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	g.Printf("wrote %s", out)
	if g.ManifestFile == "" {
		return nil
	}
	manifest := g.ManifestFile
	if !filepath.IsAbs(manifest) && g.Dir != "" {
		manifest = filepath.Join(g.Dir, manifest)
	}
	if err = os.WriteFile(manifest, g.Manifest().BytesIndent("", "  "), 0o644); err != nil {
		return err
	}
	g.Printf("wrote %s", manifest)
	return nil
}
