package generator

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ZenLiuCN/bitmask/utils"
	"github.com/ZenLiuCN/fn"
)

var buffers = utils.NewBufferPool()

// Writer accumulates generated code together with the imports it needs.
type Writer struct {
	Package string
	Imports fn.HashSet[string]
	buf     *bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{buf: buffers.Get()}
}

// Release returns the buffer to the pool, the writer must not be used after.
func (s *Writer) Release() {
	if s.buf != nil {
		buffers.Put(s.buf)
		s.buf = nil
	}
}
func (s *Writer) F(format string, args ...any) *Writer {
	if s.buf == nil {
		s.buf = new(bytes.Buffer)
	}
	_, _ = fmt.Fprintf(s.buf, format, args...)
	return s
}

// Append copies the code and imports of w, then releases w.
func (s *Writer) Append(w *Writer) *Writer {
	for s2 := range w.Imports {
		s.Import(s2)
	}
	if s.buf == nil {
		s.buf = new(bytes.Buffer)
	}
	s.buf.Write(w.buf.Bytes())
	w.Release()
	return s
}

func (s *Writer) Import(path string) *Writer {
	if s.Imports == nil {
		s.Imports = fn.NewHashSet[string]()
	}
	s.Imports.Put(path)
	return s
}

// File renders a complete go file: header, package clause, sorted imports and the body.
func (s *Writer) File(header string) []byte {
	out := new(bytes.Buffer)
	_, _ = fmt.Fprintf(out, "%s\n\npackage %s\n", header, s.Package)
	if len(s.Imports) > 0 {
		imports := make([]string, 0, len(s.Imports))
		for s2 := range s.Imports {
			imports = append(imports, s2)
		}
		sort.Strings(imports)
		if len(imports) == 1 {
			_, _ = fmt.Fprintf(out, "\nimport %q\n", imports[0])
		} else {
			out.WriteString("\nimport (\n")
			for _, s2 := range imports {
				_, _ = fmt.Fprintf(out, "\t%q\n", s2)
			}
			out.WriteString(")\n")
		}
	}
	if s.buf != nil {
		out.Write(s.buf.Bytes())
	}
	return out.Bytes()
}
