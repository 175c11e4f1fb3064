package generator

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/ZenLiuCN/bitmask/conf"
)

// DirectivePrefix marks the comment line that configures an enum spec.
//
//	//bitmask:u8,inverted_flags
//	type permission int
const DirectivePrefix = "//bitmask:"

// Options controls how one bitmask type is generated.
type Options struct {
	Width      Width
	Inverted   bool
	Name       string
	TrimPrefix string // removed from variant names

	width    bool
	inverted bool
}

// WithWidth marks the width as explicitly chosen.
func (o Options) WithWidth(w Width) Options {
	o.Width = w
	o.width = true
	return o
}

// WithInverted marks the inverted choice as explicit.
func (o Options) WithInverted(b bool) Options {
	o.Inverted = b
	o.inverted = true
	return o
}

// Merge returns o overridden by every choice made explicitly in d.
func (o Options) Merge(d Options) Options {
	if d.width {
		o.Width = d.Width
		o.width = true
	}
	if d.inverted {
		o.Inverted = d.Inverted
		o.inverted = true
	}
	if d.Name != "" {
		o.Name = d.Name
	}
	if d.TrimPrefix != "" {
		o.TrimPrefix = d.TrimPrefix
	}
	if o.Width.Name == "" {
		o.Width = DefaultWidth
	}
	return o
}

// ParseDirective parses the tokens following DirectivePrefix. Tokens are separated by commas or
// spaces and may come in any order.
func ParseDirective(text string) (o Options, err error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, tok := range tokens {
		switch {
		case tok == "inverted_flags" || tok == "inverted":
			if o.inverted {
				return o, fmt.Errorf("%w %q", ErrDuplicateOption, tok)
			}
			o = o.WithInverted(true)
		case strings.HasPrefix(tok, "name="):
			if o.Name != "" {
				return o, fmt.Errorf("%w %q", ErrDuplicateOption, tok)
			}
			o.Name = strings.TrimPrefix(tok, "name=")
			if !token.IsIdentifier(o.Name) {
				return o, fmt.Errorf("%w %q: not an identifier", ErrUnknownOption, tok)
			}
		case strings.HasPrefix(tok, "trimprefix="):
			if o.TrimPrefix != "" {
				return o, fmt.Errorf("%w %q", ErrDuplicateOption, tok)
			}
			o.TrimPrefix = strings.TrimPrefix(tok, "trimprefix=")
			if o.TrimPrefix == "" {
				return o, fmt.Errorf("%w %q: empty prefix", ErrUnknownOption, tok)
			}
		default:
			w, ok := LookupWidth(tok)
			if !ok {
				return o, fmt.Errorf("%w %q", ErrUnknownOption, tok)
			}
			if o.width {
				return o, fmt.Errorf("%w %q: width already %s", ErrDuplicateOption, tok, o.Width)
			}
			o = o.WithWidth(w)
		}
	}
	return
}

// OptionsFromConfig reads defaults from the bitmask section of a configuration.
//
//	bitmask {
//	  width: u8
//	  inverted: false
//	}
func OptionsFromConfig(c conf.Config) (o Options, err error) {
	if c == nil {
		return
	}
	conf.Exists("bitmask.inverted", c, c.GetBoolean, func(b bool) {
		o = o.WithInverted(b)
	})
	conf.Exists("bitmask.width", c, c.GetString, func(s string) {
		if w, ok := LookupWidth(s); ok {
			o = o.WithWidth(w)
		} else {
			err = fmt.Errorf("%w width %q in configuration", ErrUnknownOption, s)
		}
	})
	return
}
