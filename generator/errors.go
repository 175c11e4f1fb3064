package generator

import (
	"fmt"
	"go/token"
)

// Error is a generation failure kind, matched with errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNotEnum          Error = "not an enumeration"
	ErrVariantValues    Error = "variant values must be 0..n-1 in declaration order"
	ErrTooManyVariants  Error = "too many variants"
	ErrUnknownOption    Error = "unknown bitmask option"
	ErrDuplicateOption  Error = "duplicate bitmask option"
	ErrNameClash        Error = "generated name clash"
	ErrMultiplePackages Error = "only one package for each generation"
)

// DeclarationError locates a failure at the enum spec that caused it.
type DeclarationError struct {
	Pos    token.Position
	Spec   string
	Err    error
	Detail string
}

func (e *DeclarationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Spec, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s: %s", e.Pos, e.Spec, e.Err, e.Detail)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
