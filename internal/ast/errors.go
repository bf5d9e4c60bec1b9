package ast

import (
	"fmt"

	"github.com/cortexlang/matrizer/internal/mat"
)

// MError is any error Matrizer's analysis pipeline can produce. Every stage
// returns one of these (never a bare fmt.Errorf string) so callers can
// switch on the concrete type, and Show renders the human-readable form
// spec.md §7 calls for.
type MError interface {
	error
	Show() string
}

// SizeMismatchError reports that a binary operator's operands have
// incompatible shapes.
type SizeMismatchError struct {
	Op     string
	M1, M2 mat.Matrix
	T1, T2 Expr
}

func (e *SizeMismatchError) Error() string { return e.Show() }
func (e *SizeMismatchError) Show() string {
	return fmt.Sprintf("size mismatch in %s: %s and %s are not compatible", e.Op, e.M1, e.M2)
}

// NewSizeMismatchError builds a SizeMismatchError.
func NewSizeMismatchError(op string, m1, m2 mat.Matrix, t1, t2 Expr) *SizeMismatchError {
	return &SizeMismatchError{Op: op, M1: m1, M2: m2, T1: t1, T2: t2}
}

// SizeMismatchTernError reports a shape failure in a ternary operator.
type SizeMismatchTernError struct {
	Op         string
	M1, M2, M3 mat.Matrix
}

func (e *SizeMismatchTernError) Error() string { return e.Show() }
func (e *SizeMismatchTernError) Show() string {
	return fmt.Sprintf("size mismatch in %s: %s, %s, %s are not chainable", e.Op, e.M1, e.M2, e.M3)
}

// NewSizeMismatchTernError builds a SizeMismatchTernError.
func NewSizeMismatchTernError(op string, m1, m2, m3 mat.Matrix) *SizeMismatchTernError {
	return &SizeMismatchTernError{Op: op, M1: m1, M2: m2, M3: m3}
}

// InvalidOpError reports a unary shape failure, e.g. Inverse of a non-square
// matrix.
type InvalidOpError struct {
	Op string
	M  mat.Matrix
}

func (e *InvalidOpError) Error() string { return e.Show() }
func (e *InvalidOpError) Show() string {
	return fmt.Sprintf("invalid operand for %s: %s", e.Op, e.M)
}

// NewInvalidOpError builds an InvalidOpError.
func NewInvalidOpError(op string, m mat.Matrix) *InvalidOpError {
	return &InvalidOpError{Op: op, M: m}
}

// WrongPropertiesError reports that a binary operator's prerequisite
// property (e.g. CholSolve requiring LowerTriangular) was not met.
type WrongPropertiesError struct {
	Op             string
	Props1, Props2 mat.Property
	T1, T2         Expr
}

func (e *WrongPropertiesError) Error() string { return e.Show() }
func (e *WrongPropertiesError) Show() string {
	return fmt.Sprintf("wrong properties for %s: have %s and %s", e.Op, e.Props1, e.Props2)
}

// NewWrongPropertiesError builds a WrongPropertiesError.
func NewWrongPropertiesError(op string, p1, p2 mat.Property, t1, t2 Expr) *WrongPropertiesError {
	return &WrongPropertiesError{Op: op, Props1: p1, Props2: p2, T1: t1, T2: t2}
}

// WrongProperties1Error reports a unary property prerequisite failure, e.g.
// Chol requiring PosDef.
type WrongProperties1Error struct {
	Op    string
	Props mat.Property
	T     Expr
}

func (e *WrongProperties1Error) Error() string { return e.Show() }
func (e *WrongProperties1Error) Show() string {
	return fmt.Sprintf("wrong properties for %s: have %s", e.Op, e.Props)
}

// NewWrongProperties1Error builds a WrongProperties1Error.
func NewWrongProperties1Error(op string, props mat.Property, t Expr) *WrongProperties1Error {
	return &WrongProperties1Error{Op: op, Props: props, T: t}
}

// UnboundNameError reports a Leaf or dimension symbol absent from its
// symbol table.
type UnboundNameError struct {
	Name string
}

func (e *UnboundNameError) Error() string { return e.Show() }
func (e *UnboundNameError) Show() string {
	return fmt.Sprintf("unbound name: %q", e.Name)
}

// NewUnboundNameError builds an UnboundNameError.
func NewUnboundNameError(name string) *UnboundNameError {
	return &UnboundNameError{Name: name}
}

// BadDimensionError reports a dimension token that is neither a decimal
// literal nor a known symbol.
type BadDimensionError struct {
	Token string
}

func (e *BadDimensionError) Error() string { return e.Show() }
func (e *BadDimensionError) Show() string {
	return fmt.Sprintf("bad dimension: %q", e.Token)
}

// NewBadDimensionError builds a BadDimensionError.
func NewBadDimensionError(token string) *BadDimensionError {
	return &BadDimensionError{Token: token}
}

// AnalysisError is an untyped analysis failure: an identity leaf with no
// inferable size, a Branch3 reaching the preprocessor from the parser, or
// the rewrite search exceeding its configured closure-size cap.
type AnalysisError struct {
	Msg string
}

func (e *AnalysisError) Error() string { return e.Show() }
func (e *AnalysisError) Show() string  { return "analysis error: " + e.Msg }

// NewAnalysisError builds an AnalysisError.
func NewAnalysisError(msg string) *AnalysisError {
	return &AnalysisError{Msg: msg}
}

// ParserError wraps a failure from the external surface parser.
type ParserError struct {
	Err error
}

func (e *ParserError) Error() string { return e.Show() }
func (e *ParserError) Show() string  { return "parse error: " + e.Err.Error() }
func (e *ParserError) Unwrap() error { return e.Err }

// NewParserError builds a ParserError.
func NewParserError(err error) *ParserError {
	return &ParserError{Err: err}
}
