package ast

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireExpr is the YAML-serializable form of an Expr, used by internal/cache
// to persist optimize results across CLI invocations. Kind tags which
// variant the node holds; only the fields relevant to that variant are set.
// This mirrors the tagged-union shape Expr itself has, just flattened into
// one struct so gopkg.in/yaml.v3 (already required for engine config) can
// round-trip it without a custom unmarshaller per variant.
type wireExpr struct {
	Kind string `yaml:"kind"`

	Name   string  `yaml:"name,omitempty"`
	N      int     `yaml:"n,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Op     string  `yaml:"op,omitempty"`
	IsTemp bool    `yaml:"is_temp,omitempty"`

	Child *wireExpr `yaml:"child,omitempty"`
	Left  *wireExpr `yaml:"left,omitempty"`
	Right *wireExpr `yaml:"right,omitempty"`
	A     *wireExpr `yaml:"a,omitempty"`
	B     *wireExpr `yaml:"b,omitempty"`
	C     *wireExpr `yaml:"c,omitempty"`
	Rhs   *wireExpr `yaml:"rhs,omitempty"`
	Body  *wireExpr `yaml:"body,omitempty"`
}

// MarshalExpr serializes e into its YAML wire form.
func MarshalExpr(e Expr) ([]byte, error) {
	return yaml.Marshal(toWire(e))
}

// UnmarshalExpr parses bytes produced by MarshalExpr back into an Expr.
func UnmarshalExpr(data []byte) (Expr, error) {
	var w wireExpr
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(&w)
}

func toWire(e Expr) *wireExpr {
	switch n := e.(type) {
	case Leaf:
		return &wireExpr{Kind: "Leaf", Name: n.Name}
	case IdentityLeaf:
		return &wireExpr{Kind: "IdentityLeaf", N: n.N}
	case LiteralScalar:
		return &wireExpr{Kind: "LiteralScalar", Value: n.Value}
	case Branch1:
		return &wireExpr{Kind: "Branch1", Op: n.Op.String(), Child: toWire(n.Child)}
	case Branch2:
		return &wireExpr{Kind: "Branch2", Op: n.Op.String(), Left: toWire(n.Left), Right: toWire(n.Right)}
	case Branch3:
		return &wireExpr{Kind: "Branch3", Op: n.Op.String(), A: toWire(n.A), B: toWire(n.B), C: toWire(n.C)}
	case Let:
		return &wireExpr{Kind: "Let", Name: n.Name, IsTemp: n.IsTemp, Rhs: toWire(n.Rhs), Body: toWire(n.Body)}
	}
	return nil
}

func fromWire(w *wireExpr) (Expr, error) {
	if w == nil {
		return nil, fmt.Errorf("ast.UnmarshalExpr: missing node")
	}
	switch w.Kind {
	case "Leaf":
		return Leaf{Name: w.Name}, nil
	case "IdentityLeaf":
		return IdentityLeaf{N: w.N}, nil
	case "LiteralScalar":
		return LiteralScalar{Value: w.Value}, nil
	case "Branch1":
		op, ok := unaryOpNamed(w.Op)
		if !ok {
			return nil, fmt.Errorf("ast.UnmarshalExpr: unknown unary operator %q", w.Op)
		}
		child, err := fromWire(w.Child)
		if err != nil {
			return nil, err
		}
		return Branch1{Op: op, Child: child}, nil
	case "Branch2":
		op, ok := binaryOpNamed(w.Op)
		if !ok {
			return nil, fmt.Errorf("ast.UnmarshalExpr: unknown binary operator %q", w.Op)
		}
		l, err := fromWire(w.Left)
		if err != nil {
			return nil, err
		}
		r, err := fromWire(w.Right)
		if err != nil {
			return nil, err
		}
		return Branch2{Op: op, Left: l, Right: r}, nil
	case "Branch3":
		a, err := fromWire(w.A)
		if err != nil {
			return nil, err
		}
		b, err := fromWire(w.B)
		if err != nil {
			return nil, err
		}
		c, err := fromWire(w.C)
		if err != nil {
			return nil, err
		}
		return Branch3{Op: TernaryProduct, A: a, B: b, C: c}, nil
	case "Let":
		rhs, err := fromWire(w.Rhs)
		if err != nil {
			return nil, err
		}
		body, err := fromWire(w.Body)
		if err != nil {
			return nil, err
		}
		return Let{Name: w.Name, Rhs: rhs, IsTemp: w.IsTemp, Body: body}, nil
	}
	return nil, fmt.Errorf("ast.UnmarshalExpr: unknown node kind %q", w.Kind)
}

func unaryOpNamed(s string) (UnaryOp, bool) {
	switch s {
	case "Inverse":
		return Inverse, true
	case "Transpose":
		return Transpose, true
	case "Negate":
		return Negate, true
	case "Chol":
		return Chol, true
	}
	return 0, false
}

func binaryOpNamed(s string) (BinaryOp, bool) {
	switch s {
	case "Product":
		return Product, true
	case "ScalarProduct":
		return ScalarProduct, true
	case "Sum":
		return Sum, true
	case "LinSolve":
		return LinSolve, true
	case "CholSolve":
		return CholSolve, true
	}
	return 0, false
}
