package rewrite

import "github.com/cortexlang/matrizer/internal/ast"

// rule is a partial function over a single node: it either rewrites the
// node it's given, or declines.
type rule func(ast.Expr) (ast.Expr, bool)

// rules is the fixed set from spec.md §4.6. It is finite and has no
// unbounded member (no rule can fire on its own output forever), which is
// what keeps the rewrite closure of any finite input tree finite. Do not
// add a rule here without re-checking that.
var rules = []rule{
	assocMultLeft,
	assocMultRight,
	commonFactorLeft,
	commonFactorRight,
}

// assocMultLeft: (l*c)*r -> l*(c*r)
func assocMultLeft(e ast.Expr) (ast.Expr, bool) {
	b, ok := e.(ast.Branch2)
	if !ok || b.Op != ast.Product {
		return nil, false
	}
	inner, ok := b.Left.(ast.Branch2)
	if !ok || inner.Op != ast.Product {
		return nil, false
	}
	return ast.Branch2{
		Op:   ast.Product,
		Left: inner.Left,
		Right: ast.Branch2{
			Op:    ast.Product,
			Left:  inner.Right,
			Right: b.Right,
		},
	}, true
}

// assocMultRight: l*(c*r) -> (l*c)*r
func assocMultRight(e ast.Expr) (ast.Expr, bool) {
	b, ok := e.(ast.Branch2)
	if !ok || b.Op != ast.Product {
		return nil, false
	}
	inner, ok := b.Right.(ast.Branch2)
	if !ok || inner.Op != ast.Product {
		return nil, false
	}
	return ast.Branch2{
		Op: ast.Product,
		Left: ast.Branch2{
			Op:    ast.Product,
			Left:  b.Left,
			Right: inner.Left,
		},
		Right: inner.Right,
	}, true
}

// commonFactorLeft: (l1*l2) + (r1*r2) -> l1*(l2+r2), when l1 == r1
func commonFactorLeft(e ast.Expr) (ast.Expr, bool) {
	s, ok := e.(ast.Branch2)
	if !ok || s.Op != ast.Sum {
		return nil, false
	}
	l, ok := s.Left.(ast.Branch2)
	if !ok || l.Op != ast.Product {
		return nil, false
	}
	r, ok := s.Right.(ast.Branch2)
	if !ok || r.Op != ast.Product {
		return nil, false
	}
	if l.Left != r.Left {
		return nil, false
	}
	return ast.Branch2{
		Op:   ast.Product,
		Left: l.Left,
		Right: ast.Branch2{
			Op:    ast.Sum,
			Left:  l.Right,
			Right: r.Right,
		},
	}, true
}

// commonFactorRight: (l1*l2) + (r1*r2) -> (l1+r1)*l2, when l2 == r2
func commonFactorRight(e ast.Expr) (ast.Expr, bool) {
	s, ok := e.(ast.Branch2)
	if !ok || s.Op != ast.Sum {
		return nil, false
	}
	l, ok := s.Left.(ast.Branch2)
	if !ok || l.Op != ast.Product {
		return nil, false
	}
	r, ok := s.Right.(ast.Branch2)
	if !ok || r.Op != ast.Product {
		return nil, false
	}
	if l.Right != r.Right {
		return nil, false
	}
	return ast.Branch2{
		Op: ast.Product,
		Left: ast.Branch2{
			Op:    ast.Sum,
			Left:  l.Left,
			Right: r.Left,
		},
		Right: l.Right,
	}, true
}
