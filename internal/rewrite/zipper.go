package rewrite

import "github.com/cortexlang/matrizer/internal/ast"

// crumb records how to stitch a new focus back into the tree the walk
// stepped away from: the parent node reconstructed with its one changed
// child.
type crumb struct {
	rebuild func(newFocus ast.Expr) ast.Expr
}

// zipper is a breadcrumb-path walk over an Expr tree: focus is the
// currently visited subtree, path is the chain of rebuild closures needed
// to recover the whole tree if focus is replaced.
type zipper struct {
	focus ast.Expr
	path  []crumb
}

func zipTop(e ast.Expr) zipper {
	return zipper{focus: e}
}

// rebuildWhole replaces focus with newFocus and stitches every crumb back
// on, innermost first, returning the whole tree.
func (z zipper) rebuildWhole(newFocus ast.Expr) ast.Expr {
	cur := newFocus
	for i := len(z.path) - 1; i >= 0; i-- {
		cur = z.path[i].rebuild(cur)
	}
	return cur
}

func descend(z zipper, focus ast.Expr, rebuild func(ast.Expr) ast.Expr) zipper {
	path := make([]crumb, len(z.path)+1)
	copy(path, z.path)
	path[len(z.path)] = crumb{rebuild: rebuild}
	return zipper{focus: focus, path: path}
}

// walk visits every position in the tree rooted at z.focus, root first,
// calling visit at each one. visit sees the whole-tree rebuild closure
// along with the local focus, so it can both inspect and, if a rule
// fires, reconstruct the entire tree with that position replaced.
func walk(z zipper, visit func(zipper)) {
	visit(z)

	switch n := z.focus.(type) {
	case ast.Branch1:
		walk(descend(z, n.Child, func(nf ast.Expr) ast.Expr {
			return ast.Branch1{Op: n.Op, Child: nf}
		}), visit)

	case ast.Branch2:
		walk(descend(z, n.Left, func(nf ast.Expr) ast.Expr {
			return ast.Branch2{Op: n.Op, Left: nf, Right: n.Right}
		}), visit)
		walk(descend(z, n.Right, func(nf ast.Expr) ast.Expr {
			return ast.Branch2{Op: n.Op, Left: n.Left, Right: nf}
		}), visit)

	case ast.Branch3:
		walk(descend(z, n.A, func(nf ast.Expr) ast.Expr {
			return ast.Branch3{Op: n.Op, A: nf, B: n.B, C: n.C}
		}), visit)
		walk(descend(z, n.B, func(nf ast.Expr) ast.Expr {
			return ast.Branch3{Op: n.Op, A: n.A, B: nf, C: n.C}
		}), visit)
		walk(descend(z, n.C, func(nf ast.Expr) ast.Expr {
			return ast.Branch3{Op: n.Op, A: n.A, B: n.B, C: nf}
		}), visit)

	case ast.Let:
		walk(descend(z, n.Rhs, func(nf ast.Expr) ast.Expr {
			return ast.Let{Name: n.Name, Rhs: nf, IsTemp: n.IsTemp, Body: n.Body}
		}), visit)
		walk(descend(z, n.Body, func(nf ast.Expr) ast.Expr {
			return ast.Let{Name: n.Name, Rhs: n.Rhs, IsTemp: n.IsTemp, Body: nf}
		}), visit)
	}
}
