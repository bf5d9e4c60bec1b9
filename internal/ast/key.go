package ast

import (
	"strconv"
)

// Key renders e as a canonical, deterministic string. It is used to break
// cost ties during rewrite search (spec.md's "stable and deterministic"
// structural ordering) and as the cache key for memoized optimize results.
// It is not the emitted target-language form — see internal/emit for that.
func Key(e Expr) string {
	switch n := e.(type) {
	case Leaf:
		return "Leaf(" + n.Name + ")"
	case IdentityLeaf:
		return "I(" + strconv.Itoa(n.N) + ")"
	case LiteralScalar:
		return "Lit(" + strconv.FormatFloat(n.Value, 'g', -1, 64) + ")"
	case Branch1:
		return n.Op.String() + "(" + Key(n.Child) + ")"
	case Branch2:
		return n.Op.String() + "(" + Key(n.Left) + "," + Key(n.Right) + ")"
	case Branch3:
		return n.Op.String() + "(" + Key(n.A) + "," + Key(n.B) + "," + Key(n.C) + ")"
	case Let:
		tag := ""
		if n.IsTemp {
			tag = "~"
		}
		return "Let(" + tag + n.Name + "," + Key(n.Rhs) + "," + Key(n.Body) + ")"
	}
	return "?"
}
