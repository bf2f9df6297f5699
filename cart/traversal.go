package cart

import "fmt"

type Traversal uint8

const (
	PreOrder Traversal = iota
	InOrder
	PostOrder
)

var traversalNames = [...]string{
	PreOrder:  "Pre-order",
	InOrder:   "In-order",
	PostOrder: "Post-order",
}

func (t Traversal) String() string {
	if int(t) < len(traversalNames) {
		return traversalNames[t]
	}
	return fmt.Sprintf("Traversal(%d)", uint8(t))
}

// ParseTraversal accepts only the exact names "Pre-order", "In-order" and "Post-order".
func ParseTraversal(s string) (Traversal, error) {
	for t, name := range traversalNames {
		if s == name {
			return Traversal(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTraversal, s)
}

func (n *node) walk(t Traversal, fn func(*Item)) {
	if n == nil {
		return
	}
	switch t {
	case PreOrder:
		fn(n.item)
		n.left.walk(t, fn)
		n.right.walk(t, fn)
	case InOrder:
		n.left.walk(t, fn)
		fn(n.item)
		n.right.walk(t, fn)
	case PostOrder:
		n.left.walk(t, fn)
		n.right.walk(t, fn)
		fn(n.item)
	}
}
