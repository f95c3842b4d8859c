package orderstat

import "github.com/ajwerner/avl/abstract"

type aug[K any] struct {
	// children is the number of items rooted at the current subtree.
	children int
}

// Update will update the count for the current node.
func (a *aug[K]) Update(
	_ *abstract.Config[K, struct{}], n abstract.Node[K, *aug[K]], _ abstract.UpdateMeta[K, aug[K]],
) (updated bool) {
	orig := a.children
	a.children = 1 + count(n.Left()) + count(n.Right())
	return a.children != orig
}

func count[K any](a *aug[K]) int {
	if a == nil {
		return 0
	}
	return a.children
}
