package cart

type node struct {
	item  *Item
	left  *node
	right *node
}

/*
Insert the item below n and return the (possibly new) subtree root.
Ordering key is the price: go left while price < n.price, otherwise right, so equal prices
end up in the right subtree.
*/
func (n *node) insert(item *Item) *node {
	if n == nil {
		return &node{item: item}
	}
	if item.Price.Cmp(n.item.Price) < 0 {
		n.left = n.left.insert(item)
	} else {
		n.right = n.right.insert(item)
	}
	return n
}

/*
searchByOrderID descends as if the tree was keyed by order id.
The tree is sorted by price, so only items lying on the order-id path are reachable.
*/
func (n *node) searchByOrderID(orderID int) *node {
	for next := n; next != nil; {
		if next.item.OrderID == orderID {
			return next
		}
		if orderID < next.item.OrderID {
			next = next.left
		} else {
			next = next.right
		}
	}
	return nil
}

// leftmost node of the subtree, i.e. the in-order successor when called on a right child.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

/*
deleteByOrderID removes the first node met on the order-id descent path.
Returns the new subtree root and the removed item (nil if the descent fell off the tree).
A node with two children takes over its successor's item, then the successor is removed from
the right subtree with another order-id descent.
*/
func (n *node) deleteByOrderID(orderID int) (*node, *Item) {
	if n == nil {
		return nil, nil
	}

	var removed *Item
	switch {
	case orderID < n.item.OrderID:
		n.left, removed = n.left.deleteByOrderID(orderID)
		return n, removed
	case orderID > n.item.OrderID:
		n.right, removed = n.right.deleteByOrderID(orderID)
		return n, removed
	}

	removed = n.item
	if n.left == nil {
		return n.right, removed
	}
	if n.right == nil {
		return n.left, removed
	}

	succ := n.right.min()
	n.item = succ.item
	n.right, _ = n.right.deleteByOrderID(succ.item.OrderID)
	return n, removed
}

/*
deleteItem removes exactly the node holding item, found by price descent.
Equal prices live on the right, so a node with the same price but another item sends us right.
*/
func (n *node) deleteItem(item *Item) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	if n.item != item {
		if item.Price.Cmp(n.item.Price) < 0 {
			n.left, removed = n.left.deleteItem(item)
		} else {
			n.right, removed = n.right.deleteItem(item)
		}
		return n, removed
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	succ := n.right.min()
	n.item = succ.item
	n.right = n.right.deleteMin()
	return n, true
}

// deleteMin drops the leftmost node of the subtree.
func (n *node) deleteMin() *node {
	if n.left == nil {
		return n.right
	}
	n.left = n.left.deleteMin()
	return n
}

// size counts the nodes actually linked in the subtree.
func (n *node) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}
