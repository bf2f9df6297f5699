package cart

import "github.com/google/btree"

const indexDegree = 4

// orderIndex keeps every item currently in the cart sorted by (OrderID, seq).
type orderIndex struct {
	tree *btree.BTreeG[*Item]
}

func lessByOrderID(a, b *Item) bool {
	if a.OrderID != b.OrderID {
		return a.OrderID < b.OrderID
	}
	return a.seq < b.seq
}

func newOrderIndex() *orderIndex {
	return &orderIndex{tree: btree.NewG(indexDegree, lessByOrderID)}
}

func (x *orderIndex) put(item *Item) {
	x.tree.ReplaceOrInsert(item)
}

func (x *orderIndex) remove(item *Item) {
	x.tree.Delete(item)
}

// first returns the earliest inserted item carrying orderID.
func (x *orderIndex) first(orderID int) (*Item, bool) {
	var found *Item
	x.tree.AscendGreaterOrEqual(&Item{OrderID: orderID}, func(it *Item) bool {
		if it.OrderID == orderID {
			found = it
		}
		return false
	})
	return found, found != nil
}

func (x *orderIndex) len() int {
	return x.tree.Len()
}
