package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// currency prefix used for every displayed amount
const currency = "Php "

/*
Item is a single cart entry held by a tree node.
Neither OrderID nor Price is unique. Price is the key the tree is sorted by.
seq records insertion order and tells apart items sharing an OrderID.
*/
type Item struct {
	OrderID int
	Name    string
	Price   decimal.Decimal
	seq     uint64
}

// FormatPrice renders an amount the way the cart displays it, e.g. "Php 10.00".
func FormatPrice(p decimal.Decimal) string {
	return currency + p.StringFixed(2)
}

func (i *Item) String() string {
	return fmt.Sprintf("#%d %q %s", i.OrderID, i.Name, FormatPrice(i.Price))
}
