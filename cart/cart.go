package cart

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultCapacity is the number of items a cart holds unless configured otherwise.
const DefaultCapacity = 5

/*
Cart is a binary search tree of items ordered by price.
count tracks successful adds minus successful removals and is what the capacity check reads.
*/
type Cart struct {
	root     *node
	count    int
	capacity int
	seq      uint64
	mode     KeyMode
	index    *orderIndex
	logger   zerolog.Logger
}

// Result reports the outcome of a Delete.
type Result struct {
	Removed bool
	Item    *Item
}

func New(mode KeyMode, capacity int, logger zerolog.Logger) *Cart {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cart{
		capacity: capacity,
		mode:     mode,
		index:    newOrderIndex(),
		logger:   logger,
	}
}

func (c *Cart) Mode() KeyMode { return c.mode }

func (c *Cart) Capacity() int { return c.capacity }

// Len returns the tracked item count.
func (c *Cart) Len() int { return c.count }

// Nodes counts the nodes linked in the tree.
func (c *Cart) Nodes() int { return c.root.size() }

func (c *Cart) IsEmpty() bool { return c.root == nil }

// Add inserts a new leaf unless the cart already holds capacity items.
func (c *Cart) Add(orderID int, name string, price decimal.Decimal) (*Item, error) {
	if c.count >= c.capacity {
		c.logger.Debug().Int("order_id", orderID).Int("count", c.count).Msg("add refused")
		return nil, fmt.Errorf("%w: limit is %d items", ErrCapacityExceeded, c.capacity)
	}

	c.seq++
	item := &Item{OrderID: orderID, Name: name, Price: price, seq: c.seq}
	c.root = c.root.insert(item)
	c.index.put(item)
	c.count++

	c.logger.Debug().Stringer("item", item).Int("count", c.count).Msg("item added")
	return item, nil
}

// Search looks up an order id according to the cart's KeyMode.
func (c *Cart) Search(orderID int) (*Item, error) {
	var item *Item
	switch c.mode {
	case Fixed:
		item, _ = c.index.first(orderID)
	default:
		if n := c.root.searchByOrderID(orderID); n != nil {
			item = n.item
		}
	}

	if item == nil {
		return nil, fmt.Errorf("order id %d: %w", orderID, ErrNotFound)
	}
	return item, nil
}

/*
Delete removes one item carrying orderID.
An empty cart yields ErrEmptyCart. Otherwise the returned Result says whether a node was
actually excised; the count only moves when it was.
*/
func (c *Cart) Delete(orderID int) (Result, error) {
	if c.root == nil {
		return Result{}, ErrEmptyCart
	}

	var res Result
	switch c.mode {
	case Fixed:
		if item, ok := c.index.first(orderID); ok {
			c.root, res.Removed = c.root.deleteItem(item)
			res.Item = item
		}
	default:
		c.root, res.Item = c.root.deleteByOrderID(orderID)
		res.Removed = res.Item != nil
	}

	if res.Removed {
		c.index.remove(res.Item)
		c.count--
	}

	c.logger.Debug().Int("order_id", orderID).Bool("removed", res.Removed).Int("count", c.count).Msg("delete")
	return res, nil
}

// Walk visits every item in the given traversal order.
func (c *Cart) Walk(t Traversal, fn func(*Item)) {
	c.root.walk(t, fn)
}

func (c *Cart) Prices(t Traversal) []decimal.Decimal {
	var prices []decimal.Decimal
	c.Walk(t, func(i *Item) {
		prices = append(prices, i.Price)
	})
	return prices
}

// Display renders the prices in traversal order, e.g. "Php 10.00, Php 20.00".
func (c *Cart) Display(t Traversal) (string, error) {
	if c.root == nil {
		return "", ErrEmptyCart
	}
	if int(t) >= len(traversalNames) {
		return "", fmt.Errorf("%w: %s", ErrInvalidTraversal, t)
	}

	var sb strings.Builder
	c.Walk(t, func(i *Item) {
		sb.WriteString(FormatPrice(i.Price))
		sb.WriteString(", ")
	})
	return strings.TrimSuffix(sb.String(), ", "), nil
}
