package cart

import "fmt"

// KeyMode selects how Search and Delete locate an order id in the price-ordered tree.
type KeyMode uint8

const (
	// Faithful descends the price-ordered tree comparing order ids, so lookups may miss items.
	Faithful KeyMode = iota
	// Fixed resolves order ids through an index and removes the exact item.
	Fixed
)

func (m KeyMode) String() string {
	switch m {
	case Faithful:
		return "faithful"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("KeyMode(%d)", uint8(m))
}

func ParseKeyMode(s string) (KeyMode, error) {
	switch s {
	case "faithful":
		return Faithful, nil
	case "fixed":
		return Fixed, nil
	}
	return 0, fmt.Errorf("unknown key mode %q", s)
}
