package cart

import "errors"

var (
	ErrCapacityExceeded = errors.New("cart is full")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotFound         = errors.New("item not found")
	ErrInvalidTraversal = errors.New("invalid traversal type")
)
