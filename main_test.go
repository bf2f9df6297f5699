package main

import (
	"testing"

	"cart/cart"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCartStopsAtCapacity(t *testing.T) {
	c := cart.New(cart.Fixed, 3, zerolog.Nop())

	require.NoError(t, seedCartWithRandomItems(c, 10, zerolog.Nop()))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Nodes())
}

func TestSeedCartPricesAreDisplayable(t *testing.T) {
	c := cart.New(cart.Faithful, cart.DefaultCapacity, zerolog.Nop())

	require.NoError(t, seedCartWithRandomItems(c, 4, zerolog.Nop()))
	assert.Equal(t, 4, c.Len())
	c.Walk(cart.InOrder, func(i *cart.Item) {
		assert.Regexp(t, `^Php \d+\.\d{2}$`, cart.FormatPrice(i.Price))
		assert.NotEmpty(t, i.Name)
	})
}
