package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	headphones = Product{ID: 1, Name: "Беспроводные наушники", Price: 12990}
	watch      = Product{ID: 2, Name: "Умные часы", Price: 24990}
	backpack   = Product{ID: 3, Name: "Рюкзак для ноутбука", Price: 8990}
)

func TestAddToCart_SameProductIncrementsQuantity(t *testing.T) {
	for calls := 1; calls <= 5; calls++ {
		cart := Cart{}
		for i := 0; i < calls; i++ {
			cart = cart.AddToCart(headphones)
		}
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(1), cart.Items[0].ID)
		assert.Equal(t, calls, cart.Items[0].Quantity)
	}
}

func TestAddToCart_TwiceTotals(t *testing.T) {
	cart := Cart{}.AddToCart(headphones).AddToCart(headphones)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(25980), cart.Total())
	assert.Equal(t, 2, cart.Count())
}

func TestAddToCart_KeepsInsertionOrder(t *testing.T) {
	cart := Cart{}.AddToCart(watch).AddToCart(headphones).AddToCart(watch).AddToCart(backpack)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, int64(2), cart.Items[0].ID)
	assert.Equal(t, int64(1), cart.Items[1].ID)
	assert.Equal(t, int64(3), cart.Items[2].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddToCart_DoesNotMutateInput(t *testing.T) {
	before := Cart{}.AddToCart(headphones)
	after := before.AddToCart(headphones)

	assert.Equal(t, 1, before.Items[0].Quantity)
	assert.Equal(t, 2, after.Items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	cart := Cart{}.AddToCart(headphones).AddToCart(watch)

	cart = cart.RemoveFromCart(1)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ID)

	unchanged := cart.RemoveFromCart(42)
	assert.Equal(t, cart.Items, unchanged.Items)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		productID int64
		quantity  int
		wantIDs   []int64
		wantTotal int64
	}{
		{name: "zero removes", productID: 1, quantity: 0, wantIDs: []int64{2}, wantTotal: 24990},
		{name: "negative removes", productID: 1, quantity: -3, wantIDs: []int64{2}, wantTotal: 24990},
		{name: "absent id is a no-op", productID: 9, quantity: 4, wantIDs: []int64{1, 2}, wantTotal: 2*12990 + 24990},
		{name: "replaces quantity", productID: 2, quantity: 1000, wantIDs: []int64{1, 2}, wantTotal: 2*12990 + 1000*24990},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{}.AddToCart(headphones).AddToCart(headphones).AddToCart(watch)

			cart = cart.UpdateQuantity(tt.productID, tt.quantity)

			ids := make([]int64, 0, len(cart.Items))
			for _, item := range cart.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, cart.Total())
		})
	}
}

func TestTotals_AreRecomputed(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Product: headphones, Quantity: 3},
		{Product: backpack, Quantity: 2},
	}}
	assert.Equal(t, int64(3*12990+2*8990), cart.Total())
	assert.Equal(t, 5, cart.Count())

	cart.Items[0].Quantity = 1
	assert.Equal(t, int64(12990+2*8990), cart.Total())
	assert.Equal(t, 3, cart.Count())

	assert.Zero(t, Cart{}.Total())
	assert.Zero(t, Cart{}.Count())
}

func TestItem(t *testing.T) {
	cart := Cart{}.AddToCart(watch)

	item, ok := cart.Item(2)
	require.True(t, ok)
	assert.Equal(t, "Умные часы", item.Name)

	_, ok = cart.Item(1)
	assert.False(t, ok)
}

func TestCheckOverflow(t *testing.T) {
	cart := Cart{}.AddToCart(watch).UpdateQuantity(2, 1000)
	assert.NoError(t, cart.CheckOverflow())

	cart = cart.UpdateQuantity(2, math.MaxInt64/int(watch.Price)+1)
	assert.ErrorIs(t, cart.CheckOverflow(), ErrCartOverflow)

	half := math.MaxInt64/int(watch.Price) - 1
	cart = Cart{}.AddToCart(watch).UpdateQuantity(2, half).AddToCart(headphones).UpdateQuantity(1, half)
	assert.ErrorIs(t, cart.CheckOverflow(), ErrCartOverflow)
}
