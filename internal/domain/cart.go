package domain

import (
	"errors"
	"math"
)

// ErrCartOverflow reports a cart whose total or count no longer fits its integer type.
var ErrCartOverflow = errors.New("cart total overflows")

// CartItem is a product with a purchase quantity. It only exists while Quantity > 0.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds at most one item per product id, ordered by first add.
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddToCart increments the quantity of an existing item or appends a new one with quantity 1.
func (c Cart) AddToCart(p Product) Cart {
	items := c.clone()
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			return Cart{Items: items}
		}
	}
	return Cart{Items: append(items, CartItem{Product: p, Quantity: 1})}
}

// RemoveFromCart drops the item with productID. Absent ids are a no-op.
func (c Cart) RemoveFromCart(productID int64) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// UpdateQuantity sets the quantity of productID. A quantity <= 0 removes the item.
func (c Cart) UpdateQuantity(productID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveFromCart(productID)
	}
	items := c.clone()
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return Cart{Items: items}
}

// Item returns the item for productID, if present.
func (c Cart) Item(productID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// Total is the sum of price * quantity over all items.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities over all items.
func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// CheckOverflow returns ErrCartOverflow when Total or Count would wrap around.
func (c Cart) CheckOverflow() error {
	var total int64
	count := 0
	for _, item := range c.Items {
		if item.Price > 0 && int64(item.Quantity) > math.MaxInt64/item.Price {
			return ErrCartOverflow
		}
		subtotal := item.Price * int64(item.Quantity)
		if total > math.MaxInt64-subtotal || count > math.MaxInt-item.Quantity {
			return ErrCartOverflow
		}
		total += subtotal
		count += item.Quantity
	}
	return nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) clone() []CartItem {
	items := make([]CartItem, len(c.Items), len(c.Items)+1)
	copy(items, c.Items)
	return items
}
