package domain

import (
	"fmt"
	"time"
)

// CartItem pairs a requested quantity with a shared product reference. The
// product is not copied: settlement mutates stock through the same pointer the
// caller holds.
type CartItem struct {
	Product  *Product
	Quantity int

	AddedAt time.Time
}

// Cart is an ordered sequence of cart items. Insertion order is preserved and
// drives the receipt line order.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends an item to the cart. The requested quantity is checked against
// the product's current total stock; the stock itself is not touched until
// checkout settles.
func (c *Cart) Add(product *Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}

	if quantity <= 0 {
		return fmt.Errorf("quantity[%d] is not positive", quantity)
	}

	if quantity > product.Quantity {
		return fmt.Errorf("product[%s] quantity[%d] > stock[%d]: %w",
			product.Name, quantity, product.Quantity, ErrInsufficientStock)
	}

	c.items = append(c.items, CartItem{
		Product:  product,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})

	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the item sequence in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}
