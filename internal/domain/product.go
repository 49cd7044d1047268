package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a priced, quantity-tracked catalog entry. Capabilities are
// explicit: a product may carry an expiry date, a shipping weight, both or
// neither. Cart items hold *Product so quantity reductions at settlement are
// visible through every reference.
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    Money
	Quantity int

	expiresAt *time.Time
	weightKG  *decimal.Decimal
}

type ProductOption func(*Product)

// WithExpiry marks the product as expirable after the given date.
func WithExpiry(date time.Time) ProductOption {
	return func(p *Product) {
		p.expiresAt = &date
	}
}

// WithWeight marks the product as shippable with the given weight in kilograms.
func WithWeight(kg decimal.Decimal) ProductOption {
	return func(p *Product) {
		p.weightKG = &kg
	}
}

func NewProduct(name string, price Money, quantity int, opts ...ProductOption) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	if price.IsNegative() {
		return nil, fmt.Errorf("price[%s] is negative", price)
	}

	if quantity < 0 {
		return nil, fmt.Errorf("quantity[%d] is negative", quantity)
	}

	p := &Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.weightKG != nil && !p.weightKG.IsPositive() {
		return nil, fmt.Errorf("weight[%s] is not positive", p.weightKG)
	}

	return p, nil
}

// Expired reports whether now's calendar date is strictly after the expiry
// date. Products without an expiry date never expire; on the expiry date
// itself the product is still sellable.
func (p *Product) Expired(now time.Time) bool {
	if p.expiresAt == nil {
		return false
	}

	return dateOf(now).After(dateOf(*p.expiresAt))
}

func (p *Product) ExpiresAt() (time.Time, bool) {
	if p.expiresAt == nil {
		return time.Time{}, false
	}

	return *p.expiresAt, true
}

func (p *Product) Shippable() bool {
	return p.weightKG != nil
}

// WeightKG returns the shipping weight in kilograms, zero for non-shippable
// products.
func (p *Product) WeightKG() decimal.Decimal {
	if p.weightKG == nil {
		return decimal.Zero
	}

	return *p.weightKG
}

// ReduceQuantity decreases the stock by amount, or does nothing if the stock
// is insufficient. Checkout verifies stock before settling, so the guard only
// keeps the quantity from ever going negative.
func (p *Product) ReduceQuantity(amount int) {
	if amount < 0 || amount > p.Quantity {
		return
	}

	p.Quantity -= amount
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
