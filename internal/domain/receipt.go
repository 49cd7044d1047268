package domain

import "github.com/shopspring/decimal"

type ReceiptLine struct {
	ProductName string
	Quantity    int
	LineTotal   Money
}

// Receipt is the outcome of a successful checkout. Lines follow cart
// insertion order; Balance is the customer balance after deduction.
type Receipt struct {
	Lines       []ReceiptLine
	Subtotal    Money
	ShippingFee Money
	Total       Money
	Balance     Money

	Shipment *ShipmentNotice
}

// ShipmentUnit is one physical unit to ship: a cart line of quantity three
// contributes three units.
type ShipmentUnit struct {
	ProductName string
	WeightKG    decimal.Decimal
}

type ShipmentNotice struct {
	Units []ShipmentUnit

	// TotalWeightKG is the straight sum over every listed unit.
	TotalWeightKG decimal.Decimal
}
