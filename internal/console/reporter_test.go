package console_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func eur(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.EUR)
}

func TestReporter_Receipt(t *testing.T) {
	var buf bytes.Buffer
	reporter := console.NewReporter(&buf)

	reporter.Receipt(domain.Receipt{
		Lines: []domain.ReceiptLine{
			{ProductName: "Cheese", Quantity: 2, LineTotal: eur("200")},
			{ProductName: "TV", Quantity: 1, LineTotal: eur("300")},
		},
		Subtotal:    eur("500"),
		ShippingFee: eur("10"),
		Total:       eur("510"),
		Balance:     eur("490"),
	})

	want := `** Checkout receipt **
2x Cheese 200
1x TV 300
----------------------
Subtotal: 500 EUR
Shipping: 10 EUR
Amount: 510 EUR
Customer balance: 490 EUR
`
	assert.Equal(t, want, buf.String())
}

func TestReporter_ShipmentNotice(t *testing.T) {
	var buf bytes.Buffer
	reporter := console.NewReporter(&buf)

	half := decimal.RequireFromString("0.5")
	reporter.ShipmentNotice(domain.ShipmentNotice{
		Units: []domain.ShipmentUnit{
			{ProductName: "TV", WeightKG: half},
			{ProductName: "TV", WeightKG: half},
		},
		TotalWeightKG: decimal.RequireFromString("1"),
	})

	want := `** Shipment notice **
TV 500g
TV 500g
Total package weight: 1kg

`
	assert.Equal(t, want, buf.String())
}

func TestReporter_Rejected(t *testing.T) {
	var buf bytes.Buffer
	reporter := console.NewReporter(&buf)

	reporter.Rejected(fmt.Errorf("product[Biscuits]: %w", domain.ErrProductExpired))

	assert.Equal(t, "Error: product[Biscuits]: product is expired\n", buf.String())
}
