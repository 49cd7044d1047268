// Package console renders checkout outcomes as plain text. Business logic
// never prints directly; it goes through the port.Reporter implemented here.
package console

import (
	"fmt"
	"io"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
)

var gramsPerKG = decimal.NewFromInt(1000)

type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Receipt(receipt domain.Receipt) {
	fmt.Fprintln(r.w, "** Checkout receipt **")

	for _, line := range receipt.Lines {
		fmt.Fprintf(r.w, "%dx %s %s\n", line.Quantity, line.ProductName, line.LineTotal.Amount)
	}

	fmt.Fprintln(r.w, "----------------------")
	fmt.Fprintf(r.w, "Subtotal: %s\n", receipt.Subtotal)
	fmt.Fprintf(r.w, "Shipping: %s\n", receipt.ShippingFee)
	fmt.Fprintf(r.w, "Amount: %s\n", receipt.Total)
	fmt.Fprintf(r.w, "Customer balance: %s\n", receipt.Balance)
}

func (r *Reporter) ShipmentNotice(notice domain.ShipmentNotice) {
	fmt.Fprintln(r.w, "** Shipment notice **")

	for _, unit := range notice.Units {
		fmt.Fprintf(r.w, "%s %sg\n", unit.ProductName, unit.WeightKG.Mul(gramsPerKG))
	}

	fmt.Fprintf(r.w, "Total package weight: %skg\n\n", notice.TotalWeightKG)
}

func (r *Reporter) Rejected(err error) {
	fmt.Fprintf(r.w, "Error: %v\n", err)
}
