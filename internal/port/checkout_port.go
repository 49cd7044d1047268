package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type CheckoutService interface {
	// Checkout validates every cart line, settles stock and balance on
	// success and returns the receipt. Failures leave customer and products
	// untouched.
	Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error)
}

type ShippingService interface {
	Ship(ctx context.Context, units []domain.ShipmentUnit) (domain.ShipmentNotice, error)
}

// Reporter is the user-facing output sink. Checkout reports every outcome
// here so the orchestration stays testable without capturing stdout.
type Reporter interface {
	Receipt(receipt domain.Receipt)
	ShipmentNotice(notice domain.ShipmentNotice)
	Rejected(err error)
}
