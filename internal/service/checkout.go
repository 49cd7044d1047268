package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"go.uber.org/zap"
)

type checkoutService struct {
	shipping port.ShippingService
	reporter port.Reporter
	logger   *zap.Logger

	// flatShippingRate is charged per shipped unit, on top of the subtotal.
	flatShippingRate domain.Money

	nowFunc func() time.Time
}

type CheckoutOption func(*checkoutService)

// WithClock overrides the evaluation-time source used for expiry checks.
func WithClock(nowFunc func() time.Time) CheckoutOption {
	return func(s *checkoutService) {
		if nowFunc != nil {
			s.nowFunc = nowFunc
		}
	}
}

func NewCheckout(shipping port.ShippingService, reporter port.Reporter, flatShippingRate domain.Money, logger *zap.Logger, opts ...CheckoutOption) (port.CheckoutService, error) {
	if shipping == nil {
		return nil, fmt.Errorf("shipping is nil")
	}

	if reporter == nil {
		return nil, fmt.Errorf("reporter is nil")
	}

	if flatShippingRate.IsNegative() {
		return nil, fmt.Errorf("flatShippingRate[%s] is negative", flatShippingRate)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	s := &checkoutService{
		shipping:         shipping,
		reporter:         reporter,
		logger:           logger,
		flatShippingRate: flatShippingRate,
		nowFunc:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *checkoutService) Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error) {
	if customer == nil {
		return domain.Receipt{}, fmt.Errorf("customer is nil")
	}

	if cart == nil {
		return domain.Receipt{}, fmt.Errorf("cart is nil")
	}

	if cart.IsEmpty() {
		return domain.Receipt{}, s.reject(domain.ErrEmptyCart)
	}

	items := cart.Items()
	now := s.nowFunc()

	subtotal := customer.Balance.Zero()
	shippingFee := s.flatShippingRate.Zero()

	var (
		lines []domain.ReceiptLine
		units []domain.ShipmentUnit
	)

	// requested tracks the summed quantity per product across cart lines, so
	// the same product added twice cannot jointly oversell its stock.
	requested := map[uuid.UUID]int{}

	for _, item := range items {
		product := item.Product

		if product.Expired(now) {
			return domain.Receipt{}, s.reject(fmt.Errorf("product[%s]: %w", product.Name, domain.ErrProductExpired))
		}

		requested[product.ID] += item.Quantity
		if requested[product.ID] > product.Quantity {
			return domain.Receipt{}, s.reject(fmt.Errorf("product[%s] requested[%d] > stock[%d]: %w",
				product.Name, requested[product.ID], product.Quantity, domain.ErrInsufficientStock))
		}

		lineTotal := product.Price.MulInt(item.Quantity)

		var err error
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return domain.Receipt{}, s.reject(fmt.Errorf("product[%s]: subtotal.Add: %w", product.Name, err))
		}

		lines = append(lines, domain.ReceiptLine{
			ProductName: product.Name,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})

		if product.Shippable() {
			for range item.Quantity {
				units = append(units, domain.ShipmentUnit{
					ProductName: product.Name,
					WeightKG:    product.WeightKG(),
				})
			}

			shippingFee, err = shippingFee.Add(s.flatShippingRate.MulInt(item.Quantity))
			if err != nil {
				return domain.Receipt{}, s.reject(fmt.Errorf("product[%s]: shippingFee.Add: %w", product.Name, err))
			}
		}
	}

	total, err := subtotal.Add(shippingFee)
	if err != nil {
		return domain.Receipt{}, s.reject(fmt.Errorf("subtotal.Add(shippingFee): %w", err))
	}

	insufficient, err := customer.Balance.LessThan(total)
	if err != nil {
		return domain.Receipt{}, s.reject(fmt.Errorf("balance.LessThan: %w", err))
	}

	if insufficient {
		return domain.Receipt{}, s.reject(fmt.Errorf("balance[%s] < total[%s]: %w",
			customer.Balance, total, domain.ErrInsufficientBalance))
	}

	// Settlement. All checks passed: from here on the whole checkout commits.
	for _, item := range items {
		item.Product.ReduceQuantity(item.Quantity)
	}

	if err := customer.Deduct(total); err != nil {
		return domain.Receipt{}, fmt.Errorf("customer.Deduct: %w", err)
	}

	receipt := domain.Receipt{
		Lines:       lines,
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Total:       total,
		Balance:     customer.Balance,
	}

	if len(units) > 0 {
		notice, err := s.shipping.Ship(ctx, units)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("shipping.Ship: %w", err)
		}

		receipt.Shipment = &notice
		s.reporter.ShipmentNotice(notice)
	}

	s.reporter.Receipt(receipt)

	s.logger.Info("checkout completed",
		zap.String("customer", customer.Name),
		zap.Int("lines", len(lines)),
		zap.Int("shipment_units", len(units)),
		zap.String("total", total.String()),
		zap.String("balance", customer.Balance.String()),
	)

	return receipt, nil
}

// reject reports a business rule failure to the user-facing sink and returns
// it for programmatic callers. No state has been mutated at any reject site.
func (s *checkoutService) reject(err error) error {
	s.reporter.Rejected(err)

	s.logger.Info("checkout rejected", zap.Error(err))

	return err
}
