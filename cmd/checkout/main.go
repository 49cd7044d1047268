package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/nikolayk812/checkout-demo/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap.NewProduction: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return fmt.Errorf("cfg.CurrencyUnit: %w", err)
	}

	catalog := repository.NewCatalog()
	if err := seedCatalog(ctx, catalog, unit); err != nil {
		return fmt.Errorf("seedCatalog: %w", err)
	}

	products, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog.List: %w", err)
	}
	logger.Info("catalog seeded", zap.Int("products", len(products)))

	customer, err := domain.NewCustomer("Amr", money("1000", unit))
	if err != nil {
		return fmt.Errorf("domain.NewCustomer: %w", err)
	}

	cart := domain.NewCart()
	for i, quantity := range []int{2, 1, 1, 1} {
		product, err := catalog.Get(ctx, products[i].ID)
		if err != nil {
			return fmt.Errorf("catalog.Get: %w", err)
		}

		if err := cart.Add(product, quantity); err != nil {
			return fmt.Errorf("cart.Add[%s]: %w", product.Name, err)
		}
	}

	reporter := console.NewReporter(os.Stdout)
	shipping := service.NewShipping(logger)

	checkout, err := service.NewCheckout(shipping, reporter,
		domain.NewMoney(cfg.ShippingRate, unit), logger)
	if err != nil {
		return fmt.Errorf("service.NewCheckout: %w", err)
	}

	if _, err := checkout.Checkout(ctx, customer, cart); err != nil {
		// Business rejections were already printed by the reporter.
		logger.Warn("checkout rejected", zap.Error(err))
	}

	return nil
}

// seedCatalog loads the demo basket: two expirable groceries, a shippable TV
// and a plain scratch card.
func seedCatalog(ctx context.Context, catalog port.Catalog, unit currency.Unit) error {
	now := time.Now()

	cheese, err := domain.NewProduct("Cheese", money("100", unit), 5,
		domain.WithExpiry(now.AddDate(1, 0, 0)))
	if err != nil {
		return err
	}

	biscuits, err := domain.NewProduct("Biscuits", money("150", unit), 2,
		domain.WithExpiry(now.AddDate(0, 3, 0)))
	if err != nil {
		return err
	}

	tv, err := domain.NewProduct("TV", money("300", unit), 3,
		domain.WithWeight(decimal.RequireFromString("0.5")))
	if err != nil {
		return err
	}

	scratchCard, err := domain.NewProduct("Scratch Card", money("50", unit), 10)
	if err != nil {
		return err
	}

	for _, product := range []*domain.Product{cheese, biscuits, tv, scratchCard} {
		if err := catalog.Add(ctx, product); err != nil {
			return err
		}
	}

	return nil
}

func money(amount string, unit currency.Unit) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), unit)
}
