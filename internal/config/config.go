package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	envCurrency     = "CHECKOUT_CURRENCY"
	envShippingRate = "CHECKOUT_SHIPPING_RATE"
)

type Config struct {
	// Currency is the ISO 4217 code every price, fee and balance uses.
	Currency string `validate:"required,iso4217"`

	// ShippingRate is the flat fee charged per shipped unit.
	ShippingRate decimal.Decimal
}

func Load() (Config, error) {
	rateStr := getenv(envShippingRate, "10")

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return Config{}, fmt.Errorf("%s[%s]: decimal.NewFromString: %w", envShippingRate, rateStr, err)
	}

	if rate.IsNegative() {
		return Config{}, fmt.Errorf("%s[%s] is negative", envShippingRate, rateStr)
	}

	cfg := Config{
		Currency:     getenv(envCurrency, "EUR"),
		ShippingRate: rate,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validator.Struct: %w", err)
	}

	return cfg, nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency.ParseISO[%s]: %w", c.Currency, err)
	}

	return unit, nil
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}
