package config_test

import (
	"testing"

	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.ShippingRate.Equal(decimal.NewFromInt(10)))

	unit, err := cfg.CurrencyUnit()
	require.NoError(t, err)
	assert.Equal(t, "EUR", unit.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHECKOUT_CURRENCY", "USD")
	t.Setenv("CHECKOUT_SHIPPING_RATE", "2.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.ShippingRate.Equal(decimal.RequireFromString("2.5")))
}

func TestLoad_InvalidCurrency(t *testing.T) {
	t.Setenv("CHECKOUT_CURRENCY", "EURO")

	_, err := config.Load()
	assert.ErrorContains(t, err, "iso4217")
}

func TestLoad_InvalidShippingRate(t *testing.T) {
	t.Setenv("CHECKOUT_SHIPPING_RATE", "free")

	_, err := config.Load()
	assert.ErrorContains(t, err, "CHECKOUT_SHIPPING_RATE")
}

func TestLoad_NegativeShippingRate(t *testing.T) {
	t.Setenv("CHECKOUT_SHIPPING_RATE", "-1")

	_, err := config.Load()
	assert.ErrorContains(t, err, "is negative")
}
