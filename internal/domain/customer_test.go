package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	customer, err := domain.NewCustomer(gofakeit.Name(), eur(t, "1000"))
	require.NoError(t, err)
	assert.True(t, customer.Balance.Equal(eur(t, "1000")))

	_, err = domain.NewCustomer("", eur(t, "1000"))
	assert.EqualError(t, err, "name is empty")

	_, err = domain.NewCustomer(gofakeit.Name(), eur(t, "-1"))
	assert.EqualError(t, err, "balance[-1 EUR] is negative")
}

func TestCustomer_Deduct(t *testing.T) {
	customer, err := domain.NewCustomer(gofakeit.Name(), eur(t, "1000"))
	require.NoError(t, err)

	require.NoError(t, customer.Deduct(eur(t, "760")))
	assert.True(t, customer.Balance.Equal(eur(t, "240")))

	// deducting the exact remaining balance is allowed
	require.NoError(t, customer.Deduct(eur(t, "240")))
	assert.True(t, customer.Balance.Amount.IsZero())
}

func TestCustomer_Deduct_Overdraft(t *testing.T) {
	customer, err := domain.NewCustomer(gofakeit.Name(), eur(t, "100"))
	require.NoError(t, err)

	err = customer.Deduct(eur(t, "100.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// balance unchanged
	assert.True(t, customer.Balance.Equal(eur(t, "100")))
}

func TestCustomer_Deduct_CurrencyMismatch(t *testing.T) {
	customer, err := domain.NewCustomer(gofakeit.Name(), eur(t, "100"))
	require.NoError(t, err)

	err = customer.Deduct(usd(t, "10"))
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	assert.True(t, customer.Balance.Equal(eur(t, "100")))
}
