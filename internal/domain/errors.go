package domain

import "errors"

// Business rule failures surfaced by Cart.Add and checkout.
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductExpired      = errors.New("product is expired")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrProductNotFound     = errors.New("product not found")
)
