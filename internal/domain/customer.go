package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Customer struct {
	ID      uuid.UUID
	Name    string
	Balance Money
}

func NewCustomer(name string, balance Money) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	if balance.IsNegative() {
		return nil, fmt.Errorf("balance[%s] is negative", balance)
	}

	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		Balance: balance,
	}, nil
}

// Deduct lowers the balance by amount. The balance never goes negative.
func (c *Customer) Deduct(amount Money) error {
	insufficient, err := c.Balance.LessThan(amount)
	if err != nil {
		return fmt.Errorf("balance.LessThan: %w", err)
	}

	if insufficient {
		return fmt.Errorf("balance[%s] < amount[%s]: %w", c.Balance, amount, ErrInsufficientBalance)
	}

	balance, err := c.Balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("balance.Sub: %w", err)
	}

	c.Balance = balance
	return nil
}
