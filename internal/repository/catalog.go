package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

// catalog is an in-memory product store. Products are kept by pointer so the
// quantity reductions done at checkout settlement are visible to every reader.
type catalog struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	order    []uuid.UUID
}

func NewCatalog() port.Catalog {
	return &catalog{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

func (c *catalog) Add(_ context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[product.ID]; exists {
		return fmt.Errorf("product[%s] already exists", product.ID)
	}

	c.products[product.ID] = product
	c.order = append(c.order, product.ID)
	return nil
}

func (c *catalog) Get(_ context.Context, productID uuid.UUID) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, exists := c.products[productID]
	if !exists {
		return nil, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
	}

	return product, nil
}

// List returns all products in insertion order.
func (c *catalog) List(_ context.Context) ([]*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]*domain.Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.products[id])
	}

	return products, nil
}
