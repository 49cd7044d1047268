package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type Catalog interface {
	Add(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
