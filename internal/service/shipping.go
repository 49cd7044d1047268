package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type shippingService struct {
	logger *zap.Logger
}

func NewShipping(logger *zap.Logger) port.ShippingService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &shippingService{logger: logger}
}

// Ship totals the weights of an ordered per-unit list. The total is the
// straight sum over every listed unit, so a unit appearing three times counts
// three times.
func (s *shippingService) Ship(_ context.Context, units []domain.ShipmentUnit) (domain.ShipmentNotice, error) {
	if len(units) == 0 {
		return domain.ShipmentNotice{}, fmt.Errorf("units is empty")
	}

	totalWeight := decimal.Zero
	for _, unit := range units {
		totalWeight = totalWeight.Add(unit.WeightKG)
	}

	s.logger.Info("shipment prepared",
		zap.Int("units", len(units)),
		zap.String("total_weight_kg", totalWeight.String()),
	)

	return domain.ShipmentNotice{
		Units:         units,
		TotalWeightKG: totalWeight,
	}, nil
}
