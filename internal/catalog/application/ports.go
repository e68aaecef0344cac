package application

import (
	"context"

	"github.com/trailercraft/storefront/internal/catalog/domain"
)

type TruckRepository interface {
	Save(ctx context.Context, t domain.Truck) error
	Update(ctx context.Context, t domain.Truck) error
	Get(ctx context.Context, id string) (domain.Truck, error)
	List(ctx context.Context, availableOnly bool) ([]domain.Truck, error)
	Delete(ctx context.Context, id string) error
}
