package contract

import (
	"context"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/specification"
)

// Shop records are written by the seeder only; the service reads them.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error)
}
