package contract

import (
	"context"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ScanRepository interface {
	Create(ctx context.Context, scan *entity.Scan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scan, error)

	// FindByUser returns the user's scans newest-first; extra specs narrow
	// or page the result.
	FindByUser(ctx context.Context, userId uuid.UUID, specs ...specification.Specification) ([]*entity.Scan, error)
	DeleteByUser(ctx context.Context, userId uuid.UUID) error
}
