package contract

import (
	"context"
	"time"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/specification"
)

type CropStatRepository interface {
	// RecordScan increments the counter for a crop/diagnosis pair, creating
	// the row on first sighting.
	RecordScan(ctx context.Context, cropType, diagnosis string, seenAt time.Time) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CropDiseaseStat, error)
}
