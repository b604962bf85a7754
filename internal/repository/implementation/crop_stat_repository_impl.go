package implementation

import (
	"context"
	"time"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/mapper"
	"agri-solve-be/internal/model"
	"agri-solve-be/internal/repository/contract"
	"agri-solve-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CropStatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CropStatMapper
}

func NewCropStatRepository(db *gorm.DB) contract.CropStatRepository {
	return &CropStatRepositoryImpl{
		db:     db,
		mapper: mapper.NewCropStatMapper(),
	}
}

func (r *CropStatRepositoryImpl) RecordScan(ctx context.Context, cropType, diagnosis string, seenAt time.Time) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO crop_disease_stats (id, crop_type, diagnosis, scan_count, last_seen_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT (crop_type, diagnosis)
		DO UPDATE SET scan_count = crop_disease_stats.scan_count + 1, last_seen_at = EXCLUDED.last_seen_at
	`, uuid.New(), cropType, diagnosis, seenAt).Error
}

func (r *CropStatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CropDiseaseStat, error) {
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	var models []*model.CropDiseaseStat
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
