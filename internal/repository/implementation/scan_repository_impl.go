package implementation

import (
	"context"
	"errors"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/mapper"
	"agri-solve-be/internal/model"
	"agri-solve-be/internal/repository/contract"
	"agri-solve-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScanMapper
}

func NewScanRepository(db *gorm.DB) contract.ScanRepository {
	return &ScanRepositoryImpl{
		db:     db,
		mapper: mapper.NewScanMapper(),
	}
}

func (r *ScanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScanRepositoryImpl) Create(ctx context.Context, scan *entity.Scan) error {
	m := r.mapper.ToModel(scan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scan = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scan, error) {
	var m model.Scan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScanRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID, specs ...specification.Specification) ([]*entity.Scan, error) {
	all := append([]specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	}, specs...)

	var models []*model.Scan
	query := r.applySpecifications(r.db.WithContext(ctx), all...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScanRepositoryImpl) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Scan{}).Error
}
