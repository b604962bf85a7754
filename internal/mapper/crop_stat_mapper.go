package mapper

import (
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/model"
)

type CropStatMapper struct{}

func NewCropStatMapper() *CropStatMapper {
	return &CropStatMapper{}
}

func (m *CropStatMapper) ToEntity(s *model.CropDiseaseStat) *entity.CropDiseaseStat {
	if s == nil {
		return nil
	}
	return &entity.CropDiseaseStat{
		Id:         s.Id,
		CropType:   s.CropType,
		Diagnosis:  s.Diagnosis,
		ScanCount:  s.ScanCount,
		LastSeenAt: s.LastSeenAt,
	}
}

func (m *CropStatMapper) ToModel(s *entity.CropDiseaseStat) *model.CropDiseaseStat {
	if s == nil {
		return nil
	}
	return &model.CropDiseaseStat{
		Id:         s.Id,
		CropType:   s.CropType,
		Diagnosis:  s.Diagnosis,
		ScanCount:  s.ScanCount,
		LastSeenAt: s.LastSeenAt,
	}
}

func (m *CropStatMapper) ToEntities(stats []*model.CropDiseaseStat) []*entity.CropDiseaseStat {
	entities := make([]*entity.CropDiseaseStat, len(stats))
	for i, s := range stats {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
