package mapper

import (
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/model"
)

type ScanMapper struct{}

func NewScanMapper() *ScanMapper {
	return &ScanMapper{}
}

func (m *ScanMapper) ToEntity(s *model.Scan) *entity.Scan {
	if s == nil {
		return nil
	}
	return &entity.Scan{
		Id:                   s.Id,
		UserId:               s.UserId,
		CropType:             s.CropType,
		Diagnosis:            s.Diagnosis,
		Cause:                s.Cause,
		OrganicCure:          s.OrganicCure,
		ChemicalCure:         s.ChemicalCure,
		Confidence:           s.Confidence,
		ImageURL:             s.ImageURL,
		HealthyComparisonURL: s.HealthyComparisonURL,
		CreatedAt:            s.CreatedAt,
	}
}

func (m *ScanMapper) ToModel(s *entity.Scan) *model.Scan {
	if s == nil {
		return nil
	}
	return &model.Scan{
		Id:                   s.Id,
		UserId:               s.UserId,
		CropType:             s.CropType,
		Diagnosis:            s.Diagnosis,
		Cause:                s.Cause,
		OrganicCure:          s.OrganicCure,
		ChemicalCure:         s.ChemicalCure,
		Confidence:           s.Confidence,
		ImageURL:             s.ImageURL,
		HealthyComparisonURL: s.HealthyComparisonURL,
		CreatedAt:            s.CreatedAt,
	}
}

func (m *ScanMapper) ToEntities(scans []*model.Scan) []*entity.Scan {
	entities := make([]*entity.Scan, len(scans))
	for i, s := range scans {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
