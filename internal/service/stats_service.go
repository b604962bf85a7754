package service

import (
	"context"
	"errors"

	"agri-solve-be/internal/constant"
	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
)

type IStatsService interface {
	// CropStats returns the aggregated diagnosis counts maintained by the
	// scan consumer, most scanned first. An empty cropType covers all crops.
	CropStats(ctx context.Context, cropType string) (*dto.CropStatListResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{uowFactory: uowFactory}
}

func (s *statsService) CropStats(ctx context.Context, cropType string) (*dto.CropStatListResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "scan_count", Desc: true},
	}
	if cropType != "" {
		if !constant.IsValidCropType(cropType) {
			return nil, errors.New("unsupported crop type")
		}
		specs = append(specs, specification.ByCropType{CropType: cropType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.CropStatRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CropStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = dto.CropStatResponse{
			CropType:   stat.CropType,
			Diagnosis:  stat.Diagnosis,
			ScanCount:  stat.ScanCount,
			LastSeenAt: stat.LastSeenAt,
		}
	}

	return &dto.CropStatListResponse{Stats: responses, Total: len(responses)}, nil
}
