package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agri-solve-be/internal/constant"
	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/pkg/logger"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/pkg/ai"
	"agri-solve-be/pkg/events"
	pktNats "agri-solve-be/pkg/nats"
	"agri-solve-be/pkg/storage"

	"github.com/google/uuid"
)

type IScanService interface {
	// Analyze runs the AI diagnosis. A nil userId means the caller is not
	// signed in: the analysis still runs, but nothing is persisted and the
	// response carries save_status "not_signed_in".
	Analyze(ctx context.Context, userId *uuid.UUID, req *dto.AnalyzeScanRequest) (*dto.AnalyzeScanResponse, error)

	// History lists the user's scans newest-first. A limit of 0 returns
	// everything.
	History(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ScanListResponse, error)
	Get(ctx context.Context, userId, scanId uuid.UUID) (*dto.ScanResponse, error)

	// Focus moves the session's focused-scan pointer; an empty scanId clears it.
	Focus(ctx context.Context, userId uuid.UUID, scanId string) error
}

type scanService struct {
	uowFactory       unitofwork.RepositoryFactory
	provider         ai.Provider
	sessionService   ISessionService
	imageStore       *storage.ImageStore
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewScanService(
	uowFactory unitofwork.RepositoryFactory,
	provider ai.Provider,
	sessionService ISessionService,
	imageStore *storage.ImageStore,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IScanService {
	return &scanService{
		uowFactory:       uowFactory,
		provider:         provider,
		sessionService:   sessionService,
		imageStore:       imageStore,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *scanService) Analyze(ctx context.Context, userId *uuid.UUID, req *dto.AnalyzeScanRequest) (*dto.AnalyzeScanResponse, error) {
	if !constant.IsValidCropType(req.CropType) {
		return nil, errors.New("unsupported crop type")
	}

	// Hand out a generation token before the slow AI call so a stale result
	// cannot steal focus from a newer one.
	var token uint64
	if userId != nil {
		session, err := s.sessionService.GetOrLoad(ctx, *userId)
		if err != nil {
			return nil, err
		}
		token = session.BeginAnalysis()
	}

	content, err := s.provider.Analyze(ctx, req.ImageData, req.CropType)
	if err != nil {
		return nil, err
	}

	diagnosis := ai.ParseDiagnosis(content)

	response := &dto.AnalyzeScanResponse{
		Result: dto.DiagnosisDTO{
			Diagnosis:      diagnosis.Diagnosis,
			Confidence:     diagnosis.Confidence,
			IsHealthy:      diagnosis.IsHealthy,
			Cause:          diagnosis.Cause,
			OrganicCure:    diagnosis.OrganicCure,
			ChemicalCure:   diagnosis.ChemicalCure,
			PreventionTips: diagnosis.PreventionTips,
		},
		HealthyComparisonURL: constant.HealthyReferenceImage(req.CropType),
		SaveStatus:           dto.SaveStatusNotSignedIn,
	}

	if userId == nil {
		return response, nil
	}

	// Image upload is best effort; a scan record without an image URL is
	// still useful history.
	imageURL := ""
	if s.imageStore != nil {
		imageURL, err = s.imageStore.UploadDataURL(ctx, req.ImageData, "scans")
		if err != nil {
			s.log.Warn("scan", "image upload failed", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
			imageURL = ""
		}
	}

	scan := &entity.Scan{
		Id:                   uuid.New(),
		UserId:               *userId,
		CropType:             req.CropType,
		Diagnosis:            diagnosis.Diagnosis,
		Cause:                diagnosis.Cause,
		OrganicCure:          diagnosis.OrganicCure,
		ChemicalCure:         diagnosis.ChemicalCure,
		Confidence:           diagnosis.Confidence,
		ImageURL:             imageURL,
		HealthyComparisonURL: response.HealthyComparisonURL,
		CreatedAt:            time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ScanRepository().Create(ctx, scan); err != nil {
		// The analysis itself succeeded; report the persistence failure
		// without discarding the result.
		s.log.Error("scan", "failed to persist scan", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		response.SaveStatus = dto.SaveStatusWriteFailed
		return response, nil
	}

	response.SaveStatus = dto.SaveStatusSaved
	response.ScanId = &scan.Id
	response.ImageURL = imageURL

	if session, found := s.sessionService.Get(*userId); found {
		session.RecordScan(token, scan.Id.String())
	}

	s.publishScanRecorded(ctx, scan)

	return response, nil
}

func (s *scanService) publishScanRecorded(ctx context.Context, scan *entity.Scan) {
	payload := dto.ScanRecordedMessage{
		ScanId:    scan.Id,
		CropType:  scan.CropType,
		Diagnosis: scan.Diagnosis,
		SeenAt:    scan.CreatedAt,
	}
	payloadJson, err := json.Marshal(payload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
			s.log.Warn("scan", "failed to enqueue stats message", map[string]interface{}{
				"scan_id": scan.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent("SCAN_RECORDED", map[string]interface{}{
			"scan_id":   scan.Id,
			"user_id":   scan.UserId,
			"crop_type": scan.CropType,
			"diagnosis": scan.Diagnosis,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SCAN_RECORDED event: %v\n", err)
		}
	}
}

func (s *scanService) History(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ScanListResponse, error) {
	var specs []specification.Specification
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scans, err := uow.ScanRepository().FindByUser(ctx, userId, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ScanResponse, len(scans))
	for i, scan := range scans {
		responses[i] = toScanResponse(scan)
	}

	return &dto.ScanListResponse{
		Scans: responses,
		Total: len(responses),
	}, nil
}

func (s *scanService) Get(ctx context.Context, userId, scanId uuid.UUID) (*dto.ScanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scan, err := uow.ScanRepository().FindOne(ctx,
		specification.ByID{ID: scanId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if scan == nil {
		return nil, errors.New("scan not found")
	}

	resp := toScanResponse(scan)
	return &resp, nil
}

func (s *scanService) Focus(ctx context.Context, userId uuid.UUID, scanId string) error {
	session, err := s.sessionService.GetOrLoad(ctx, userId)
	if err != nil {
		return err
	}

	if scanId == "" {
		session.SetFocusedScan("")
		return nil
	}

	for _, id := range session.ScanIds() {
		if id == scanId {
			session.SetFocusedScan(scanId)
			return nil
		}
	}
	return errors.New("scan not found")
}

func toScanResponse(scan *entity.Scan) dto.ScanResponse {
	return dto.ScanResponse{
		Id:                   scan.Id,
		CropType:             scan.CropType,
		Diagnosis:            scan.Diagnosis,
		Cause:                scan.Cause,
		OrganicCure:          scan.OrganicCure,
		ChemicalCure:         scan.ChemicalCure,
		Confidence:           scan.Confidence,
		ImageURL:             scan.ImageURL,
		HealthyComparisonURL: scan.HealthyComparisonURL,
		CreatedAt:            scan.CreatedAt,
	}
}
