package service

import (
	"context"
	"errors"
	"testing"

	"agri-solve-be/internal/constant"
	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/contract"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/pkg/ai"
	"agri-solve-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test doubles ---

type fakeProvider struct {
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Analyze(ctx context.Context, imageData string, cropHint string, opts ...ai.Option) (string, error) {
	f.calls++
	return f.content, f.err
}

type fakeScanRepo struct {
	scans           []*entity.Scan
	created         []*entity.Scan
	createErr       error
	findByUserSpecs []specification.Specification
}

func (r *fakeScanRepo) Create(ctx context.Context, scan *entity.Scan) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, scan)
	r.scans = append([]*entity.Scan{scan}, r.scans...)
	return nil
}

func (r *fakeScanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scan, error) {
	if len(r.scans) == 0 {
		return nil, nil
	}
	return r.scans[0], nil
}

func (r *fakeScanRepo) FindByUser(ctx context.Context, userId uuid.UUID, specs ...specification.Specification) ([]*entity.Scan, error) {
	r.findByUserSpecs = specs
	return r.scans, nil
}

func (r *fakeScanRepo) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	r.scans = nil
	return nil
}

type fakeUnitOfWork struct {
	scanRepo     *fakeScanRepo
	shopRepo     *fakeShopRepo
	cropStatRepo *fakeCropStatRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return nil }
func (u *fakeUnitOfWork) ScanRepository() contract.ScanRepository         { return u.scanRepo }
func (u *fakeUnitOfWork) ShopRepository() contract.ShopRepository         { return u.shopRepo }
func (u *fakeUnitOfWork) CropStatRepository() contract.CropStatRepository { return u.cropStatRepo }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeSessionService struct {
	session *store.AppSession
}

func (f *fakeSessionService) SignIn(ctx context.Context, userId uuid.UUID, language string, fieldMode bool) (*store.AppSession, error) {
	return f.session, nil
}

func (f *fakeSessionService) SignOut(userId uuid.UUID) {}

func (f *fakeSessionService) Get(userId uuid.UUID) (*store.AppSession, bool) {
	return f.session, f.session != nil
}

func (f *fakeSessionService) GetOrLoad(ctx context.Context, userId uuid.UUID) (*store.AppSession, error) {
	if f.session == nil {
		return nil, errors.New("no session")
	}
	return f.session, nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// --- Fixture ---

type scanFixture struct {
	service   IScanService
	scanRepo  *fakeScanRepo
	session   *fakeSessionService
	publisher *fakePublisher
}

func newScanFixture(provider *fakeProvider, session *store.AppSession) *scanFixture {
	scanRepo := &fakeScanRepo{}
	sessionService := &fakeSessionService{session: session}
	publisher := &fakePublisher{}

	svc := NewScanService(
		&fakeUowFactory{uow: &fakeUnitOfWork{scanRepo: scanRepo}},
		provider,
		sessionService,
		nil, // no image store, uploads skipped
		publisher,
		nil, // no NATS in tests
		nopLogger{},
	)

	return &scanFixture{
		service:   svc,
		scanRepo:  scanRepo,
		session:   sessionService,
		publisher: publisher,
	}
}

const diagnosisReply = "```json\n" + `{
	"diagnosis": "Leaf Blast",
	"confidence": 91,
	"isHealthy": false,
	"cause": "Fungal infection",
	"organicCure": "Neem oil spray",
	"chemicalCure": "Tricyclazole",
	"preventionTips": "Rotate crops"
}` + "\n```"

// --- Tests ---

func TestAnalyzeRejectsUnknownCropType(t *testing.T) {
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, nil)

	_, err := f.service.Analyze(context.Background(), nil, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  "banana",
	})

	require.Error(t, err)
}

func TestAnalyzeAnonymousIsNotPersisted(t *testing.T) {
	provider := &fakeProvider{content: diagnosisReply}
	f := newScanFixture(provider, nil)

	res, err := f.service.Analyze(context.Background(), nil, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  constant.CropRice,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)

	assert.Equal(t, dto.SaveStatusNotSignedIn, res.SaveStatus)
	assert.Nil(t, res.ScanId)
	assert.Equal(t, "Leaf Blast", res.Result.Diagnosis)
	assert.Equal(t, constant.HealthyReferenceImage(constant.CropRice), res.HealthyComparisonURL)

	assert.Empty(t, f.scanRepo.created)
	assert.Empty(t, f.publisher.payloads)
}

func TestAnalyzeSignedInSavesAndFocuses(t *testing.T) {
	userId := uuid.New()
	session := store.NewAppSession(userId.String())
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, session)

	res, err := f.service.Analyze(context.Background(), &userId, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  constant.CropTomato,
	})

	require.NoError(t, err)
	assert.Equal(t, dto.SaveStatusSaved, res.SaveStatus)
	require.NotNil(t, res.ScanId)

	require.Len(t, f.scanRepo.created, 1)
	saved := f.scanRepo.created[0]
	assert.Equal(t, userId, saved.UserId)
	assert.Equal(t, constant.CropTomato, saved.CropType)
	assert.Equal(t, "Leaf Blast", saved.Diagnosis)
	assert.Equal(t, float64(91), saved.Confidence)

	// Session mirrors the new scan: prepended and focused.
	assert.Equal(t, []string{saved.Id.String()}, session.ScanIds())
	assert.Equal(t, saved.Id.String(), session.FocusedScanId())

	// Stats message enqueued for the background worker.
	require.Len(t, f.publisher.payloads, 1)
	assert.Contains(t, string(f.publisher.payloads[0]), "Leaf Blast")
}

func TestAnalyzeUnparseableReplyStillSucceeds(t *testing.T) {
	f := newScanFixture(&fakeProvider{content: "sorry, I can't tell"}, nil)

	res, err := f.service.Analyze(context.Background(), nil, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  constant.CropWheat,
	})

	require.NoError(t, err)
	assert.Equal(t, "Analysis Inconclusive", res.Result.Diagnosis)
	assert.Equal(t, float64(0), res.Result.Confidence)
}

func TestAnalyzeProviderErrorPassesThrough(t *testing.T) {
	wantErr := errors.New("gateway down")
	f := newScanFixture(&fakeProvider{err: wantErr}, nil)

	_, err := f.service.Analyze(context.Background(), nil, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  constant.CropRice,
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyzeWriteFailureReportsStatus(t *testing.T) {
	userId := uuid.New()
	session := store.NewAppSession(userId.String())
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, session)
	f.scanRepo.createErr = errors.New("db down")

	res, err := f.service.Analyze(context.Background(), &userId, &dto.AnalyzeScanRequest{
		ImageData: "data:image/jpeg;base64,abc",
		CropType:  constant.CropRice,
	})

	// The analysis still succeeds from the caller's point of view.
	require.NoError(t, err)
	assert.Equal(t, dto.SaveStatusWriteFailed, res.SaveStatus)
	assert.Nil(t, res.ScanId)
	assert.Equal(t, "Leaf Blast", res.Result.Diagnosis)

	// Nothing recorded in the session, nothing published.
	assert.Empty(t, session.ScanIds())
	assert.Empty(t, f.publisher.payloads)
}

func TestFocusValidatesMembership(t *testing.T) {
	userId := uuid.New()
	session := store.NewAppSession(userId.String())
	session.ReplaceScans([]string{"scan-2", "scan-1"})
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, session)

	err := f.service.Focus(context.Background(), userId, "scan-1")
	require.NoError(t, err)
	assert.Equal(t, "scan-1", session.FocusedScanId())

	err = f.service.Focus(context.Background(), userId, "scan-404")
	require.Error(t, err)
	assert.Equal(t, "scan-1", session.FocusedScanId())
}

func TestFocusEmptyClearsFocus(t *testing.T) {
	userId := uuid.New()
	session := store.NewAppSession(userId.String())
	session.ReplaceScans([]string{"scan-1"})
	session.SetFocusedScan("scan-1")
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, session)

	err := f.service.Focus(context.Background(), userId, "")
	require.NoError(t, err)
	assert.Empty(t, session.FocusedScanId())
}

func TestHistoryReturnsAllScans(t *testing.T) {
	userId := uuid.New()
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, store.NewAppSession(userId.String()))

	for i := 0; i < 3; i++ {
		_, err := f.service.Analyze(context.Background(), &userId, &dto.AnalyzeScanRequest{
			ImageData: "data:image/jpeg;base64,abc",
			CropType:  constant.CropRice,
		})
		require.NoError(t, err)
	}

	res, err := f.service.History(context.Background(), userId, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Len(t, res.Scans, 3)

	// The unpaged listing must not push a pagination spec down.
	assert.Empty(t, f.scanRepo.findByUserSpecs)
}

func TestHistoryPassesPagination(t *testing.T) {
	userId := uuid.New()
	f := newScanFixture(&fakeProvider{content: diagnosisReply}, store.NewAppSession(userId.String()))

	_, err := f.service.History(context.Background(), userId, 2, 4)
	require.NoError(t, err)

	require.Len(t, f.scanRepo.findByUserSpecs, 1)
	assert.Equal(t, specification.Pagination{Limit: 2, Offset: 4}, f.scanRepo.findByUserSpecs[0])
}
