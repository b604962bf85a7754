package service

import (
	"context"

	"agri-solve-be/internal/pkg/logger"
	"agri-solve-be/internal/repository/memory"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/pkg/store"

	"github.com/google/uuid"
)

// ISessionService manages the in-memory app state per signed-in user:
// cached scan history, focused scan, UI preferences and last known location.
type ISessionService interface {
	// SignIn ensures a session exists for the user and loads their scan
	// history, newest first. Calling it again for a live session refreshes
	// the history without touching preferences or location.
	SignIn(ctx context.Context, userId uuid.UUID, language string, fieldMode bool) (*store.AppSession, error)

	// SignOut drops the session, clearing cached scans and focus.
	SignOut(userId uuid.UUID)

	// GetOrLoad returns the live session, recreating it from the database
	// when the cache entry has expired.
	Get(userId uuid.UUID) (*store.AppSession, bool)
	GetOrLoad(ctx context.Context, userId uuid.UUID) (*store.AppSession, error)
}

type sessionService struct {
	sessions   *memory.SessionRepository
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewSessionService(sessions *memory.SessionRepository, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions:   sessions,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *sessionService) SignIn(ctx context.Context, userId uuid.UUID, language string, fieldMode bool) (*store.AppSession, error) {
	session, found := s.sessions.Get(userId.String())
	if !found {
		session = store.NewAppSession(userId.String())
	}
	session.Language = language
	session.FieldMode = fieldMode

	scanIds, err := s.loadScanIds(ctx, userId)
	if err != nil {
		return nil, err
	}
	session.ReplaceScans(scanIds)

	s.sessions.Save(userId.String(), session)
	s.log.Info("session", "session established", map[string]interface{}{
		"user_id": userId.String(),
		"scans":   len(scanIds),
	})
	return session, nil
}

func (s *sessionService) SignOut(userId uuid.UUID) {
	if session, found := s.sessions.Get(userId.String()); found {
		session.ClearScans()
	}
	s.sessions.Delete(userId.String())
	s.log.Info("session", "session closed", map[string]interface{}{
		"user_id": userId.String(),
	})
}

func (s *sessionService) Get(userId uuid.UUID) (*store.AppSession, bool) {
	return s.sessions.Get(userId.String())
}

func (s *sessionService) GetOrLoad(ctx context.Context, userId uuid.UUID) (*store.AppSession, error) {
	if session, found := s.sessions.Get(userId.String()); found {
		return session, nil
	}

	// Cache entry expired; rebuild from the database.
	session := store.NewAppSession(userId.String())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user != nil {
		session.Language = user.PreferredLanguage
		session.FieldMode = user.FieldModeEnabled
	}

	scanIds, err := s.loadScanIds(ctx, userId)
	if err != nil {
		return nil, err
	}
	session.ReplaceScans(scanIds)

	s.sessions.Save(userId.String(), session)
	return session, nil
}

func (s *sessionService) loadScanIds(ctx context.Context, userId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scans, err := uow.ScanRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(scans))
	for i, scan := range scans {
		ids[i] = scan.Id.String()
	}
	return ids, nil
}
