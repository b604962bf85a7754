package service

import (
	"context"
	"errors"
	"fmt"

	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/pkg/storage"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	UpdatePreferences(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) error
	UploadAvatar(ctx context.Context, userId uuid.UUID, imageDataURL string) (string, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionService ISessionService
	imageStore     *storage.ImageStore
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, sessionService ISessionService, imageStore *storage.ImageStore) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		sessionService: sessionService,
		imageStore:     imageStore,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	avatarURL := ""
	if user.AvatarURL != nil {
		avatarURL = *user.AvatarURL
	}

	return &dto.UserProfileResponse{
		Id:                user.Id,
		Email:             user.Email,
		FullName:          user.FullName,
		Role:              string(user.Role),
		Status:            string(user.Status),
		AvatarURL:         avatarURL,
		PreferredLanguage: user.PreferredLanguage,
		FieldModeEnabled:  user.FieldModeEnabled,
		CreatedAt:         user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	user.FullName = req.FullName
	if req.Email != "" && req.Email != user.Email {
		existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if existing != nil {
			return errors.New("email already in use")
		}
		user.Email = req.Email
	}

	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) UpdatePreferences(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().UpdatePreferences(ctx, userId, req.PreferredLanguage, req.FieldModeEnabled); err != nil {
		return err
	}

	// Mirror into the live session so the change is visible immediately.
	if session, found := s.sessionService.Get(userId); found {
		if req.PreferredLanguage != nil {
			session.Language = *req.PreferredLanguage
		}
		if req.FieldModeEnabled != nil {
			session.FieldMode = *req.FieldModeEnabled
		}
	}

	return nil
}

func (s *userService) UploadAvatar(ctx context.Context, userId uuid.UUID, imageDataURL string) (string, error) {
	if s.imageStore == nil {
		return "", errors.New("image storage is not configured")
	}

	url, err := s.imageStore.UploadDataURL(ctx, imageDataURL, "avatars")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().UpdateAvatar(ctx, userId, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	s.sessionService.SignOut(userId)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ScanRepository().DeleteByUser(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}
