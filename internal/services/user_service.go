package services

import (
	"context"
	"errors"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
	"quicktweet_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// UserService - чтение и обновление профилей.
// Аккаунты в ожидании одобрения скрыты из общих выборок.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, username string, req *dto.UpdateProfileRequest) (*models.User, error)
	GetStatus(ctx context.Context, username string) (string, error)
	UpdateStatus(ctx context.Context, username, status string) error
	SearchByUsername(ctx context.Context, query string) ([]*models.User, error)
	GetByInterests(ctx context.Context, interests []string) ([]*models.User, error)
}

type UserServiceImpl struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) UserService {
	return &UserServiceImpl{store: store}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, appErrors.ErrInvalidArgument
	}
	return resolveUser(ctx, s.store, username)
}

// GetAll возвращает только одобренные аккаунты
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.Users().FindAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	approved := make([]*models.User, 0, len(users))
	for _, u := range users {
		if !u.PendingRequest {
			approved = append(approved, u)
		}
	}
	return approved, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, username string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	user.Bio = req.Bio
	user.Photo = req.Photo
	user.Status = req.Status
	user.Interests = datatypes.JSONSlice[string](req.Interests)

	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetStatus(ctx context.Context, username string) (string, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return user.Status, nil
}

func (s *UserServiceImpl) UpdateStatus(ctx context.Context, username, status string) error {
	if username == "" || status == "" {
		return appErrors.ErrInvalidArgument
	}

	user, err := resolveUser(ctx, s.store, username)
	if err != nil {
		return err
	}

	user.Status = status
	if err := s.store.Users().Save(ctx, user); err != nil {
		return appErrors.DatabaseError(err)
	}
	return nil
}

// SearchByUsername - поиск по подстроке имени без учета регистра
func (s *UserServiceImpl) SearchByUsername(ctx context.Context, query string) ([]*models.User, error) {
	users, err := s.store.Users().FindByUsernameSubstring(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return users, nil
}

// GetByInterests - пользователи, у которых есть хотя бы один из указанных интересов
func (s *UserServiceImpl) GetByInterests(ctx context.Context, interests []string) ([]*models.User, error) {
	users, err := s.store.Users().FindByInterestsIntersecting(ctx, interests)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return users, nil
}
