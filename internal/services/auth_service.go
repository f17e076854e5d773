package services

import (
	"context"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/auth"
	"quicktweet_backend/internal/repositories"
	"quicktweet_backend/internal/services/dto"
)

// AuthService - вход по логину и паролю, выпуск access-токена
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	store repositories.Store
}

func NewAuthService(store repositories.Store) AuthService {
	return &AuthServiceImpl{store: store}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, appErrors.ErrInvalidArgument
	}

	user, err := resolveUser(ctx, s.store, req.Username)
	if err != nil {
		// Не раскрываем, существует ли такой логин
		return nil, appErrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	// Аккаунт в ожидании не допускается к работе до одобрения
	if user.PendingRequest {
		return nil, appErrors.ErrAccountPending
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	}, nil
}
