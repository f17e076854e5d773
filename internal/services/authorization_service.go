package services

import (
	"context"
	"errors"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/logger"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
)

// AuthorizationService - доступ к реестру аккаунтов, ожидающих одобрения.
// Сам реестр меняется только внутри транзакций AccountService,
// здесь только чтение и единоразовый bootstrap.
type AuthorizationService interface {
	GetPendingRequests(ctx context.Context, requesterUsername string) ([]*models.User, error)
	EnsureLedger(ctx context.Context) error
}

type AuthorizationServiceImpl struct {
	store repositories.Store
}

func NewAuthorizationService(store repositories.Store) AuthorizationService {
	return &AuthorizationServiceImpl{store: store}
}

// GetPendingRequests возвращает список заявок, доступно только администратору
func (s *AuthorizationServiceImpl) GetPendingRequests(ctx context.Context, requesterUsername string) ([]*models.User, error) {
	requester, err := resolveUser(ctx, s.store, requesterUsername)
	if err != nil {
		return nil, err
	}
	if requester.Role != models.UserRoleAdmin {
		return nil, appErrors.ErrForbidden
	}

	ledger, err := s.store.Ledger().Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerNotFound) {
			return nil, appErrors.ErrLedgerNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	pending := ledger.PendingRequests
	if pending == nil {
		pending = make([]*models.User, 0)
	}
	return pending, nil
}

// EnsureLedger создает запись реестра при первом запуске (check-then-create).
// Повторные вызовы ничего не меняют.
func (s *AuthorizationServiceImpl) EnsureLedger(ctx context.Context) error {
	ledger, err := s.store.Ledger().Ensure(ctx)
	if err != nil {
		return appErrors.DatabaseError(err)
	}
	logger.Info("authorization ledger ready", "id", ledger.ID, "pending", len(ledger.PendingRequests))
	return nil
}
