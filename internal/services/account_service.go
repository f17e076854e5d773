package services

import (
	"context"
	"errors"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/auth"
	"quicktweet_backend/internal/logger"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
	"quicktweet_backend/internal/services/dto"
)

// AccountService - жизненный цикл аккаунта:
// создан (ожидает одобрения) -> одобрен | отклонен(удален); одобрен -> удален.
// Флаг PendingRequest и членство в реестре меняются только вместе,
// в одной транзакции.
type AccountService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Approve(ctx context.Context, username string) error
	Reject(ctx context.Context, username string) error
	DeleteAccount(ctx context.Context, id uint) error
	UpdateUserRole(ctx context.Context, adminUsername string, id uint) (models.UserRole, error)
}

type AccountServiceImpl struct {
	store repositories.Store
}

func NewAccountService(store repositories.Store) AccountService {
	return &AccountServiceImpl{store: store}
}

// Register создает аккаунт в статусе "ожидает одобрения"
// и одновременно регистрирует его в реестре заявок
func (s *AccountServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" ||
		req.SecurityQuestion == "" || req.SecurityAnswer == "" {
		return nil, appErrors.ErrInvalidArgument
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hash,
		Role:             models.UserRoleUser,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
		PendingRequest:   true,
	}

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Users().FindByUsername(ctx, req.Username); err == nil {
			return appErrors.ErrUsernameAlreadyExists
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}
		if _, err := tx.Users().FindByEmail(ctx, req.Email); err == nil {
			return appErrors.ErrEmailAlreadyExists
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}

		if _, err := tx.Ledger().Get(ctx); err != nil {
			if errors.Is(err, repositories.ErrLedgerNotFound) {
				return appErrors.ErrLedgerNotFound
			}
			return err
		}

		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		return tx.Ledger().AddPendingRequest(ctx, user)
	})
	if err != nil {
		return nil, serviceError(err)
	}

	logger.CtxInfo(ctx, "account registered, awaiting approval", "username", user.Username, "user_id", user.ID)
	return user, nil
}

// Approve снимает флаг ожидания и убирает аккаунт из реестра
func (s *AccountServiceImpl) Approve(ctx context.Context, username string) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := resolveUser(ctx, tx, username)
		if err != nil {
			return err
		}

		ledger, err := tx.Ledger().Get(ctx)
		if err != nil {
			if errors.Is(err, repositories.ErrLedgerNotFound) {
				return appErrors.ErrLedgerNotFound
			}
			return err
		}
		if !ledger.HasPending(user.ID) {
			// Заявки нет: аккаунт уже одобрен или никогда не ждал одобрения
			return appErrors.ErrUserNotFound
		}

		user.PendingRequest = false
		if err := tx.Users().Save(ctx, user); err != nil {
			return err
		}
		return tx.Ledger().RemovePendingRequest(ctx, user)
	})
	if err != nil {
		return serviceError(err)
	}

	logger.CtxInfo(ctx, "account approved", "username", username)
	return nil
}

// Reject убирает заявку из реестра и удаляет саму запись.
// Аккаунт в ожидании еще не мог обрасти связями, чистка графа не нужна.
// Повторный Reject того же имени дает NotFound без побочных эффектов.
func (s *AccountServiceImpl) Reject(ctx context.Context, username string) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := resolveUser(ctx, tx, username)
		if err != nil {
			return err
		}

		ledger, err := tx.Ledger().Get(ctx)
		if err != nil {
			if errors.Is(err, repositories.ErrLedgerNotFound) {
				return appErrors.ErrLedgerNotFound
			}
			return err
		}
		if !ledger.HasPending(user.ID) {
			return appErrors.ErrUserNotFound
		}

		if err := tx.Ledger().RemovePendingRequest(ctx, user); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, user)
	})
	if err != nil {
		return serviceError(err)
	}

	logger.CtxInfo(ctx, "account rejected and removed", "username", username)
	return nil
}

// DeleteAccount удаляет аккаунт и вычищает все обратные ссылки на него:
// у каждого друга, у каждого отправителя входящей заявки, и по полному
// обходу - у всех, кому этот аккаунт сам отправлял заявки (они не
// отслеживаются на его собственной записи). Все это вместе с финальным
// удалением выполняется одной транзакцией: частично зачищенный граф
// снаружи не виден, а повторный запуск по уже зачищенным ссылкам
// сходится, поскольку снятие отсутствующей ссылки - no-op.
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return appErrors.ErrUserNotFound
			}
			return err
		}

		for _, friend := range user.Friends {
			if err := tx.Users().RemoveFriend(ctx, friend, user); err != nil {
				return err
			}
		}
		for _, sender := range user.FriendRequests {
			if err := tx.Users().RemoveFriendRequest(ctx, sender, user); err != nil {
				return err
			}
		}

		// Полный обход: заявки, отправленные самим аккаунтом
		others, err := tx.Users().FindAll(ctx)
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.ID == user.ID {
				continue
			}
			if other.HasFriendRequest(user.ID) {
				if err := tx.Users().RemoveFriendRequest(ctx, other, user); err != nil {
					return err
				}
			}
		}

		// Неодобренный аккаунт мог попасть сюда по id: снимаем и заявку в реестре
		if user.PendingRequest {
			if err := tx.Ledger().RemovePendingRequest(ctx, user); err != nil {
				return err
			}
		}

		return tx.Users().Delete(ctx, user)
	})
	if err != nil {
		return serviceError(err)
	}

	logger.CtxInfo(ctx, "account deleted, back-references scrubbed", "user_id", id)
	return nil
}

// UpdateUserRole переключает роль USER <-> ADMIN, доступно только администратору
func (s *AccountServiceImpl) UpdateUserRole(ctx context.Context, adminUsername string, id uint) (models.UserRole, error) {
	admin, err := resolveUser(ctx, s.store, adminUsername)
	if err != nil {
		return "", err
	}
	if admin.Role != models.UserRoleAdmin {
		return "", appErrors.ErrForbidden
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", appErrors.ErrUserNotFound
		}
		return "", appErrors.DatabaseError(err)
	}

	user.Role = user.Role.Toggle()
	if err := s.store.Users().Save(ctx, user); err != nil {
		return "", appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user role updated", "user_id", id, "role", user.Role)
	return user.Role, nil
}
