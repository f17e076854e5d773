package repositories

import (
	"context"
	"errors"

	"quicktweet_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrLedgerNotFound = errors.New("authorization ledger not found")
)

// Store - единая точка доступа к хранилищу.
// Transaction выполняет fn внутри одной транзакции БД: все записи,
// сделанные через переданный Store, фиксируются или откатываются вместе.
// Симметричные операции над графом друзей обязаны идти через Transaction,
// иначе возможна потеря одной из двух сторон записи.
type Store interface {
	Users() UserRepository
	Ledger() AuthorizationRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByInterestsIntersecting(ctx context.Context, interests []string) ([]*models.User, error)
	FindByUsernameSubstring(ctx context.Context, query string) ([]*models.User, error)

	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error

	// Операции над связями. Каждая меняет ровно одну сторону:
	// AddFriend(u, f) добавляет f в друзья u, но не наоборот.
	AddFriend(ctx context.Context, user, friend *models.User) error
	RemoveFriend(ctx context.Context, user, friend *models.User) error
	AddFriendRequest(ctx context.Context, user, sender *models.User) error
	RemoveFriendRequest(ctx context.Context, user, sender *models.User) error
}

type AuthorizationRepository interface {
	Get(ctx context.Context) (*models.AuthorizationLedger, error)
	// Ensure создает запись реестра если ее еще нет (идемпотентный bootstrap)
	Ensure(ctx context.Context) (*models.AuthorizationLedger, error)
	AddPendingRequest(ctx context.Context, user *models.User) error
	RemovePendingRequest(ctx context.Context, user *models.User) error
}

type gormStore struct {
	db    *gorm.DB
	users *userRepository
	ledgr *authorizationRepository
}

// NewStore создает Store поверх gorm-подключения
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:    db,
		users: &userRepository{db: db},
		ledgr: &authorizationRepository{db: db},
	}
}

func (s *gormStore) Users() UserRepository {
	return s.users
}

func (s *gormStore) Ledger() AuthorizationRepository {
	return s.ledgr
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
