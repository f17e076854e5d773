package services_test

import (
	"context"
	"strings"

	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
)

// memStore - хранилище в памяти для юнит-тестов сервисов.
// Связи хранятся каноничными множествами id, как join-таблицы в БД:
// одна запись множества - одна строка таблицы, каждая операция
// репозитория меняет ровно одну сторону.
type memStore struct {
	users  map[uint]*memUser
	nextID uint

	ledgerExists  bool
	ledgerPending map[uint]bool
}

type memUser struct {
	user       models.User
	friendIDs  map[uint]bool // симметрия поддерживается сервисом, не хранилищем
	requestIDs map[uint]bool // id отправителей входящих заявок
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uint]*memUser),
		nextID:        0,
		ledgerExists:  true,
		ledgerPending: make(map[uint]bool),
	}
}

func (s *memStore) Users() repositories.UserRepository {
	return (*memUserRepo)(s)
}

func (s *memStore) Ledger() repositories.AuthorizationRepository {
	return (*memLedgerRepo)(s)
}

// Transaction выполняет fn и откатывает все изменения при ошибке,
// как это сделала бы транзакция БД
func (s *memStore) Transaction(ctx context.Context, fn func(repositories.Store) error) error {
	snapshot := s.clone()
	if err := fn(s); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		users:         make(map[uint]*memUser, len(s.users)),
		nextID:        s.nextID,
		ledgerExists:  s.ledgerExists,
		ledgerPending: make(map[uint]bool, len(s.ledgerPending)),
	}
	for id, rec := range s.users {
		c.users[id] = &memUser{
			user:       rec.user,
			friendIDs:  cloneSet(rec.friendIDs),
			requestIDs: cloneSet(rec.requestIDs),
		}
	}
	for id := range s.ledgerPending {
		c.ledgerPending[id] = true
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.users = from.users
	s.nextID = from.nextID
	s.ledgerExists = from.ledgerExists
	s.ledgerPending = from.ledgerPending
}

func cloneSet(set map[uint]bool) map[uint]bool {
	out := make(map[uint]bool, len(set))
	for k := range set {
		out[k] = true
	}
	return out
}

// materialize собирает модель с загруженными связями, как Preload в gorm
func (s *memStore) materialize(rec *memUser) *models.User {
	u := rec.user
	u.Friends = make([]*models.User, 0, len(rec.friendIDs))
	for id := range rec.friendIDs {
		if other, ok := s.users[id]; ok {
			shallow := other.user
			u.Friends = append(u.Friends, &shallow)
		}
	}
	u.FriendRequests = make([]*models.User, 0, len(rec.requestIDs))
	for id := range rec.requestIDs {
		if other, ok := s.users[id]; ok {
			shallow := other.user
			u.FriendRequests = append(u.FriendRequests, &shallow)
		}
	}
	return &u
}

type memUserRepo memStore

func (r *memUserRepo) store() *memStore { return (*memStore)(r) }

func (r *memUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	rec, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return r.store().materialize(rec), nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, rec := range r.users {
		if rec.user.Username == username {
			return r.store().materialize(rec), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, rec := range r.users {
		if rec.user.Email == email {
			return r.store().materialize(rec), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, rec := range r.users {
		out = append(out, r.store().materialize(rec))
	}
	return out, nil
}

func (r *memUserRepo) FindByInterestsIntersecting(ctx context.Context, interests []string) ([]*models.User, error) {
	out := make([]*models.User, 0)
	for _, rec := range r.users {
		for _, want := range interests {
			matched := false
			for _, have := range rec.user.Interests {
				if have == want {
					out = append(out, r.store().materialize(rec))
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}
	return out, nil
}

func (r *memUserRepo) FindByUsernameSubstring(ctx context.Context, query string) ([]*models.User, error) {
	out := make([]*models.User, 0)
	for _, rec := range r.users {
		if strings.Contains(strings.ToLower(rec.user.Username), strings.ToLower(query)) {
			out = append(out, r.store().materialize(rec))
		}
	}
	return out, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	stored.Friends = nil
	stored.FriendRequests = nil
	r.users[user.ID] = &memUser{
		user:       stored,
		friendIDs:  make(map[uint]bool),
		requestIDs: make(map[uint]bool),
	}
	return nil
}

func (r *memUserRepo) Save(ctx context.Context, user *models.User) error {
	rec, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	// Связи при сохранении не трогаются, только собственные поля
	stored := *user
	stored.Friends = nil
	stored.FriendRequests = nil
	rec.user = stored
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, user *models.User) error {
	delete(r.users, user.ID)
	return nil
}

func (r *memUserRepo) AddFriend(ctx context.Context, user, friend *models.User) error {
	rec, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	rec.friendIDs[friend.ID] = true
	return nil
}

func (r *memUserRepo) RemoveFriend(ctx context.Context, user, friend *models.User) error {
	rec, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	delete(rec.friendIDs, friend.ID)
	return nil
}

func (r *memUserRepo) AddFriendRequest(ctx context.Context, user, sender *models.User) error {
	rec, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	rec.requestIDs[sender.ID] = true
	return nil
}

func (r *memUserRepo) RemoveFriendRequest(ctx context.Context, user, sender *models.User) error {
	rec, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	delete(rec.requestIDs, sender.ID)
	return nil
}

type memLedgerRepo memStore

func (r *memLedgerRepo) store() *memStore { return (*memStore)(r) }

func (r *memLedgerRepo) Get(ctx context.Context) (*models.AuthorizationLedger, error) {
	if !r.ledgerExists {
		return nil, repositories.ErrLedgerNotFound
	}
	ledger := &models.AuthorizationLedger{
		ID:              models.LedgerID,
		PendingRequests: make([]*models.User, 0, len(r.ledgerPending)),
	}
	for id := range r.ledgerPending {
		if rec, ok := r.users[id]; ok {
			shallow := rec.user
			ledger.PendingRequests = append(ledger.PendingRequests, &shallow)
		}
	}
	return ledger, nil
}

func (r *memLedgerRepo) Ensure(ctx context.Context) (*models.AuthorizationLedger, error) {
	if !r.ledgerExists {
		r.ledgerExists = true
	}
	return r.Get(ctx)
}

func (r *memLedgerRepo) AddPendingRequest(ctx context.Context, user *models.User) error {
	if !r.ledgerExists {
		return repositories.ErrLedgerNotFound
	}
	r.ledgerPending[user.ID] = true
	return nil
}

func (r *memLedgerRepo) RemovePendingRequest(ctx context.Context, user *models.User) error {
	if !r.ledgerExists {
		return repositories.ErrLedgerNotFound
	}
	delete(r.ledgerPending, user.ID)
	return nil
}

// seedUser добавляет одобренного пользователя напрямую в хранилище
func (s *memStore) seedUser(username string, role models.UserRole) *models.User {
	s.nextID++
	u := models.User{
		Username:       username,
		Email:          username + "@test.local",
		PasswordHash:   "$2a$10$seeded.hash.not.checked.in.these.tests.00000000000000",
		Role:           role,
		PendingRequest: false,
	}
	u.ID = s.nextID
	s.users[u.ID] = &memUser{
		user:       u,
		friendIDs:  make(map[uint]bool),
		requestIDs: make(map[uint]bool),
	}
	return &u
}

// seedPendingUser добавляет неодобренный аккаунт вместе с записью в реестре
func (s *memStore) seedPendingUser(username string) *models.User {
	u := s.seedUser(username, models.UserRoleUser)
	s.users[u.ID].user.PendingRequest = true
	s.ledgerPending[u.ID] = true
	pending := s.users[u.ID].user
	return &pending
}

// friendsOf и requestsOf читают каноничное состояние для проверок
func (s *memStore) friendsOf(id uint) map[uint]bool {
	if rec, ok := s.users[id]; ok {
		return rec.friendIDs
	}
	return nil
}

func (s *memStore) requestsOf(id uint) map[uint]bool {
	if rec, ok := s.users[id]; ok {
		return rec.requestIDs
	}
	return nil
}
