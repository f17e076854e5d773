package services

import (
	"context"
	"errors"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
)

// FriendService поддерживает граф друзей.
// Инварианты:
//   - дружба симметрична: A в друзьях B <=> B в друзьях A;
//   - заявка односторонняя: A в FriendRequests у B значит "A просится к B",
//     принятая заявка снимается, а не хранится рядом с дружбой.
type FriendService interface {
	SendFriendRequest(ctx context.Context, fromUsername, toUsername string) error
	AddFriend(ctx context.Context, username, friendUsername string) error
	RemoveFriend(ctx context.Context, username, friendUsername string) error
	GetFriends(ctx context.Context, username string) ([]*models.User, error)
	GetFriendRequests(ctx context.Context, username string) ([]*models.User, error)
}

type FriendServiceImpl struct {
	store repositories.Store
}

func NewFriendService(store repositories.Store) FriendService {
	return &FriendServiceImpl{store: store}
}

// resolveUser переводит username в запись, отдавая доменные ошибки
func resolveUser(ctx context.Context, st repositories.Store, username string) (*models.User, error) {
	user, err := st.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return user, nil
}

// serviceError пропускает доменные ошибки как есть,
// остальное заворачивает в ошибку хранилища
func serviceError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.DatabaseError(err)
}

// SendFriendRequest добавляет входящую заявку получателю.
// Отправитель не меняется: заявки хранятся только на стороне получателя.
func (s *FriendServiceImpl) SendFriendRequest(ctx context.Context, fromUsername, toUsername string) error {
	if fromUsername == "" || toUsername == "" {
		return appErrors.ErrInvalidArgument
	}

	return serviceError(s.store.Transaction(ctx, func(tx repositories.Store) error {
		from, err := resolveUser(ctx, tx, fromUsername)
		if err != nil {
			return err
		}
		to, err := resolveUser(ctx, tx, toUsername)
		if err != nil {
			return err
		}

		if to.HasFriendRequest(from.ID) {
			return appErrors.ErrAlreadyRequested
		}
		return tx.Users().AddFriendRequest(ctx, to, from)
	}))
}

// AddFriend устанавливает дружбу и гасит встречную заявку, если она была.
// Проверка и обе записи идут в одной транзакции: половинной дружбы не бывает,
// конкурирующее изменение другой стороны не затирается устаревшим чтением.
func (s *FriendServiceImpl) AddFriend(ctx context.Context, username, friendUsername string) error {
	if username == "" || friendUsername == "" {
		return appErrors.ErrInvalidArgument
	}

	return serviceError(s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := resolveUser(ctx, tx, username)
		if err != nil {
			return err
		}
		friend, err := resolveUser(ctx, tx, friendUsername)
		if err != nil {
			return err
		}

		if user.HasFriend(friend.ID) {
			return appErrors.ErrAlreadyFriends
		}

		if err := tx.Users().AddFriend(ctx, user, friend); err != nil {
			return err
		}
		if err := tx.Users().AddFriend(ctx, friend, user); err != nil {
			return err
		}
		if user.HasFriendRequest(friend.ID) {
			return tx.Users().RemoveFriendRequest(ctx, user, friend)
		}
		return nil
	}))
}

// RemoveFriend разрывает дружбу с обеих сторон в одной транзакции
func (s *FriendServiceImpl) RemoveFriend(ctx context.Context, username, friendUsername string) error {
	if username == "" || friendUsername == "" {
		return appErrors.ErrInvalidArgument
	}

	return serviceError(s.store.Transaction(ctx, func(tx repositories.Store) error {
		user, err := resolveUser(ctx, tx, username)
		if err != nil {
			return err
		}
		friend, err := resolveUser(ctx, tx, friendUsername)
		if err != nil {
			return err
		}

		if !user.HasFriend(friend.ID) {
			return appErrors.ErrNotFriends
		}

		if err := tx.Users().RemoveFriend(ctx, user, friend); err != nil {
			return err
		}
		return tx.Users().RemoveFriend(ctx, friend, user)
	}))
}

func (s *FriendServiceImpl) GetFriends(ctx context.Context, username string) ([]*models.User, error) {
	if username == "" {
		return nil, appErrors.ErrInvalidArgument
	}

	user, err := resolveUser(ctx, s.store, username)
	if err != nil {
		return nil, err
	}

	friends := user.Friends
	if friends == nil {
		friends = make([]*models.User, 0)
	}
	return friends, nil
}

func (s *FriendServiceImpl) GetFriendRequests(ctx context.Context, username string) ([]*models.User, error) {
	if username == "" {
		return nil, appErrors.ErrInvalidArgument
	}

	user, err := resolveUser(ctx, s.store, username)
	if err != nil {
		return nil, err
	}

	requests := user.FriendRequests
	if requests == nil {
		requests = make([]*models.User, 0)
	}
	return requests, nil
}
