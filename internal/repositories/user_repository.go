package repositories

import (
	"context"
	"errors"

	"quicktweet_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// withRelations подгружает оба набора связей, сервисы рассчитывают на их наличие
func (r *userRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Friends").
		Preload("FriendRequests")
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.withRelations(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.withRelations(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.withRelations(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0)
	if err := r.withRelations(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByInterestsIntersecting(ctx context.Context, interests []string) ([]*models.User, error) {
	users := make([]*models.User, 0)
	if len(interests) == 0 {
		return users, nil
	}

	// jsonb-массив интересов: подходит любой пользователь,
	// у которого есть хотя бы один из запрошенных тегов
	cond := r.db.Where(datatypes.JSONArrayQuery("interests").Contains(interests[0]))
	for _, interest := range interests[1:] {
		cond = cond.Or(datatypes.JSONArrayQuery("interests").Contains(interest))
	}

	if err := r.withRelations(ctx).Where(cond).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByUsernameSubstring(ctx context.Context, query string) ([]*models.User, error) {
	users := make([]*models.User, 0)
	if err := r.withRelations(ctx).
		Where("username ILIKE ?", "%"+query+"%").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	// Только колонки самой записи, связи меняются отдельными операциями
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	// Select(Associations) чистит собственные строки join-таблиц записи;
	// обратные ссылки, которыми владеют другие пользователи, снимает сервис
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(user).Error
}

func (r *userRepository) AddFriend(ctx context.Context, user, friend *models.User) error {
	return r.db.WithContext(ctx).Model(user).Omit("Friends.*").Association("Friends").Append(friend)
}

func (r *userRepository) RemoveFriend(ctx context.Context, user, friend *models.User) error {
	return r.db.WithContext(ctx).Model(user).Association("Friends").Delete(friend)
}

func (r *userRepository) AddFriendRequest(ctx context.Context, user, sender *models.User) error {
	return r.db.WithContext(ctx).Model(user).Omit("FriendRequests.*").Association("FriendRequests").Append(sender)
}

func (r *userRepository) RemoveFriendRequest(ctx context.Context, user, sender *models.User) error {
	return r.db.WithContext(ctx).Model(user).Association("FriendRequests").Delete(sender)
}
