package repositories

import (
	"context"
	"errors"

	"quicktweet_backend/internal/models"

	"gorm.io/gorm"
)

type authorizationRepository struct {
	db *gorm.DB
}

func (r *authorizationRepository) Get(ctx context.Context) (*models.AuthorizationLedger, error) {
	var ledger models.AuthorizationLedger
	err := r.db.WithContext(ctx).
		Preload("PendingRequests").
		First(&ledger, models.LedgerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

func (r *authorizationRepository) Ensure(ctx context.Context) (*models.AuthorizationLedger, error) {
	ledger, err := r.Get(ctx)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, ErrLedgerNotFound) {
		return nil, err
	}

	ledger = &models.AuthorizationLedger{ID: models.LedgerID}
	if err := r.db.WithContext(ctx).Create(ledger).Error; err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *authorizationRepository) AddPendingRequest(ctx context.Context, user *models.User) error {
	ledger := &models.AuthorizationLedger{ID: models.LedgerID}
	return r.db.WithContext(ctx).Model(ledger).Omit("PendingRequests.*").Association("PendingRequests").Append(user)
}

func (r *authorizationRepository) RemovePendingRequest(ctx context.Context, user *models.User) error {
	ledger := &models.AuthorizationLedger{ID: models.LedgerID}
	return r.db.WithContext(ctx).Model(ledger).Association("PendingRequests").Delete(user)
}
