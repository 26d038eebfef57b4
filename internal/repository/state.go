package repository

import (
	"context"
	"errors"

	"volunteerhub/internal/cache"
	"volunteerhub/internal/models"

	"gorm.io/gorm"
)

// StateRepository defines read access to the static state lookup table.
type StateRepository interface {
	List(ctx context.Context) ([]models.State, error)
	GetByCode(ctx context.Context, code string) (*models.State, error)
}

type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository returns a new StateRepository implementation.
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) List(ctx context.Context) ([]models.State, error) {
	var states []models.State
	err := cache.Aside(ctx, cache.StatesKey, &states, cache.StatesTTL, func() error {
		if err := r.db.WithContext(ctx).Order("code").Find(&states).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (r *stateRepository) GetByCode(ctx context.Context, code string) (*models.State, error) {
	var state models.State
	if err := r.db.WithContext(ctx).First(&state, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &state, nil
}
