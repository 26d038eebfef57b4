package repository

import (
	"context"
	"errors"

	"volunteerhub/internal/models"

	"gorm.io/gorm"
)

// HistoryRepository defines persistence operations for volunteer history rows.
type HistoryRepository interface {
	GetByUserAndEvent(ctx context.Context, userID, eventID uint) (*models.VolunteerHistory, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.VolunteerHistory, error)
	ListByUser(ctx context.Context, userID uint) ([]models.VolunteerHistory, error)
	ListAll(ctx context.Context) ([]models.VolunteerHistory, error)
	Update(ctx context.Context, h *models.VolunteerHistory) error
	// DeleteByEvent is the cleanup routine invoked on event deletion.
	DeleteByEvent(ctx context.Context, eventID uint) error
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository returns a new HistoryRepository implementation.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) GetByUserAndEvent(ctx context.Context, userID, eventID uint) (*models.VolunteerHistory, error) {
	var h models.VolunteerHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &h, nil
}

func (r *historyRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.VolunteerHistory, error) {
	var rows []models.VolunteerHistory
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Find(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

func (r *historyRepository) ListByUser(ctx context.Context, userID uint) ([]models.VolunteerHistory, error) {
	var rows []models.VolunteerHistory
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("participation_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

func (r *historyRepository) ListAll(ctx context.Context) ([]models.VolunteerHistory, error) {
	var rows []models.VolunteerHistory
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Order("participation_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

func (r *historyRepository) Update(ctx context.Context, h *models.VolunteerHistory) error {
	if err := r.db.WithContext(ctx).Save(h).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *historyRepository) DeleteByEvent(ctx context.Context, eventID uint) error {
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.VolunteerHistory{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
