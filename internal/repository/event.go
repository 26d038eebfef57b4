package repository

import (
	"context"
	"errors"

	"volunteerhub/internal/cache"
	"volunteerhub/internal/models"

	"gorm.io/gorm"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	// RegisterVolunteer inserts the history row and increments the event's
	// volunteer counter in one transaction. The increment is conditional on
	// remaining capacity, so concurrent registrations for the last slot
	// cannot both succeed.
	RegisterVolunteer(ctx context.Context, h *models.VolunteerHistory) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a new EventRepository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	key := cache.EventKey(id)

	err := cache.Aside(ctx, key, &event, cache.EventTTL, func() error {
		if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Event", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := cache.Aside(ctx, cache.EventsAllKey, &events, cache.EventListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("date").Find(&events).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.EventsAllKey)
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Event{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, id)
	return nil
}

func (r *eventRepository) RegisterVolunteer(ctx context.Context, h *models.VolunteerHistory) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Event{}).
			Where("id = ? AND current_volunteers < max_volunteers", h.EventID).
			UpdateColumn("current_volunteers", gorm.Expr("current_volunteers + 1"))
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewConflictError("Event is already at full capacity")
		}
		if err := tx.Create(h).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Volunteer already matched to this event")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidateEvent(ctx, h.EventID)
	return nil
}
