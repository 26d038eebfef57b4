// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/validation"
)

// ProfileUpdate carries the mutable profile fields. Credentials and role
// are not editable through this path.
type ProfileUpdate struct {
	FullName     string   `json:"full_name" validate:"required,max=100"`
	Address1     string   `json:"address1" validate:"required,max=120"`
	Address2     string   `json:"address2" validate:"max=120"`
	City         string   `json:"city" validate:"required,max=80"`
	StateCode    string   `json:"state_code" validate:"required,len=2"`
	Zip          string   `json:"zip" validate:"required,min=5,max=10"`
	Skills       []string `json:"skills" validate:"required,min=1"`
	Preferences  string   `json:"preferences"`
	Availability []string `json:"availability"`
}

// UserService handles volunteer profile reads and updates.
type UserService struct {
	users  repository.UserRepository
	states repository.StateRepository
}

// NewUserService returns a new UserService.
func NewUserService(users repository.UserRepository, states repository.StateRepository) *UserService {
	return &UserService{users: users, states: states}
}

// GetProfile returns the full user record for the given id.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile validates and applies a profile update. The state code must
// exist in the lookup table and every availability entry must be an ISO date.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	if err := validation.Struct(upd); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDateList(upd.Availability); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	state, err := s.states.GetByCode(ctx, upd.StateCode)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, models.NewValidationError("Unknown state code: " + upd.StateCode)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = upd.FullName
	user.Address1 = upd.Address1
	user.Address2 = upd.Address2
	user.City = upd.City
	user.StateCode = upd.StateCode
	user.Zip = upd.Zip
	user.Skills = upd.Skills
	user.Preferences = upd.Preferences
	user.Availability = upd.Availability

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
