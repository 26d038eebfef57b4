package seed

import (
	"fmt"

	"volunteerhub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much fixture data Run generates.
type Options struct {
	Volunteers    int
	Events        int
	AdminPassword string
}

// Run seeds reference data, an admin account, and fake volunteers/events.
// It is intended for development databases only.
func Run(db *gorm.DB, opts Options) error {
	if err := States(db); err != nil {
		return fmt.Errorf("seed states: %w", err)
	}

	if opts.AdminPassword != "" {
		if err := ensureAdmin(db, opts.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	for i := 0; i < opts.Volunteers; i++ {
		if err := db.Create(FakeVolunteer()).Error; err != nil {
			return fmt.Errorf("seed volunteer: %w", err)
		}
	}
	for i := 0; i < opts.Events; i++ {
		if err := db.Create(FakeEvent()).Error; err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}
	return nil
}

func ensureAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username: "admin",
		Email:    "admin@volunteerhub.local",
		Password: string(hash),
		Role:     models.UserRoleAdmin,
		FullName: "Site Administrator",
	}
	return db.Create(admin).Error
}
