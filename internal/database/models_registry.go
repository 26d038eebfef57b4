package database

import "volunteerhub/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Event{},
		&models.VolunteerHistory{},
		&models.Notification{},
		&models.State{},
	}
}
