// Package seed populates the database with reference data and fake
// development fixtures.
package seed

import (
	_ "embed"
	"fmt"

	"volunteerhub/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed states.yml
var statesYAML []byte

type statesFile struct {
	States []struct {
		Code   string `yaml:"code"`
		Name   string `yaml:"name"`
		Region string `yaml:"region"`
	} `yaml:"states"`
}

// LoadStates parses the embedded state reference data.
func LoadStates() ([]models.State, error) {
	var file statesFile
	if err := yaml.Unmarshal(statesYAML, &file); err != nil {
		return nil, fmt.Errorf("parse embedded states data: %w", err)
	}

	states := make([]models.State, 0, len(file.States))
	for _, s := range file.States {
		states = append(states, models.State{
			Code:   s.Code,
			Name:   s.Name,
			Region: s.Region,
		})
	}
	return states, nil
}

// States upserts the state lookup table. Safe to run repeatedly.
func States(db *gorm.DB) error {
	states, err := LoadStates()
	if err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&states).Error
}
