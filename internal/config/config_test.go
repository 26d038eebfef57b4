package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProdConfig() *Config {
	return &Config{
		Port:       "8080",
		JWTSecret:  "a-production-grade-secret-of-enough-length",
		DBPassword: "s3cure-db-password",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestValidateProductionRejectsDefaultSecret(t *testing.T) {
	cfg := validProdConfig()
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRejectsShortSecret(t *testing.T) {
	cfg := validProdConfig()
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRejectsWeakDBPassword(t *testing.T) {
	cfg := validProdConfig()
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionOK(t *testing.T) {
	assert.NoError(t, validProdConfig().Validate())
}

func TestValidateRequiresPortAndSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "x"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: "8080"}
	assert.Error(t, cfg.Validate())
}

func TestValidateDevelopmentToleratesDefaults(t *testing.T) {
	cfg := &Config{
		Port:      "8080",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "development",
	}
	assert.NoError(t, cfg.Validate())
}
