package main

import (
	"flag"
	"os"

	"volunteerhub/internal/config"
	"volunteerhub/internal/database"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/seed"
)

func main() {
	volunteers := flag.Int("volunteers", 25, "number of fake volunteers to create")
	events := flag.Int("events", 10, "number of fake events to create")
	adminPassword := flag.String("admin-password", "", "create an admin account with this password")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		middleware.Logger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		middleware.Logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(db, seed.Options{
		Volunteers:    *volunteers,
		Events:        *events,
		AdminPassword: *adminPassword,
	}); err != nil {
		middleware.Logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	middleware.Logger.Info("seeding complete",
		"volunteers", *volunteers, "events", *events)
}
