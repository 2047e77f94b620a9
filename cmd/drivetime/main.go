package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/drivetime/internal/cli"
	"github.com/alexanderramin/drivetime/internal/db"
	"github.com/alexanderramin/drivetime/internal/repository"
	"github.com/alexanderramin/drivetime/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.drivetime/drivetime.db
	dbPath := os.Getenv("DRIVETIME_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".drivetime", "drivetime.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	activityRepo := repository.NewSQLiteActivityRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	settingsSvc := service.NewSettingsService(settingsRepo)

	app := &cli.App{
		Activities: service.NewActivityService(activityRepo),
		Settings:   settingsSvc,
		Compliance: service.NewComplianceService(activityRepo, settingsSvc),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
