// main.go
package main

import (
	"log"

	"safari-njema/cmd"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/ledger"
	"safari-njema/internal/wire"
	"safari-njema/pkg/database"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the selected store driver
	var repos *repository.Repository
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos = repository.NewMemoryRepository(logger)
	}

	// Seat ledger lives in process in both drivers; holds do not survive a
	// restart, which matches the non-persistent reservation model.
	seats := ledger.New(config.Booking.HoldDuration, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, seats, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
