// main.go
package main

import (
	"context"
	"log"

	"luluspa-booking/cmd"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/payos"
	"luluspa-booking/internal/wire"
	"luluspa-booking/pkg/cache"
	"luluspa-booking/pkg/database"
	"luluspa-booking/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the booking store
	db, err := database.InitDB(config.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close(context.Background())

	logger.Info("Database connected successfully")

	// Connect to the cart store
	rdb, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Redis connected successfully")

	// Initialize all repositories and the payment provider client
	repos := repository.NewRepository(db, rdb, config, logger)
	provider := payos.NewClient(config.PayOS)

	// Wire all dependencies
	app := wire.Wiring(repos, provider, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
