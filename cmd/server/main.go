package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"expensetracker/internal/api"
	"expensetracker/internal/config"
	"expensetracker/internal/infrastructure/database"
	"expensetracker/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development keeps the DSN in a .env file; absence is fine.
	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewMySQLConnection(conf.Database.DSN)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := repository.NewExpenseRepo(db)

	r := gin.Default()
	api.RegisterRoutes(r, repo)

	slog.Info("expense tracker listening", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
