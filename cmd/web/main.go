package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "github.com/Code0plux/Website/internal/http"
	"github.com/Code0plux/Website/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to configure storage: %v", err)
	}
	logger.Info("storage_ready", slog.String("driver", store.Driver))

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := apphttp.NewRouter(logger, db, store)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
