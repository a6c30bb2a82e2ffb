package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/core/config"
	"aquarium-tank-api/internal/core/database"
	"aquarium-tank-api/internal/core/logger"
	"aquarium-tank-api/internal/repo"
	"aquarium-tank-api/internal/seed"
	"aquarium-tank-api/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()

	if cfg.DB.Driver == "memory" {
		log.Fatal("seeding needs a SQL driver", zap.String("driver", cfg.DB.Driver))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, log)
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("automigrate", zap.Error(err))
	}

	svc := service.NewFishSpeciesService(repo.NewFishSpeciesRepo(db), service.NewValidator())
	res, err := seed.SeedSpecies(ctx, svc, log)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err), zap.Int("created", res.Created))
	}
	log.Info("seed done", zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
}
