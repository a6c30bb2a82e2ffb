package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"aquarium-tank-api/internal/core/auth"
	"aquarium-tank-api/internal/core/config"
	"aquarium-tank-api/internal/core/database"
	"aquarium-tank-api/internal/core/logger"
	"aquarium-tank-api/internal/core/server"
	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/repo"
	"aquarium-tank-api/internal/repo/memory"
	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/handler"
	"aquarium-tank-api/internal/transport/http/middleware"
	"aquarium-tank-api/internal/transport/http/router"
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
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("api stopped with error", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	log.Info("api stopped gracefully")
}

type repos struct {
	users   domain.UserRepository
	tanks   domain.TankRepository
	fish    domain.FishRepository
	species domain.FishSpeciesRepository
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	rs, closeDB, err := openRepos(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	verifier, err := tokenVerifier(ctx, cfg.Supabase)
	if err != nil {
		return err
	}
	idp := auth.NewSupabase(auth.SupabaseConfig{
		URL:     cfg.Supabase.URL,
		AnonKey: cfg.Supabase.AnonKey,
		Timeout: time.Duration(cfg.Supabase.TimeoutSec) * time.Second,
	}, verifier)

	v := service.NewValidator()
	authSvc := service.NewAuthService(idp, rs.users, v)
	guard := middleware.RequireUser(authSvc, log)

	reg := router.NewRegistry(
		handler.NewAuthHandler(authSvc, guard, log),
		handler.NewTankHandler(service.NewTankService(rs.tanks, rs.fish, v), guard, log),
		handler.NewFishHandler(service.NewFishService(rs.fish, rs.tanks, v), guard, log),
		handler.NewFishSpeciesHandler(service.NewFishSpeciesService(rs.species, v), guard, log),
	)
	r := router.NewAPIEngine(log, cfg.App.HTTP, reg)

	srv := server.FromConfig(cfg.App.HTTP, r)
	log.Info("api starting",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("db", cfg.DB.Driver),
		zap.Bool("local_token_check", verifier != nil),
	)
	return server.Run(ctx, srv, log)
}

// openRepos returns the repositories for db.driver and a func releasing the
// connection pool.
func openRepos(cfg *config.Config, log *zap.Logger) (repos, func(), error) {
	if cfg.DB.Driver == "memory" {
		log.Warn("using in-memory storage; data is lost on restart")
		return repos{
			users:   memory.NewUserRepo(),
			tanks:   memory.NewTankRepo(),
			fish:    memory.NewFishRepo(),
			species: memory.NewFishSpeciesRepo(),
		}, func() {}, nil
	}

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
		return repos{}, nil, fmt.Errorf("open db: %w", err)
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return repos{}, nil, fmt.Errorf("automigrate: %w", err)
		}
		log.Info("automigrate done")
	}

	return repos{
		users:   repo.NewUserRepo(db),
		tanks:   repo.NewTankRepo(db),
		fish:    repo.NewFishRepo(db),
		species: repo.NewFishSpeciesRepo(db),
	}, closer(db, log), nil
}

func closer(db *gorm.DB, log *zap.Logger) func() {
	return func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn("close db", zap.Error(err))
		}
	}
}

// tokenVerifier prefers the project's JWKS, then the shared HS256 secret. A
// nil verifier makes every token check a call to the provider.
func tokenVerifier(ctx context.Context, c config.Supabase) (auth.TokenVerifier, error) {
	switch {
	case c.JWKSURL != "":
		v, err := auth.NewJWKSVerifier(ctx, c.JWKSURL, c.Issuer)
		if err != nil {
			return nil, fmt.Errorf("jwks: %w", err)
		}
		return v, nil
	case c.JWTSecret != "":
		return &auth.JWTer{Secret: []byte(c.JWTSecret), Issuer: c.Issuer}, nil
	}
	return nil, nil
}
