package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"planner-recurrence/internal/clock"
	"planner-recurrence/internal/config"
	"planner-recurrence/internal/repository"
	"planner-recurrence/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	ruleRepo := repository.NewRuleRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	scheduler := service.NewSchedulerService(time.UTC)
	engine := service.NewRecurrenceService(ruleRepo, taskRepo, scheduler, clock.Real{}, cfg.SweepInterval, log)

	if err := engine.Start(); err != nil {
		log.Fatal().Err(err).Msg("start recurrence engine")
	}
	log.Info().Str("db", cfg.DatabaseURL).Msg("recurrence worker started")

	<-ctx.Done()
	engine.Stop()
	log.Info().Msg("shutdown complete")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
