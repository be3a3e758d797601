package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"reachout/config"
	"reachout/database"
	"reachout/repository"
	"reachout/server"
	analyticsService "reachout/services/analytics"
	"reachout/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.LogLevel)
	database.ConnectDb()

	db := database.Database.Db
	app := server.New(cfg, db, server.Options{AccessLog: true})

	var scheduler *cron.Cron
	if cfg.ReportCron != "" {
		job := &utils.ReportJob{
			Analytics: analyticsService.NewService(repository.NewCourseRepository(db), repository.NewCertificateRepository(db)),
			Admins:    repository.NewAdminRepository(db),
			Mailer:    utils.NewMailer(cfg),
		}
		var err error
		if scheduler, err = utils.InitializeReportScheduler(cfg.ReportCron, job); err != nil {
			log.Fatal().Err(err).Msg("Failed to start report scheduler")
		}
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server is running")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	if scheduler != nil {
		// wait for a running report before closing the pool
		<-scheduler.Stop().Done()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
