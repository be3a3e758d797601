package main

import (
	"context"

	"reachout/config"
	"reachout/database"
	"reachout/middleware"
	"reachout/repository"
	authService "reachout/services/auth"
	"reachout/utils"

	"github.com/rs/zerolog/log"
)

// Creates the first administrator when the admin_users table is empty.
func main() {
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.LogLevel)
	database.ConnectDb()

	auth := authService.NewService(
		repository.NewAdminRepository(database.Database.Db),
		middleware.NewTokenManager(cfg.JWTKey, cfg.TokenTTL),
		cfg.SaltRound,
	)

	if cfg.SetupAdminPassword == "admin123" {
		log.Warn().Msg("Using the default admin password. Change it after first login!")
	}

	admin, created, err := auth.Bootstrap(context.Background(), cfg.SetupAdminEmail, cfg.SetupAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Setup failed")
	}
	if !created {
		log.Info().Msg("Admin user already exists")
		return
	}

	log.Info().Uint("id", admin.ID).Str("email", admin.Email).Msg("Admin user created successfully")
}
