package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"reachout/client"
	"reachout/config"
	"reachout/utils"

	"github.com/rs/zerolog/log"
)

// Probes a running server: health, public API and the login endpoint.
func main() {
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !checkServer(ctx, client.New(cfg.ApiURL)) {
		os.Exit(1)
	}
}

func checkServer(ctx context.Context, api *client.Client) bool {
	log.Info().Msg("1. Checking health endpoint...")
	health, err := api.Health(ctx)
	if err != nil {
		if client.IsConnectionRefused(err) {
			log.Error().Msg("Server is not running")
		} else {
			log.Error().Err(err).Msg("Server check failed")
		}
		return false
	}
	log.Info().Str("status", health.Status).Str("database", health.Database).Msg("Server is running")

	log.Info().Msg("2. Checking API routes...")
	if courses, err := api.ListCourses(ctx); err != nil {
		log.Warn().Err(err).Msg("API routes check failed")
	} else {
		log.Info().Int("courses", len(courses)).Msg("API routes are accessible")
	}

	log.Info().Msg("3. Checking auth endpoint...")
	_, _, err = api.Login(ctx, "check@example.com", "not-a-real-password")
	switch status := client.StatusCode(err); {
	case status == http.StatusBadRequest, status == http.StatusUnauthorized:
		log.Info().Msg("Server is responding to auth requests")
	case status >= http.StatusInternalServerError:
		log.Warn().Msg("Server error on login, check JWT_SECRET and database settings")
		return false
	case err != nil:
		log.Warn().Err(err).Msg("Auth endpoint check failed")
		return false
	}

	return true
}
