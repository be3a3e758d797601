package database

import (
	"context"
	"fmt"
	"time"

	"reachout/config"
	"reachout/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance used by main and the scripts
var Database DbInstance

// ConnectDb opens the configured database, runs migrations and stores the
// handle in Database. It exits the process on failure.
func ConnectDb() {
	db, err := Open(config.AppConfig)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.AppConfig.DBDriver).Msg("Failed to connect to database")
	}

	Database = DbInstance{Db: db}
	log.Info().Str("driver", config.AppConfig.DBDriver).Msg("Connected to database")
}

// Dialector picks the gorm dialector for cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// Open connects, configures the pool and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// every connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	log.Debug().Msg("Running migrations")

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Course{},
		&models.Certificate{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Debug().Msg("Migrations completed successfully")
	return nil
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func newGormLogger() logger.Interface {
	gormLog := log.With().Str("component", "gorm").Logger()
	return logger.New(&gormLog, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
