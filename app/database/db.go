package database

import (
	"fmt"

	"github.com/joefazee/atlas/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	// import necessary for gorm to recognize the postgres driver
	_ "github.com/lib/pq"
)

type Config struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME"`
	UseSSL   bool   `env:"DB_SSL_MODE"`
	LogQuery bool   `env:"DB_LOG_QUERY"`
}

func (c *Config) Validate() error {
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	SSLMode := "disable"
	if c.UseSSL {
		SSLMode = "require"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, SSLMode)

	cfg := &gorm.Config{}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	// This handles the driver registration internally
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(1 * 60 * 60)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate brings the schema up to date. The functional unique index backs
// the case-insensitive identity guarantee on country names.
func Migrate(db *gorm.DB) error {
	// The countries table defaults its primary key to uuid_generate_v4().
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}

	if err := db.AutoMigrate(&models.Country{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_countries_lower_name ON countries (lower(name))`,
	).Error
	if err != nil {
		return fmt.Errorf("failed to create name index: %w", err)
	}

	return nil
}
