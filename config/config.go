package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nutrifacts/models"
)

// Config is the process configuration, read from the environment (a .env
// file is loaded by main before this runs).
type Config struct {
	Port      string
	Language  string
	LogLevel  string
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr string
	CacheTTL  time.Duration
}

var DB *gorm.DB

// Load reads the configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LANGUAGE", "EN")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("CACHE_TTL", "10m")

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	return &Config{
		Port:       v.GetString("PORT"),
		Language:   v.GetString("LANGUAGE"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		JWTSecret:  v.GetString("JWT_SECRET"),
		DBHost:     v.GetString("DB_HOST"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBPort:     v.GetString("DB_PORT"),
		RedisAddr:  v.GetString("REDIS_ADDR"),
		CacheTTL:   ttl,
	}, nil
}

// InitDB connects to Postgres and migrates the catalog schema.
func InitDB(cfg *Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Food{},
		&models.Nutrient{},
		&models.FoodNutrient{},
		&models.Property{},
		&models.NutrientProperty{},
		&models.Recommendation{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	DB = db
	return nil
}
