package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"

	"cleaning-app/reviews-seeder/internal/models"
	"cleaning-app/reviews-seeder/utils"
	"cleaning-app/reviews-seeder/utils/mongodb"
)

// Config holds all application configuration
type Config struct {
	MongoDB mongodb.Config
	Seed    SeedConfig
	Redis   utils.RedisConfig
}

// SeedConfig holds the seeding target
type SeedConfig struct {
	Collection string `env:"SEED_COLLECTION" envDefault:"reviews" validate:"required"`
}

// NewConfig creates a new Config. With an empty environment it targets
// mongodb://localhost:27017, database reviewsdb, collection reviews.
func NewConfig() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := utils.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidConfig, strings.Join(utils.ParseErrors(err), "; "))
	}

	return cfg, nil
}
