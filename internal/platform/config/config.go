package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr               string `env:"APP_ADDR" envDefault:":8080"`
	Environment        string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL        string `env:"DATABASE_URL"`
	JWTSecret          string `env:"JWT_SECRET"`
	TokenTTLHours      int    `env:"TOKEN_TTL_HOURS" envDefault:"12"`
	AdminPassword      string `env:"ADMIN_PASSWORD"`
	RunMigrations      bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
	RunSeed            bool   `env:"RUN_SEED" envDefault:"false"`
	MigrationsDir      string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	MaxBodyBytes       int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	LabelSizePixels    int    `env:"LABEL_SIZE_PIXELS" envDefault:"256"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.AdminPassword) == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.LabelSizePixels < 64 || c.LabelSizePixels > 2048 {
		return fmt.Errorf("LABEL_SIZE_PIXELS must be between 64 and 2048")
	}
	return nil
}
