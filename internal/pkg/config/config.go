package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// MediaBaseURL prefixes stored file paths when serializing medical
	// record attachments, e.g. https://cdn.example.com/media.
	MediaBaseURL string `env:"MEDIA_BASE_URL, default=/media"`

	JWT      JWTConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Password PasswordConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL,  default=30m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=24h"`
}

type PostgresConfig struct {
	URL           string `env:"DATABASE_URL, default=postgres://localhost:5432/patient_portal"`
	MaxConns      int32  `env:"DATABASE_MAX_CONNS, default=10"`
	MinConns      int32  `env:"DATABASE_MIN_CONNS, default=2"`
	MigrationsDir string `env:"MIGRATIONS_DIR, default=migrations"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type PasswordConfig struct {
	// BcryptCost of 0 selects the library default.
	BcryptCost int `env:"BCRYPT_COST, default=0"`
	// CommonPasswordsFile optionally extends the built-in common-password
	// list, one password per line.
	CommonPasswordsFile string `env:"COMMON_PASSWORDS_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
