package configs

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"4101"`
	SocketPort  string `env:"SOCKET_PORT" env-default:"8000"`
	AllowOrigin string `env:"ALLOW_ORIGIN" env-default:"http://localhost:3000"`
	JWTSecret   string `env:"JWT_SECRET" env-default:"secret"`
	Store       string `env:"STORE" env-default:"memory"` // memory | postgres
	Locker      string `env:"LOCKER" env-default:"local"` // local | redis
	BoardFile   string `env:"BOARD_FILE"`
	Postgres    Postgres
	Redis       Redis
}

type Postgres struct {
	User     string `env:"DB_USER" env-default:"postgres"`
	Addr     string `env:"DB_ADDR" env-default:"localhost:5432"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME" env-default:"monopoly"`
}

type Redis struct {
	URL     string `env:"REDIS_URL" env-default:"localhost:6379"`
	LockTTL int    `env:"REDIS_LOCK_TTL_MS" env-default:"5000"`
}

// MustLoad reads the configuration from the environment (and .env, if
// present) and panics when it cannot.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	return cfg, nil
}
