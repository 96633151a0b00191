package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"         env:"HTTP_ADDR"         env-default:":8080"`
	DatabaseURL     string        `yaml:"database_url"      env:"DATABASE_URL"`
	InternalToken   string        `yaml:"internal_token"    env:"INTERNAL_TOKEN"`
	CORSAllowOrigin string        `yaml:"cors_allow_origin" env:"CORS_ALLOW_ORIGIN" env-default:"*"`
	AppEnv          string        `yaml:"app_env"           env:"APP_ENV"           env-default:"development"`
	LogLevel        string        `yaml:"log_level"         env:"LOG_LEVEL"         env-default:"info"`
	PDFFontDir      string        `yaml:"pdf_font_dir"      env:"PDF_FONT_DIR"`
	SessionTTL      time.Duration `yaml:"session_ttl"       env:"EDITOR_SESSION_TTL" env-default:"2h"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"  env:"MIGRATE_ON_START"  env-default:"true"`

	DB DBConfig `yaml:"db"`
}

type DBConfig struct {
	MaxConns        int32         `yaml:"max_conns"          env:"DB_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DB_MIN_CONNS"          env-default:"2"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
}

// Load reads CONFIG_PATH (default ./config.yaml) when present and applies
// environment variables on top.
func Load() (Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("missing env DATABASE_URL"))
	}
	if c.InternalToken == "" {
		errs = append(errs, errors.New("missing env INTERNAL_TOKEN"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("EDITOR_SESSION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) Production() bool { return c.AppEnv == "production" }

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	return cfg
}
