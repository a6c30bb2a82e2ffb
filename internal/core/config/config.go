package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host             string
	Port             int
	ReadTimeoutSec   int      `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec  int      `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec   int      `mapstructure:"idle_timeout_sec"`
	RequestTimeoutMS int      `mapstructure:"request_timeout_ms"`
	MaxBodyBytes     int64    `mapstructure:"max_body_bytes"`
	MaxInFlight      int64    `mapstructure:"max_in_flight"`
	RateLimitRPS     float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst   int      `mapstructure:"rate_limit_burst"`
	IPRateLimitRPS   float64  `mapstructure:"ip_rate_limit_rps"`
	IPRateLimitBurst int      `mapstructure:"ip_rate_limit_burst"`
	CORSOrigins      []string `mapstructure:"cors_origins"`
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Rotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
	Compress   bool
}

type Log struct {
	Level  string
	JSON   bool
	Rotate Rotate
}

// Supabase locates the identity provider. When JWTSecret or JWKSURL is set,
// access tokens are verified locally instead of with a call to /auth/v1/user.
type Supabase struct {
	URL        string
	AnonKey    string `mapstructure:"anon_key"`
	JWTSecret  string `mapstructure:"jwt_secret"`
	JWKSURL    string `mapstructure:"jwks_url"`
	Issuer     string
	TimeoutSec int `mapstructure:"timeout_sec"`
}

// DB.Driver is one of postgres, mysql or memory.
type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	LogLevel           string `mapstructure:"log_level"`
}

type Config struct {
	App      App
	Log      Log
	DB       DB
	Supabase Supabase
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.name", "aquarium-tank-api")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.read_timeout_sec", 10)
	v.SetDefault("app.http.write_timeout_sec", 15)
	v.SetDefault("app.http.idle_timeout_sec", 60)
	v.SetDefault("app.http.request_timeout_ms", 10000)
	v.SetDefault("app.http.max_body_bytes", 1<<20)
	v.SetDefault("app.http.max_in_flight", 256)
	v.SetDefault("app.http.rate_limit_rps", 200)
	v.SetDefault("app.http.rate_limit_burst", 400)
	v.SetDefault("app.http.ip_rate_limit_rps", 20)
	v.SetDefault("app.http.ip_rate_limit_burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime_min", 30)
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("supabase.timeout_sec", 10)

	// Keys absent from the file are only seen by Unmarshal when they have a
	// default, so every env-overridable secret gets an empty one.
	for _, k := range []string{
		"db.dsn", "db.username", "db.password",
		"supabase.url", "supabase.anon_key", "supabase.jwt_secret", "supabase.jwks_url", "supabase.issuer",
	} {
		v.SetDefault(k, "")
	}
}

// Load reads the YAML file at path (or $CONFIG_PATH, or the local default)
// and applies APP_ environment overrides, e.g. APP_DB_DSN for db.dsn.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	defaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql":
		if c.DB.DSN == "" {
			return fmt.Errorf("config: db.dsn is required for driver %q", c.DB.Driver)
		}
	case "memory":
	default:
		return fmt.Errorf("config: unsupported db.driver %q", c.DB.Driver)
	}
	if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
		return fmt.Errorf("config: supabase.url and supabase.anon_key are required")
	}
	return nil
}
