package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Template store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	TemplateStore string `env:"TEMPLATE_STORE, default=memory"`

	Label LabelConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type LabelConfig struct {
	MailmarkAccountID string  `env:"MAILMARK_ACCOUNT_ID, default=8215FA"`
	Workers           int     `env:"LABEL_WORKERS,       default=4"`
	ExportScale       float64 `env:"EXPORT_SCALE,        default=0"`
}

type MongoConfig struct {
	URI                 string `env:"MONGO_URI,                  default=mongodb://localhost:27017"`
	Database            string `env:"MONGO_DB,                   default=label_system"`
	TemplatesCollection string `env:"MONGO_TEMPLATES_COLLECTION, default=label_templates"`
}

type RedisConfig struct {
	Addr         string `env:"REDIS_ADDR,          default=localhost:6379"`
	DB           int    `env:"REDIS_DB,            default=0"`
	TemplatesKey string `env:"REDIS_TEMPLATES_KEY, default=label:templates"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l and checks the values that have a
// closed set of options.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	switch cfg.TemplateStore {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		return nil, fmt.Errorf("TEMPLATE_STORE: unknown backend %q", cfg.TemplateStore)
	}
	if cfg.Label.ExportScale < 0 {
		return nil, fmt.Errorf("EXPORT_SCALE: must not be negative, got %v", cfg.Label.ExportScale)
	}
	return &cfg, nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
