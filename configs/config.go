package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnv = "USERS_CONFIG"

// dotEnvFile is read from the working directory when present.
var dotEnvFile = ".env"

type Config struct {
	HTTP struct {
		Port            string        `mapstructure:"port" validate:"required,numeric"`
		MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	} `mapstructure:"http"`
	GRPC struct {
		Enabled bool   `mapstructure:"enabled"`
		Port    string `mapstructure:"port" validate:"required,numeric"`
	} `mapstructure:"grpc"`
	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
		Format string `mapstructure:"format" validate:"oneof=json text"`
	} `mapstructure:"log"`
}

var defaults = map[string]any{
	"http.port":             "4000",
	"http.max_body_bytes":   int64(1 << 20),
	"http.shutdown_timeout": 15 * time.Second,
	"grpc.enabled":          true,
	"grpc.port":             "50051",
	"log.level":             "info",
	"log.format":            "json",
}

var envBindings = map[string][]string{
	"http.port":             {"PORT", "HTTP_PORT"},
	"http.max_body_bytes":   {"HTTP_MAX_BODY_BYTES"},
	"http.shutdown_timeout": {"HTTP_SHUTDOWN_TIMEOUT"},
	"grpc.enabled":          {"GRPC_ENABLED"},
	"grpc.port":             {"GRPC_PORT"},
	"log.level":             {"LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT"},
}

var flagBindings = map[string]string{
	"http.port":    "port",
	"grpc.enabled": "grpc",
	"grpc.port":    "grpc-port",
	"log.level":    "log-level",
}

// NewConfig resolves settings from defaults, an optional config file,
// the environment and finally flags. flags may be nil. Variables from an
// optional .env file fill in the environment without overriding it.
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path := configFilePath(flags); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) HTTPAddr() string {
	return ":" + c.HTTP.Port
}

func (c *Config) GRPCAddr() string {
	return ":" + c.GRPC.Port
}

func configFilePath(flags *pflag.FlagSet) string {
	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			return path
		}
	}
	return os.Getenv(configFileEnv)
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return fmt.Errorf("failed to set %s from %s: %w", name, path, err)
		}
	}
	return nil
}
