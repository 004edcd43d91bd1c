package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// Cache backend identifiers accepted by CACHE_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendJSON   = "json"
	BackendRedis  = "redis"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Cache holds the cache backend configuration.
	Cache CacheConfig `mapstructure:",squash"`
}

// CacheConfig selects and parameterizes the cache backend.
type CacheConfig struct {
	// Backend is one of memory, file, json, redis.
	Backend string `mapstructure:"CACHE_BACKEND" default:"memory"`
	// Dir is the storage root for the file-backed backends.
	Dir string `mapstructure:"CACHE_DIR" default:"./cache"`
	// RedisURL is the connection URL for the redis backend.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the selected cache backend has what it needs.
func (c *AppConfig) Validate() error {
	switch c.Cache.Backend {
	case BackendMemory:
	case BackendFile, BackendJSON:
		if c.Cache.Dir == "" {
			return fmt.Errorf("missing required configuration: CACHE_DIR (backend %s)", c.Cache.Backend)
		}
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New("missing required configuration: REDIS_URL (backend redis)")
		}
	default:
		return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
	}
	return nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}
