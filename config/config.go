// Package config loads application settings from defaults and the environment
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "CIPHER_"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Benchmark BenchmarkConfig `koanf:"benchmark"`
	Log       LogConfig       `koanf:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `koanf:"host"`
	Port           int      `koanf:"port"            validate:"min=1,max=65535"`
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxUploadMB    int      `koanf:"max_upload_mb"   validate:"min=1,max=512"`
}

// BenchmarkConfig holds defaults for the cipher benchmark
type BenchmarkConfig struct {
	Iterations int    `koanf:"iterations" validate:"min=1"`
	Text       string `koanf:"text"       validate:"required"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadMB:    32,
		},
		Benchmark: BenchmarkConfig{
			Iterations: 10000,
			Text:       "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// transformEnvKey converts CIPHER_SERVER_MAX_UPLOAD_MB to server.max_upload_mb.
func transformEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}

// Load applies defaults, then CIPHER_* environment variables, then validates.
// A bare PORT variable is honoured when CIPHER_SERVER_PORT is not set.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		if err := k.Set("server.port", port); err != nil {
			return nil, fmt.Errorf("failed to apply PORT: %w", err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Address returns host:port for the HTTP listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`
Server: %s (origins %v, max upload %dMB)
Benchmark: %d iterations
Log: %s json=%t`,
		c.Server.Address(), c.Server.AllowedOrigins, c.Server.MaxUploadMB,
		c.Benchmark.Iterations,
		c.Log.Level, c.Log.JSON,
	)
}
