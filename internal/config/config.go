package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "PASSGEN"
	devJWTSecret    = "dev-secret-change-in-production"
	productionEnv   = "production"
	defaultDotEnv   = ".env"
	defaultFileName = "passgen"
)

var (
	ErrInsecureSecret = errors.New("PASSGEN_JWT_SECRET must be set in production environment")
	ErrInvalidLimits  = errors.New("invalid length limits")
)

type Config struct {
	Port      string          `mapstructure:"port"`
	Env       string          `mapstructure:"env"`
	Log       LogConfig       `mapstructure:"log"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Shell     ShellConfig     `mapstructure:"shell"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

type GeneratorConfig struct {
	DefaultLength int `mapstructure:"default_length"`
	MaxLength     int `mapstructure:"max_length"`
}

// ShellConfig bounds the length accepted by the interactive custom-password prompt.
type ShellConfig struct {
	MinLength int `mapstructure:"min_length"`
	MaxLength int `mapstructure:"max_length"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type ClipboardConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var defaults = map[string]any{
	"port":                     "8080",
	"env":                      "development",
	"log.level":                "info",
	"log.format":               "text",
	"jwt.secret":               devJWTSecret,
	"jwt.expiry":               24 * time.Hour,
	"generator.default_length": 12,
	"generator.max_length":     128,
	"shell.min_length":         8,
	"shell.max_length":         50,
	"ratelimit.rps":            5.0,
	"ratelimit.burst":          10,
	"clipboard.enabled":        true,
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"port":       "port",
	"env":        "env",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load reads configuration from defaults, an optional config file, a .env file,
// PASSGEN_* environment variables and the given flags, in increasing precedence.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(defaultDotEnv); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Env == productionEnv && c.JWT.Secret == devJWTSecret {
		return ErrInsecureSecret
	}
	if c.Shell.MinLength < 1 || c.Shell.MaxLength < c.Shell.MinLength {
		return fmt.Errorf("%w: shell range %d-%d", ErrInvalidLimits, c.Shell.MinLength, c.Shell.MaxLength)
	}
	if c.Generator.DefaultLength < 1 {
		return fmt.Errorf("%w: default length %d", ErrInvalidLimits, c.Generator.DefaultLength)
	}

	// A max_length of 0 leaves generation uncapped.
	if limit := c.Generator.MaxLength; limit > 0 {
		if c.Generator.DefaultLength > limit {
			return fmt.Errorf("%w: default length %d exceeds max length %d", ErrInvalidLimits, c.Generator.DefaultLength, limit)
		}
		if c.Shell.MaxLength > limit {
			return fmt.Errorf("%w: shell max length %d exceeds generator max length %d", ErrInvalidLimits, c.Shell.MaxLength, limit)
		}
	}
	return nil
}
