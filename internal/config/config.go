// Package config loads runtime settings from the environment, an optional
// .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	flag "github.com/spf13/pflag"
)

type Config struct {
	HTTP        HTTPConfig
	Spotify     SpotifyConfig
	StoragePath string `env:"STORAGE_PATH" env-default:"dashboard.db"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"INFO"`
	SeedWidgets bool   `env:"SEED_WIDGETS" env-default:"true"`

	Flags Flags
}

type HTTPConfig struct {
	Addr              string        `env:"HTTP_ADDR" env-default:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"15s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type SpotifyConfig struct {
	BaseURL      string `env:"SPOTIFY_API_BASE_URL" env-default:"https://api.spotify.com/v1"`
	TokenURL     string `env:"SPOTIFY_TOKEN_URL" env-default:"https://accounts.spotify.com/api/token"`
	ClientID     string `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	// Fail a whole call when an item has an empty images, artists or genres list.
	StrictDecorations bool          `env:"SPOTIFY_STRICT_DECORATIONS" env-default:"false"`
	Timeout           time.Duration `env:"SPOTIFY_TIMEOUT" env-default:"10s"`
}

// HasAppCredentials reports whether client-credentials auth is configured.
func (s SpotifyConfig) HasAppCredentials() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

type Flags struct {
	CfgPath string
}

// Load parses args (without the program name) and reads the configuration.
// Values come from the config file when it exists, then the environment, then
// the flags that were set explicitly.
func Load(args []string) (Config, error) {
	var cfg Config

	fset := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	configPath := fset.StringP("config", "c", ".env", "Path of the configuration file")
	addr := fset.String("addr", "", "HTTP listen address, overrides HTTP_ADDR")
	seed := fset.Bool("seed", true, "Seed the default widgets on startup, overrides SEED_WIDGETS")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("flag validation error: %w", err)
	}
	cfg.Flags.CfgPath = *configPath

	if err := cfg.read(); err != nil {
		return Config{}, err
	}

	if fset.Changed("addr") {
		cfg.HTTP.Addr = *addr
	}
	if fset.Changed("seed") {
		cfg.SeedWidgets = *seed
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) read() error {
	_, err := os.Stat(cfg.Flags.CfgPath)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(cfg.Flags.CfgPath, cfg); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfg.Flags.CfgPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return fmt.Errorf("failed to stat config file %s: %w", cfg.Flags.CfgPath, err)
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.HTTP.Addr == "" {
		return errors.New("config: HTTP_ADDR must not be empty")
	}
	if cfg.Spotify.BaseURL == "" {
		return errors.New("config: SPOTIFY_API_BASE_URL must not be empty")
	}
	if (cfg.Spotify.ClientID == "") != (cfg.Spotify.ClientSecret == "") {
		return errors.New("config: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set together")
	}
	return nil
}
