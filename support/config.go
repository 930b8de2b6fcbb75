package support

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	TracingNone      = "none"
	TracingConsole   = "console"
	TracingHoneycomb = "honeycomb"
)

type Config struct {
	Addr             string
	LogLevel         zerolog.Level
	LogFormat        string
	Tracing          string
	HoneycombTeam    string
	HoneycombDataset string
	ShutdownTimeout  time.Duration

	ReadHeaderTimeout time.Duration
}

// LoadConfig reads configuration from TSSERVER_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("tsserver")
	v.AutomaticEnv()

	return ConfigFrom(v)
}

func ConfigFrom(v *viper.Viper) (Config, error) {
	v.SetDefault("addr", ":9080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("tracing", TracingNone)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("read_header_timeout", 5*time.Second)

	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, errors.Wrap(err, "log_level")
	}

	cfg := Config{
		Addr:             v.GetString("addr"),
		LogLevel:         level,
		LogFormat:        v.GetString("log_format"),
		Tracing:          v.GetString("tracing"),
		HoneycombTeam:    v.GetString("honeycomb_team"),
		HoneycombDataset: v.GetString("honeycomb_dataset"),
		ShutdownTimeout:  v.GetDuration("shutdown_timeout"),

		ReadHeaderTimeout: v.GetDuration("read_header_timeout"),
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, errors.Errorf("log_format: unsupported format %q", cfg.LogFormat)
	}

	switch cfg.Tracing {
	case TracingNone, TracingConsole:
	case TracingHoneycomb:
		if cfg.HoneycombTeam == "" || cfg.HoneycombDataset == "" {
			return Config{}, errors.New("tracing: honeycomb requires honeycomb_team and honeycomb_dataset")
		}
	default:
		return Config{}, errors.Errorf("tracing: unsupported exporter %q", cfg.Tracing)
	}

	if cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("shutdown_timeout: must be > 0")
	}

	if cfg.ReadHeaderTimeout <= 0 {
		return Config{}, errors.New("read_header_timeout: must be > 0")
	}

	return cfg, nil
}
