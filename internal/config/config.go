package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"zenith-dashboard/internal/adapters/coda"
	"zenith-dashboard/internal/platform/logger"
)

// Config se carga una vez al arrancar: defaults, luego YAML opcional, luego env.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Coda     CodaConfig   `yaml:"coda"`
	Log      LogConfig    `yaml:"log"`
	Timezone string       `yaml:"timezone"` // IANA, decide el rol del día
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

type CodaConfig struct {
	APIToken string `yaml:"api_token"`
	DocID    string `yaml:"doc_id"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	// Revalidate: ventana de cache, "0s" o negativo la desactiva.
	Revalidate string `yaml:"revalidate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  "5s",
			WriteTimeout: "20s",
		},
		Coda: CodaConfig{
			BaseURL:    coda.DefaultBaseURL,
			Timeout:    "10s",
			Revalidate: "600s",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "zenith",
		},
		Timezone: "Local",
	}
}

// Load lee path (si existe) y aplica overrides de env. path vacío => solo env.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// sin archivo: defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setFromEnv(&c.Server.Port, "PORT")
	setFromEnv(&c.Coda.APIToken, "CODA_API_TOKEN")
	setFromEnv(&c.Coda.DocID, "CODA_DOC_ID")
	setFromEnv(&c.Coda.BaseURL, "CODA_BASE_URL")
	setFromEnv(&c.Coda.Timeout, "CODA_TIMEOUT")
	setFromEnv(&c.Coda.Revalidate, "CODA_REVALIDATE")
	setFromEnv(&c.Log.Level, "LOG_LEVEL")
	setFromEnv(&c.Log.Format, "LOG_FORMAT")
	setFromEnv(&c.Log.App, "APP_NAME")
	setFromEnv(&c.Timezone, "ZENITH_TZ")
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate solo revisa formato. Credenciales vacías no son error de arranque:
// el endpoint de biometría responde offline.
func (c *Config) Validate() error {
	durations := map[string]string{
		"server.read_timeout":  c.Server.ReadTimeout,
		"server.write_timeout": c.Server.WriteTimeout,
		"coda.timeout":         c.Coda.Timeout,
		"coda.revalidate":      c.Coda.Revalidate,
	}
	for name, v := range durations {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func (c *Config) ReadTimeout() time.Duration  { return mustDuration(c.Server.ReadTimeout) }
func (c *Config) WriteTimeout() time.Duration { return mustDuration(c.Server.WriteTimeout) }

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// CodaClientConfig traduce la sección coda al Config del adapter.
func (c *Config) CodaClientConfig() coda.Config {
	rv := mustDuration(c.Coda.Revalidate)
	if rv == 0 {
		rv = -1
	}
	return coda.Config{
		Credentials: coda.Credentials{
			APIToken: c.Coda.APIToken,
			DocID:    c.Coda.DocID,
		},
		BaseURL:    c.Coda.BaseURL,
		Timeout:    mustDuration(c.Coda.Timeout),
		Revalidate: rv,
	}
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	}
}

// Validate ya garantiza el formato.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
