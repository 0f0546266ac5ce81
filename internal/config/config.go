// Package config centralizes the dashboard configuration into typed structs.
//
// Defaults come from NewDefaultConfig; Load then overrides them from REEYO_*
// environment variables, reading a .env file first if one exists.
//
// Go Learning Note — Typed Config:
// Using typed structs (not raw strings/maps) gives you compile-time safety.
// Parsing happens once, at startup, so a malformed REEYO_DETAIL_LATENCY is a
// startup error rather than a surprise on the first request.
package config

import (
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Config is the top-level configuration container.
//
// Go Learning Note — Struct Tags:
// Each `env` tag names the variable (after the REEYO_ prefix) that overrides
// the field. caarlos0/env walks the nested structs, parses durations, numbers
// and booleans, and leaves a field alone when its variable is unset.
type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	Simulation SimulationConfig
	Sessions   SessionConfig
	Tracing    TracingConfig
	Fixtures   FixturesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `env:"PORT"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// AuthConfig describes the single administrator account.
type AuthConfig struct {
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"`
	BcryptCost    int           `env:"BCRYPT_COST"`
}

// SimulationConfig controls the artificial backend: per-operation latency
// and the random failure rate (0 disables, 1 fails everything).
type SimulationConfig struct {
	LoadLatency     time.Duration `env:"LOAD_LATENCY"`
	DetailLatency   time.Duration `env:"DETAIL_LATENCY"`
	MutationLatency time.Duration `env:"MUTATION_LATENCY"`
	FailureRate     float64       `env:"FAILURE_RATE"`
	Seed            int64         `env:"FAILURE_SEED"`
	// MutationLockTTL must outlast MutationLatency, or a slow write could
	// lose its lock before it commits.
	MutationLockTTL time.Duration `env:"MUTATION_LOCK_TTL"`
}

// SessionConfig controls how long an idle admin's detail panels live.
type SessionConfig struct {
	PanelTTL    time.Duration `env:"PANEL_TTL"`
	AuditLength int           `env:"AUDIT_LENGTH"`
}

// TracingConfig enables the OTLP/HTTP trace exporter.
type TracingConfig struct {
	Enabled     bool   `env:"TRACING_ENABLED"`
	Endpoint    string `env:"OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME"`
}

// FixturesConfig optionally points at a directory of fixture YAML files
// replacing the embedded set.
type FixturesConfig struct {
	Dir string `env:"FIXTURES_DIR"`
}

// EnvPrefix is prepended to every variable name in the env tags.
const EnvPrefix = "REEYO_"

// NewDefaultConfig returns a Config populated with the development defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			AdminEmail:    "admin@reeyo.com",
			AdminPassword: "password123",
			JWTSecret:     "change-me-in-production",
			TokenTTL:      12 * time.Hour,
			BcryptCost:    bcrypt.DefaultCost,
		},
		Simulation: SimulationConfig{
			LoadLatency:     800 * time.Millisecond,
			DetailLatency:   500 * time.Millisecond,
			MutationLatency: 300 * time.Millisecond,
			FailureRate:     0,
			Seed:            1,
			MutationLockTTL: 10 * time.Second,
		},
		Sessions: SessionConfig{
			PanelTTL:    30 * time.Minute,
			AuditLength: 100,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			Endpoint:    "localhost:4318",
			ServiceName: "reeyo-dashboard",
		},
	}
}

// Load returns the defaults overridden from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "read .env")
	}

	cfg := NewDefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the rest of the application cannot work with.
func (c *Config) Validate() error {
	if c.Simulation.FailureRate < 0 || c.Simulation.FailureRate > 1 {
		return errors.Errorf("failure rate %g must be between 0 and 1", c.Simulation.FailureRate)
	}
	if c.Simulation.MutationLockTTL <= c.Simulation.MutationLatency {
		return errors.Errorf("mutation lock ttl %s must exceed mutation latency %s",
			c.Simulation.MutationLockTTL, c.Simulation.MutationLatency)
	}
	if c.Auth.AdminEmail == "" || c.Auth.AdminPassword == "" {
		return errors.New("admin email and password must be set")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("jwt secret must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	return nil
}

// NewTestConfig returns the defaults with every simulated delay removed and
// the cheapest bcrypt cost, for tests and local tooling.
func NewTestConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Simulation.LoadLatency = 0
	cfg.Simulation.DetailLatency = 0
	cfg.Simulation.MutationLatency = 0
	return cfg
}
