package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "admin@reeyo.com", cfg.Auth.AdminEmail)
	assert.Equal(t, 800*time.Millisecond, cfg.Simulation.LoadLatency)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulation.DetailLatency)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("REEYO_PORT", ":9090")
	t.Setenv("REEYO_DETAIL_LATENCY", "50ms")
	t.Setenv("REEYO_FAILURE_RATE", "0.25")
	t.Setenv("REEYO_TRACING_ENABLED", "true")
	t.Setenv("REEYO_FIXTURES_DIR", "/srv/fixtures")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.DetailLatency)
	assert.Equal(t, 0.25, cfg.Simulation.FailureRate)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "/srv/fixtures", cfg.Fixtures.Dir)
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	tests := map[string]string{
		"REEYO_LOAD_LATENCY":      "soon",
		"REEYO_BCRYPT_COST":       "high",
		"REEYO_FAILURE_RATE":      "1.5",
		"REEYO_TRACING_ENABLED":   "maybe",
		"REEYO_MUTATION_LOCK_TTL": "100ms",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_LockTTLMustOutlastMutationLatency(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Simulation.MutationLatency = 2 * time.Second
	cfg.Simulation.MutationLockTTL = 2 * time.Second
	assert.Error(t, cfg.Validate())

	cfg.Simulation.MutationLockTTL = 3 * time.Second
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, NewTestConfig().Validate())
}

func TestLoad_EmptyVariableKeepsDefault(t *testing.T) {
	t.Setenv("REEYO_SERVICE_NAME", "")
	t.Setenv("REEYO_AUDIT_LENGTH", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reeyo-dashboard", cfg.Tracing.ServiceName)
	assert.Equal(t, 25, cfg.Sessions.AuditLength)
}
