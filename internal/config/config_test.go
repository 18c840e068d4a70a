package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 25000.0, cfg.Routing.FastTrackThreshold)
	assert.Contains(t, cfg.Routing.FraudKeywords, "fraud")
	assert.Contains(t, cfg.Routing.FraudKeywords, "staged")
	assert.Contains(t, cfg.Routing.InjuryKeywords, "whiplash")
	assert.Equal(t, []string{
		"policy_number",
		"policyholder_name",
		"date_of_loss",
		"location",
		"description",
		"estimated_damage",
		"claim_type",
	}, cfg.Extract.RequiredFields)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FNOL_SERVER_PORT", ":9999")
	t.Setenv("FNOL_ROUTING_FAST_TRACK_THRESHOLD", "10000")
	t.Setenv("FNOL_ROUTING_FRAUD_KEYWORDS", "bogus, sham ,counterfeit")
	t.Setenv("FNOL_EXTRACT_REQUIRED_FIELDS", "policy_number,description")
	t.Setenv("FNOL_S3_BUCKET", "fnol-archive")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, 10000.0, cfg.Routing.FastTrackThreshold)
	assert.Equal(t, []string{"bogus", "sham", "counterfeit"}, cfg.Routing.FraudKeywords)
	assert.Equal(t, []string{"policy_number", "description"}, cfg.Extract.RequiredFields)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	d := DBConfig{
		Host: "db.internal", Port: 5433, User: "svc", Password: "pw",
		Name: "claims", SSLMode: "require",
	}
	assert.Equal(t, "postgres://svc:pw@db.internal:5433/claims?sslmode=require", d.DSN())
}
