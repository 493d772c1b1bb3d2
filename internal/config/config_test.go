package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STUDYFLOW_DB", "")
	t.Setenv("STUDYFLOW_NO_COLOR", "")
	t.Setenv("STUDYFLOW_LOG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".studyflow")
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYFLOW_DB", "/tmp/custom.db")
	t.Setenv("STUDYFLOW_NO_COLOR", "1")
	t.Setenv("STUDYFLOW_LOG", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.LogUseCases)
}
