package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3333", c.BaseURL)
	assert.Equal(t, "remindme.db", c.SessionDBPath)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, 5, c.PageSize)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3333", cfg.BaseURL)
	assert.Equal(t, "remindme.db", cfg.SessionDBPath)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.PageSize)
}
