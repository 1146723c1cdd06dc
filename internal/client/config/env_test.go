package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("REMINDME_BASE_URL", "https://env.example.com")
		t.Setenv("REMINDME_HTTP_TIMEOUT", "25s")
		t.Setenv("REMINDME_DB_PATH", "/env/remind.db")
		t.Setenv("REMINDME_PAGE_SIZE", "8")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "https://env.example.com", cfg.BaseURL)
		assert.Equal(t, 25*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "/env/remind.db", cfg.SessionDBPath)
		assert.Equal(t, 8, cfg.PageSize)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		t.Setenv("REMINDME_BASE_URL", "")
		t.Setenv("REMINDME_HTTP_TIMEOUT", "")
		t.Setenv("REMINDME_DB_PATH", "")
		t.Setenv("REMINDME_PAGE_SIZE", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://localhost:3333", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "remindme.db", cfg.SessionDBPath)
		assert.Equal(t, 5, cfg.PageSize)
	})

	t.Run("invalid timeout panics", func(t *testing.T) {
		t.Setenv("REMINDME_HTTP_TIMEOUT", "soon")

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseEnv(cfg) })
	})
}
