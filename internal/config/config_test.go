package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "oryn.db", c.DBPath)
	assert.Empty(t, c.AdminEmails)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 100, c.AuditCapacity)
	assert.Empty(t, c.IdentityTokenSecret)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg := Load(nil)

	require.NotNil(t, cfg, "Load must not return nil")
	assert.Equal(t, "oryn.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"db_path":      "from-json.db",
		"admin_emails": []string{"json@oryn.io"},
		"session_ttl":  "2h",
	})

	cfg := Load([]string{"-c", path, "-d", "from-flag.db"})

	assert.Equal(t, "from-flag.db", cfg.DBPath)
	assert.Equal(t, []string{"json@oryn.io"}, cfg.AdminEmails)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}
