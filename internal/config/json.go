package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/oryn/internal/flagx"
	"github.com/dmitrijs2005/oryn/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DBPath              *string         `json:"db_path"`
	AdminEmails         []string        `json:"admin_emails"`
	SessionTTL          *timex.Duration `json:"session_ttl"`
	AuditCapacity       *int            `json:"audit_capacity"`
	IdentityTokenSecret *string         `json:"identity_token_secret"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// It is a no-op when no file is given and panics on read or decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.AdminEmails != nil {
		cfg.AdminEmails = jc.AdminEmails
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.AuditCapacity != nil {
		cfg.AuditCapacity = *jc.AuditCapacity
	}
	if jc.IdentityTokenSecret != nil {
		cfg.IdentityTokenSecret = *jc.IdentityTokenSecret
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
