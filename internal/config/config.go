package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/oryn/internal/common"
)

// Config holds runtime settings for the Oryn tournament CLI.
//
// Fields:
//   - DBPath: SQLite file backing the local store (":memory:" for a throwaway run).
//   - AdminEmails: allow-list of privileged identities, compared case-insensitively.
//   - SessionTTL: how long a sign-in stays valid.
//   - AuditCapacity: number of audit entries retained.
//   - IdentityTokenSecret: HS256 key for verifying identity tokens; empty
//     means tokens are decoded without signature verification.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DBPath              string
	AdminEmails         []string
	SessionTTL          time.Duration
	AuditCapacity       int
	IdentityTokenSecret string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "oryn.db"
	c.AdminEmails = nil
	c.SessionTTL = common.DefaultSessionTTL
	c.AuditCapacity = common.DefaultAuditCapacity
	c.IdentityTokenSecret = ""
	c.LogLevel = "info"
}

// Load constructs a Config from args (without the program name): defaults
// first, then the JSON file named by -c/-config, then flags. Later sources
// take precedence over earlier ones.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
