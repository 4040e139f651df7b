package config

import (
	"flag"
	"strings"

	"github.com/dmitrijs2005/oryn/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string     path of the SQLite store file
//	-admins list  comma separated privileged emails
//	-ttl dur      session lifetime, e.g. 24h
//	-l string     log level
//
// Only these flags are parsed (see flagx.FilterArgs); a malformed value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-admins", "-ttl", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local store file")
	admins := fs.String("admins", strings.Join(cfg.AdminEmails, ","), "comma separated privileged emails")
	fs.DurationVar(&cfg.SessionTTL, "ttl", cfg.SessionTTL, "session lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AdminEmails = flagx.SplitList(*admins)
}
