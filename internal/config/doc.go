// Package config loads runtime configuration for the Oryn tournament CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "db_path": "oryn.db",
//	  "admin_emails": ["root@example.com"],
//	  "session_ttl": "24h",
//	  "audit_capacity": 100,
//	  "identity_token_secret": "",
//	  "log_level": "info"
//	}
//
// The privileged-access allow-list lives here, not in code: an identity is
// an administrator exactly when its email matches one of admin_emails.
package config
