package common

import "time"

const (
	// DefaultAuditCapacity is how many audit entries are retained.
	DefaultAuditCapacity = 100

	// DefaultSessionTTL is how long a sign-in stays valid.
	DefaultSessionTTL = 24 * time.Hour
)
