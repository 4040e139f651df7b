// Package models defines the entities persisted by the tournament store.
package models

import "time"

// Identity is an authenticated end user. It is upserted by ID on every sign-in.
type Identity struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Picture string `json:"picture"`

	// IsAdmin is derived from the configured allow-list, never user-settable.
	IsAdmin bool `json:"isAdmin"`

	// VotedFor is the contestant this identity voted for, if any.
	VotedFor string `json:"votedFor,omitempty"`
	HasRated bool   `json:"hasRated,omitempty"`

	LoginTime time.Time `json:"loginTime"`
}

// Contestant is an editor competing in the tournament.
type Contestant struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Thumbnail string `json:"thumbnail"`
	Votes     int    `json:"votes" validate:"min=0"`
	VideoURL  string `json:"videoUrl"`
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

// Transaction records a purchase of extra votes. Settlement is manual.
type Transaction struct {
	ID        string            `json:"id" validate:"required"`
	UserID    string            `json:"userId" validate:"required"`
	UserName  string            `json:"userName"`
	PackageID string            `json:"packageId" validate:"required"`
	Stars     int               `json:"stars" validate:"gt=0"`
	Votes     int               `json:"votes" validate:"gt=0"`
	Timestamp time.Time         `json:"timestamp"`
	Status    TransactionStatus `json:"status" validate:"oneof=pending completed"`
}

// Rating is one platform rating submission.
type Rating struct {
	UserID    string    `json:"userId" validate:"required"`
	UserName  string    `json:"userName"`
	Stars     int       `json:"stars" validate:"min=1,max=5"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditEntry attributes a privileged mutation to the acting administrator.
type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Timestamp time.Time `json:"timestamp"`
}

// GiftPackage is a purchasable bundle of extra votes.
type GiftPackage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Votes       int    `json:"votes"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// Claim is the verified output of the identity provider.
type Claim struct {
	Subject string `json:"sub" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Picture string `json:"picture"`
}
