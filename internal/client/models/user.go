// Package models defines the forum records persisted by the client store.
package models

import "time"

// User is a registered forum member.
type User struct {
	// ID is unique and strictly increasing in creation order.
	ID int64 `json:"id"`

	// Username is unique across all users (case-sensitive).
	Username string `json:"username"`

	// Password is stored verbatim. Credential security is out of scope.
	Password string `json:"password"`

	// RegisteredAt is the creation time in UTC.
	RegisteredAt time.Time `json:"registered"`
}
