package models

import "time"

// Topic is a forum post. Everything except Views is fixed at creation.
type Topic struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`

	// Author is the username of the creator, not a reference to a User.
	Author string `json:"author"`

	CreatedAt time.Time `json:"date"`

	// Views is incremented on every read access and never negative.
	Views int `json:"views"`

	// Replies is reserved; nothing increments it yet.
	Replies int `json:"replies"`
}

// NewTopic carries the caller-supplied fields of a topic being created.
type NewTopic struct {
	Title    string `validate:"required"`
	Category string `validate:"required"`
	Content  string `validate:"required"`
	Author   string `validate:"required"`
}

// Snapshot is the complete forum state, used for export and import.
type Snapshot struct {
	Users  []User  `json:"users"`
	Topics []Topic `json:"topics"`
}
