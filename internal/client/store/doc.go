// Package store owns the forum's durable collections: registered users and
// topics.
//
// # Persistence
//
// Each collection is serialized as one JSON array under a fixed key of a
// metadata.Repository ("forum_users", "forum_topics"). Every mutation
// rewrites the whole collection before returning. If the write fails, the
// in-memory collection is restored to its previous state and the error is
// returned, so memory and storage never diverge.
//
// # Ordering
//
// Topics are kept newest-first. Queries return copies; callers never hold a
// reference into the store.
//
// # Concurrency
//
// A Store is owned by a single logical thread of control and is not safe
// for concurrent use.
package store
