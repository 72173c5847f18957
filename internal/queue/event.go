// Package queue defines message payloads exchanged over the message broker.
package queue

// ContentChangedEvent is published after every successful admin mutation.
// It carries enough information for downstream consumers to audit, warm
// caches, or trigger site rebuilds without querying the primary database.
type ContentChangedEvent struct {
	Resource   string `json:"resource"`            // e.g. "transfer-types", "homepage"
	Action     string `json:"action"`              // created | updated | deleted | moved | replaced
	RecordID   uint64 `json:"record_id,omitempty"` // zero for whole-collection actions
	ActorID    uint64 `json:"actor_id,omitempty"`  // admin user who made the change
	Count      int    `json:"count,omitempty"`     // records touched by bulk actions
	OccurredAt string `json:"occurred_at"`         // RFC3339 UTC
}
