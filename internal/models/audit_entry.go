package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

// AuditEntry records one ledger mutation with a small summary and the
// resulting entity payload (JSON). Kept in memory alongside the ledger.
type AuditEntry struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	EntityType  string      `json:"entity_type"` // "transaction", "product", "customer"
	EntityID    string      `json:"entity_id"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
	AfterData   string      `json:"after_data"`
}
