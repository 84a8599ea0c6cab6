package audit

import (
	"encoding/json"
	"sync"
	"time"

	"goldshop-backend/internal/models"

	"github.com/google/uuid"
)

type Options struct {
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	After       any
}

// Trail keeps the audit log of ledger mutations, newest first. It lives for
// the process lifetime like the rest of the ledger state.
type Trail struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

func NewTrail() *Trail {
	return &Trail{}
}

func (t *Trail) Write(opts Options) {
	afterStr := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditEntry{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		AfterData:   afterStr,
	}

	t.mu.Lock()
	t.entries = append([]models.AuditEntry{entry}, t.entries...)
	t.mu.Unlock()
}

func (t *Trail) Entries() []models.AuditEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
