package audit

import (
	"strings"
	"testing"

	"goldshop-backend/internal/models"
)

func TestTrailKeepsNewestFirst(t *testing.T) {
	trail := NewTrail()
	trail.Write(Options{EntityType: "product", EntityID: "p1", Action: models.AuditActionCreate, Description: "first"})
	trail.Write(Options{EntityType: "product", EntityID: "p2", Action: models.AuditActionCreate, Description: "second"})

	entries := trail.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].EntityID != "p2" || entries[1].EntityID != "p1" {
		t.Fatalf("entries not newest first: %s then %s", entries[0].EntityID, entries[1].EntityID)
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("entry IDs must be unique")
	}
}

func TestTrailSerializesAfterState(t *testing.T) {
	trail := NewTrail()
	trail.Write(Options{
		EntityType:  "customer",
		EntityID:    "c1",
		Action:      models.AuditActionCreate,
		Description: "customer created",
		After:       map[string]string{"name": "Ali Rezaei"},
	})

	entries := trail.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !strings.Contains(entries[0].AfterData, "Ali Rezaei") {
		t.Fatalf("after-state not serialized: %q", entries[0].AfterData)
	}
}
