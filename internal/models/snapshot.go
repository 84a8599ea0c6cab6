package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SnapshotSource string

const (
	SnapshotManual SnapshotSource = "Manual"
	SnapshotAPI    SnapshotSource = "API"
)

// PriceSnapshot freezes the spot prices in effect when a transaction completed.
// Exactly one per completed transaction; append-only, used for audit/history.
type PriceSnapshot struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Date          time.Time       `json:"date"`
	GoldPrice     decimal.Decimal `json:"gold_price"`
	SilverPrice   decimal.Decimal `json:"silver_price"`
	Source        SnapshotSource  `json:"source"`
}
