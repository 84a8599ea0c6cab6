package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase" // stock bought from a supplier
	TransactionSale     TransactionType = "sale"     // sold to a customer
	TransactionBuyback  TransactionType = "buyback"  // bought back from a customer
)

type TransactionStatus string

const (
	TransactionDraft     TransactionStatus = "Draft"
	TransactionCompleted TransactionStatus = "Completed"
	TransactionCancelled TransactionStatus = "Cancelled"
)

// TransactionLine records one priced position. Serials of the covered items are
// comma-joined (a purchase batch shares a single line, a sale has one line per
// item).
type TransactionLine struct {
	ProductID        string          `json:"product_id"`
	ItemSerialNumber string          `json:"item_serial_number,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// Transaction is an append-only ledger record. The spot price pair is captured
// at creation time and never rewritten; status is always Completed on creation
// in the current design.
type Transaction struct {
	ID              string            `json:"id"`
	Type            TransactionType   `json:"type"`
	Date            time.Time         `json:"date"`
	CustomerID      string            `json:"customer_id,omitempty"`  // sales / buybacks
	SupplierName    string            `json:"supplier_name,omitempty"` // purchases
	Lines           []TransactionLine `json:"lines"`
	SpotPriceGold   decimal.Decimal   `json:"spot_price_gold"`
	SpotPriceSilver decimal.Decimal   `json:"spot_price_silver"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Fees            decimal.Decimal   `json:"fees"` // reserved for VAT, always zero today
	Status          TransactionStatus `json:"status"`
}
