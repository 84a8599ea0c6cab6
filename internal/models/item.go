package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemStatus string

const (
	ItemInStock        ItemStatus = "in_stock"
	ItemSold           ItemStatus = "sold"
	ItemBuybackPending ItemStatus = "buyback_pending"
	ItemReserved       ItemStatus = "reserved"
)

// Well-known locations assigned by the ledger.
const (
	LocationStoreSafe  = "Store Safe"
	LocationCustomer   = "Customer"
	LocationQuarantine = "Quarantine"
)

// Item is one serialized piece of inventory. The serial number is the key and
// stays unique across the whole ledger; items are never hard-deleted.
// Lifecycle: InStock -> Sold (sale), Sold -> InStock (buyback, re-valued).
type Item struct {
	SerialNumber string          `json:"serial_number"`
	ProductID    string          `json:"product_id"`
	Status       ItemStatus      `json:"status"`
	Location     string          `json:"location"`
	PurchaseDate time.Time       `json:"purchase_date"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Notes        string          `json:"notes,omitempty"`

	// Transaction links, filled in as the item moves through its lifecycle.
	PurchaseLink string `json:"purchase_link,omitempty"`
	SaleLink     string `json:"sale_link,omitempty"`
	BuybackLink  string `json:"buyback_link,omitempty"`
}
