package models

type MetalType string

const (
	MetalGold   MetalType = "gold"
	MetalSilver MetalType = "silver"
)

// Product is a catalog definition (bar, coin). Immutable once created and
// never deleted; items and transaction lines reference it by ID.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MetalType    MetalType `json:"metal_type"`
	WeightGrams  float64   `json:"weight_grams"`
	Purity       float64   `json:"purity"` // e.g. 999.9
	Manufacturer string    `json:"manufacturer"`
	Packaging    string    `json:"packaging"`
	SKU          string    `json:"sku,omitempty"`
}
