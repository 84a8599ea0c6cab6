// Package pricing computes stock-in, sale and buyback prices from a spot rate,
// a weight and a markup configuration. All functions are pure; every monetary
// result is floored to whole rials.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MarkupMode selects how a markup value is applied against a base price.
type MarkupMode string

const (
	// MarkupPercent applies Value as a percentage of spot*weight.
	MarkupPercent MarkupMode = "percent"
	// MarkupFixedPerGram applies Value as rials per gram.
	MarkupFixedPerGram MarkupMode = "fixed_per_gram"
)

// Markup is the per-transaction markup configuration. It is not persisted;
// each flow keeps its own defaults.
type Markup struct {
	Mode  MarkupMode
	Value decimal.Decimal
}

// Form defaults, matching what the POS pre-fills.
var (
	DefaultOjorat         = decimal.NewFromInt(2100000) // making charge, rials per gram
	DefaultProfitMargin   = decimal.NewFromInt(7)       // percent
	DefaultBuybackMargin  = decimal.RequireFromString("1.5")
	DefaultStockInPerGram = decimal.NewFromInt(2100000)
	DefaultStockInPercent = decimal.NewFromInt(7)
)

func (m Markup) Validate() error {
	switch m.Mode {
	case MarkupPercent, MarkupFixedPerGram:
		return nil
	}
	return fmt.Errorf("unknown markup mode %q", m.Mode)
}

// amount resolves the markup against a base value of spot*weight.
func (m Markup) amount(base decimal.Decimal, weightGrams float64) decimal.Decimal {
	switch m.Mode {
	case MarkupPercent:
		return base.Mul(m.Value).Div(decimal.NewFromInt(100))
	case MarkupFixedPerGram:
		return m.Value.Mul(decimal.NewFromFloat(weightGrams))
	}
	return decimal.Zero
}

// StockInCost prices acquiring one item from a supplier:
//
//	fixed per gram: (spot + fee) * weight
//	percent:        spot * weight * (1 + percent/100)
func StockInCost(spot decimal.Decimal, weightGrams float64, markup Markup) decimal.Decimal {
	weight := decimal.NewFromFloat(weightGrams)
	base := spot.Mul(weight)
	if markup.Mode == MarkupFixedPerGram {
		return spot.Add(markup.Value).Mul(weight).Floor()
	}
	return base.Add(markup.amount(base, weightGrams)).Floor()
}

// SalePrice prices selling one item to a customer. The ojorat (making charge)
// is always a fixed per-gram addition and the profit margin is always a
// percentage on top:
//
//	floor((spot + ojorat) * weight * (1 + margin/100))
func SalePrice(spot decimal.Decimal, weightGrams float64, ojorat, marginPercent decimal.Decimal) decimal.Decimal {
	weight := decimal.NewFromFloat(weightGrams)
	cost := spot.Add(ojorat).Mul(weight)
	margin := cost.Mul(marginPercent).Div(decimal.NewFromInt(100))
	return cost.Add(margin).Floor()
}

// BuybackPrice prices buying one item back from a customer:
//
//	floor(spot*weight - deduction - packagingFee)
//
// The deduction follows the markup mode against the base value spot*weight.
// A result of zero or less means the deduction and fees ate the whole base
// value; callers must treat it as invalid.
func BuybackPrice(spot decimal.Decimal, weightGrams float64, deduction Markup, packagingFee decimal.Decimal) decimal.Decimal {
	base := spot.Mul(decimal.NewFromFloat(weightGrams))
	return base.Sub(deduction.amount(base, weightGrams)).Sub(packagingFee).Floor()
}
