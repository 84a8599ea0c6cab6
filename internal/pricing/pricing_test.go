package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSalePrice(t *testing.T) {
	cases := []struct {
		name     string
		spot     string
		weight   float64
		ojorat   string
		margin   string
		expected string
	}{
		// (36,500,000 + 2,100,000) * 10 * 1.07
		{"ten gram gold bar", "36500000", 10, "2100000", "7", "413020000"},
		// one gram, zero ojorat, zero margin collapses to spot
		{"bare spot", "36500000", 1, "0", "0", "36500000"},
		// fractional weight gets floored at the end
		{"ounce of silver", "495000", 31.1, "50000", "5", "17796975"},
	}
	for _, tc := range cases {
		got := SalePrice(dec(tc.spot), tc.weight, dec(tc.ojorat), dec(tc.margin))
		if got.String() != tc.expected {
			t.Fatalf("%s: SalePrice = %s, expected %s", tc.name, got.String(), tc.expected)
		}
	}
}

func TestBuybackPrice(t *testing.T) {
	cases := []struct {
		name         string
		spot         string
		weight       float64
		markup       Markup
		packagingFee string
		expected     string
	}{
		// floor(36,500,000 - 36,500,000*0.015 - 0)
		{"percent deduction", "36500000", 1, Markup{MarkupPercent, dec("1.5")}, "0", "35952500"},
		{"fixed per gram deduction", "36500000", 10, Markup{MarkupFixedPerGram, dec("500000")}, "0", "360000000"},
		{"packaging fee subtracts", "36500000", 1, Markup{MarkupPercent, dec("1.5")}, "952500", "35000000"},
		// deduction larger than the base value goes non-positive
		{"deduction exceeds base", "36500000", 1, Markup{MarkupPercent, dec("110")}, "0", "-3650000"},
	}
	for _, tc := range cases {
		got := BuybackPrice(dec(tc.spot), tc.weight, tc.markup, dec(tc.packagingFee))
		if got.String() != tc.expected {
			t.Fatalf("%s: BuybackPrice = %s, expected %s", tc.name, got.String(), tc.expected)
		}
	}
}

func TestStockInCost(t *testing.T) {
	cases := []struct {
		name     string
		spot     string
		weight   float64
		markup   Markup
		expected string
	}{
		// (36,500,000 + 2,100,000) * 10
		{"fixed per gram", "36500000", 10, Markup{MarkupFixedPerGram, dec("2100000")}, "386000000"},
		// 36,500,000 * 10 * 1.07
		{"percent", "36500000", 10, Markup{MarkupPercent, dec("7")}, "390550000"},
	}
	for _, tc := range cases {
		got := StockInCost(dec(tc.spot), tc.weight, tc.markup)
		if got.String() != tc.expected {
			t.Fatalf("%s: StockInCost = %s, expected %s", tc.name, got.String(), tc.expected)
		}
	}
}

func TestMarkupValidate(t *testing.T) {
	if err := (Markup{MarkupPercent, dec("1.5")}).Validate(); err != nil {
		t.Fatalf("percent markup should validate: %v", err)
	}
	if err := (Markup{Mode: "per_mesghal"}).Validate(); err == nil {
		t.Fatal("unknown markup mode should not validate")
	}
}
