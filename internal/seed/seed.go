// Package seed loads a demo dataset into a fresh ledger so the POS has a
// realistic catalog, stock and sales history to work against. Enabled by
// SEED_DEMO_DATA; never used in production.
package seed

import (
	"fmt"
	"time"

	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/shopspring/decimal"
)

func Load(l *ledger.Ledger) {
	l.Load(demoProducts(), demoCustomers(), demoItems(), demoTransactions())
}

func demoProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Parsis gold bar 1g", MetalType: models.MetalGold, WeightGrams: 1, Purity: 995, Manufacturer: "Parsis", Packaging: "Vacuum card", SKU: "PG-001"},
		{ID: "p2", Name: "Parsis gold bar 10g", MetalType: models.MetalGold, WeightGrams: 10, Purity: 995, Manufacturer: "Parsis", Packaging: "Vacuum card", SKU: "PG-010"},
		{ID: "p3", Name: "Swiss silver bar 1oz", MetalType: models.MetalSilver, WeightGrams: 31.1, Purity: 999, Manufacturer: "PAMP", Packaging: "Loose", SKU: "SS-1OZ"},
		{ID: "p4", Name: "Parsis gold bar 2.5g", MetalType: models.MetalGold, WeightGrams: 2.5, Purity: 995, Manufacturer: "Parsis", Packaging: "Vacuum card", SKU: "PG-0025"},
		{ID: "p5", Name: "Parsis gold bar 5g", MetalType: models.MetalGold, WeightGrams: 5, Purity: 995, Manufacturer: "Parsis", Packaging: "Vacuum card", SKU: "PG-005"},
		{ID: "p6", Name: "Swiss gold bar 50g", MetalType: models.MetalGold, WeightGrams: 50, Purity: 999.9, Manufacturer: "Valcambi", Packaging: "Vacuum card", SKU: "VG-050"},
		{ID: "p7", Name: "Swiss gold bar 100g", MetalType: models.MetalGold, WeightGrams: 100, Purity: 999.9, Manufacturer: "PAMP", Packaging: "Vacuum card", SKU: "PG-100"},
		{ID: "p8", Name: "Silver bar 100g", MetalType: models.MetalSilver, WeightGrams: 100, Purity: 999, Manufacturer: "Golran", Packaging: "Vacuum", SKU: "SG-100"},
		{ID: "p9", Name: "Full Bahar Azadi coin", MetalType: models.MetalGold, WeightGrams: 8.133, Purity: 900, Manufacturer: "Central Bank", Packaging: "Pressed", SKU: "C-FULL"},
		{ID: "p10", Name: "Half Bahar Azadi coin", MetalType: models.MetalGold, WeightGrams: 4.066, Purity: 900, Manufacturer: "Central Bank", Packaging: "Pressed", SKU: "C-HALF"},
	}
}

func demoCustomers() []models.Customer {
	return []models.Customer{
		{ID: "c1", Name: "Ali Rezaei", Type: models.CustomerIndividual, Phone: "09123456789", NationalID: "0012345678", City: "Tehran"},
		{ID: "c2", Name: "Sara Mohammadi", Type: models.CustomerIndividual, Phone: "09198765432", NationalID: "0023456789", City: "Isfahan"},
		{ID: "c3", Name: "Zarin Investment Co.", Type: models.CustomerCorporate, Phone: "02188888888", NationalID: "10101234567", EconomicCode: "411122223333", City: "Tehran"},
		{ID: "c4", Name: "Noor Jewellery", Type: models.CustomerCorporate, Phone: "02177777777", City: "Mashhad"},
		{ID: "c5", Name: "Mohammad Amini", Type: models.CustomerIndividual, Phone: "09350000001"},
		{ID: "c6", Name: "Zahra Kazemi", Type: models.CustomerIndividual, Phone: "09120000002"},
		{ID: "c7", Name: "Omid Trading", Type: models.CustomerCorporate, Phone: "02166666666"},
		{ID: "c8", Name: "Reza Karimi", Type: models.CustomerIndividual, Phone: "09180000003"},
	}
}

func demoItems() []models.Item {
	purchased := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	var items []models.Item

	add := func(pid string, count, startSerial int, price int64, status models.ItemStatus, loc, saleID string) {
		for i := 0; i < count; i++ {
			items = append(items, models.Item{
				SerialNumber: fmt.Sprintf("SN-%s-%d", pid[1:], startSerial+i),
				ProductID:    pid,
				Status:       status,
				Location:     loc,
				PurchaseDate: purchased,
				CostPrice:    decimal.NewFromInt(price),
				SaleLink:     saleID,
			})
		}
	}

	add("p1", 8, 1000, 35000000, models.ItemInStock, "Safe 1", "")
	add("p2", 5, 2000, 350000000, models.ItemInStock, "Display case", "")
	add("p3", 12, 3000, 15000000, models.ItemInStock, "Silver drawer", "")
	add("p4", 6, 4000, 88000000, models.ItemInStock, "Safe 1", "")
	add("p5", 4, 5000, 175000000, models.ItemInStock, "Safe 1", "")
	add("p9", 15, 9000, 320000000, models.ItemInStock, "Coin display", "")
	add("p10", 10, 10000, 160000000, models.ItemInStock, "Coin display", "")
	add("p7", 2, 7000, 3500000000, models.ItemInStock, "Main vault", "")

	add("p1", 2, 1100, 34000000, models.ItemSold, models.LocationCustomer, "TX-001")
	add("p2", 1, 2100, 335000000, models.ItemSold, models.LocationCustomer, "TX-002")
	add("p9", 3, 9100, 310000000, models.ItemSold, models.LocationCustomer, "TX-003")
	add("p4", 2, 4100, 85000000, models.ItemSold, models.LocationCustomer, "TX-004")

	return items
}

func demoTransactions() []models.Transaction {
	now := time.Now()
	return []models.Transaction{
		{
			ID: "TX-004", Type: models.TransactionSale, Date: now.Add(-1 * time.Hour),
			CustomerID:    "c4",
			SpotPriceGold: decimal.NewFromInt(36500000), SpotPriceSilver: decimal.NewFromInt(500000),
			TotalAmount: decimal.NewFromInt(190000000), Fees: decimal.Zero,
			Status: models.TransactionCompleted,
			Lines: []models.TransactionLine{
				{ProductID: "p4", ItemSerialNumber: "SN-4-4100, SN-4-4101", Quantity: 2, UnitPrice: decimal.NewFromInt(95000000), Subtotal: decimal.NewFromInt(190000000)},
			},
		},
		{
			ID: "TX-003", Type: models.TransactionSale, Date: now.AddDate(0, 0, -2),
			CustomerID:    "c2",
			SpotPriceGold: decimal.NewFromInt(36200000), SpotPriceSilver: decimal.NewFromInt(490000),
			TotalAmount: decimal.NewFromInt(990000000), Fees: decimal.Zero,
			Status: models.TransactionCompleted,
			Lines: []models.TransactionLine{
				{ProductID: "p9", ItemSerialNumber: "SN-9-9100, SN-9-9101, SN-9-9102", Quantity: 3, UnitPrice: decimal.NewFromInt(330000000), Subtotal: decimal.NewFromInt(990000000)},
			},
		},
		{
			ID: "TX-002", Type: models.TransactionSale, Date: now.AddDate(0, 0, -5),
			CustomerID:    "c3",
			SpotPriceGold: decimal.NewFromInt(35800000), SpotPriceSilver: decimal.NewFromInt(475000),
			TotalAmount: decimal.NewFromInt(375000000), Fees: decimal.Zero,
			Status: models.TransactionCompleted,
			Lines: []models.TransactionLine{
				{ProductID: "p2", ItemSerialNumber: "SN-2-2100", Quantity: 1, UnitPrice: decimal.NewFromInt(375000000), Subtotal: decimal.NewFromInt(375000000)},
			},
		},
		{
			ID: "TX-001", Type: models.TransactionSale, Date: now.AddDate(0, 0, -7),
			CustomerID:    "c1",
			SpotPriceGold: decimal.NewFromInt(36000000), SpotPriceSilver: decimal.NewFromInt(480000),
			TotalAmount: decimal.NewFromInt(76000000), Fees: decimal.Zero,
			Status: models.TransactionCompleted,
			Lines: []models.TransactionLine{
				{ProductID: "p1", ItemSerialNumber: "SN-1-1100, SN-1-1101", Quantity: 2, UnitPrice: decimal.NewFromInt(38000000), Subtotal: decimal.NewFromInt(76000000)},
			},
		},
	}
}
