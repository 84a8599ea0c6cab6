package ledger

import (
	"io"
	"regexp"
	"strings"
	"testing"

	"goldshop-backend/internal/audit"
	"goldshop-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestLedger() *Ledger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	l := New(log, audit.NewTrail(), decimal.NewFromInt(36500000), decimal.NewFromInt(495000))
	l.Load(
		[]models.Product{
			{ID: "p1", Name: "1g gold bar", MetalType: models.MetalGold, WeightGrams: 1, Purity: 995},
			{ID: "p2", Name: "10g gold bar", MetalType: models.MetalGold, WeightGrams: 10, Purity: 995},
		},
		[]models.Customer{
			{ID: "c1", Name: "Ali Rezaei", Type: models.CustomerIndividual, Phone: "09123456789"},
		},
		nil, nil,
	)
	return l
}

func stockIn(t *testing.T, l *Ledger, productID string, serials ...string) models.Transaction {
	t.Helper()
	tx, err := l.StockIn(StockInInput{
		ProductID:   productID,
		Serials:     serials,
		CostPerItem: decimal.NewFromInt(35000000),
		Supplier:    "Parsis",
	})
	if err != nil {
		t.Fatalf("StockIn(%v): %v", serials, err)
	}
	return tx
}

func TestStockInCreatesItemsAndPurchase(t *testing.T) {
	l := newTestLedger()
	tx := stockIn(t, l, "p1", "SN-1", "SN-2", "SN-3")

	if ok, _ := regexp.MatchString(`^PUR-\d{8}$`, tx.ID); !ok {
		t.Fatalf("unexpected purchase transaction ID %q", tx.ID)
	}
	if !tx.TotalAmount.Equal(decimal.NewFromInt(105000000)) {
		t.Fatalf("total = %s, expected 3 * cost", tx.TotalAmount)
	}
	if len(tx.Lines) != 1 || tx.Lines[0].Quantity != 3 {
		t.Fatalf("expected one batch line with quantity 3, got %+v", tx.Lines)
	}
	if tx.Lines[0].ItemSerialNumber != "SN-1, SN-2, SN-3" {
		t.Fatalf("serials not comma-joined: %q", tx.Lines[0].ItemSerialNumber)
	}

	items := l.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Status != models.ItemInStock || it.Location != models.LocationStoreSafe {
			t.Fatalf("item %s not stocked into the safe: %+v", it.SerialNumber, it)
		}
		if it.PurchaseLink != tx.ID {
			t.Fatalf("item %s not linked to purchase %s", it.SerialNumber, tx.ID)
		}
	}
}

func TestStockInRejectsDuplicateSerialsAtomically(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p1", "SN-1")

	before := len(l.Items())
	_, err := l.StockIn(StockInInput{
		ProductID:   "p1",
		Serials:     []string{"SN-NEW", "SN-1", "SN-NEW-2"},
		CostPerItem: decimal.NewFromInt(1000),
		Supplier:    "Parsis",
	})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Serials) != 1 || ve.Serials[0] != "SN-1" {
		t.Fatalf("expected SN-1 reported, got %v", ve.Serials)
	}
	if len(l.Items()) != before {
		t.Fatal("rejected batch must not insert any items")
	}

	// Repeats inside a single batch break global uniqueness just the same.
	_, err = l.StockIn(StockInInput{
		ProductID:   "p1",
		Serials:     []string{"SN-X", "SN-X"},
		CostPerItem: decimal.NewFromInt(1000),
		Supplier:    "Parsis",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for in-batch repeat, got %v", err)
	}
	if len(l.Items()) != before {
		t.Fatal("rejected batch must not insert any items")
	}
}

func TestEveryCompletedTransactionGetsOneSnapshot(t *testing.T) {
	l := newTestLedger()
	gold := decimal.NewFromInt(37000000)
	silver := decimal.NewFromInt(500000)
	l.SetSpotPrices(gold, silver)

	purchase := stockIn(t, l, "p1", "SN-1", "SN-2", "SN-3")
	sale, err := l.Sell(SaleInput{Serials: []string{"SN-1"}, CustomerID: "c1", Total: decimal.NewFromInt(38000000)})
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	buyback, err := l.Buyback(BuybackInput{Serial: "SN-1", Price: decimal.NewFromInt(36000000), CustomerID: "c1"})
	if err != nil {
		t.Fatalf("Buyback: %v", err)
	}

	for _, tx := range []models.Transaction{purchase, sale, buyback} {
		matches := 0
		for _, snap := range l.Snapshots() {
			if snap.TransactionID != tx.ID {
				continue
			}
			matches++
			if !snap.GoldPrice.Equal(gold) || !snap.SilverPrice.Equal(silver) {
				t.Fatalf("snapshot for %s has prices %s/%s, expected %s/%s",
					tx.ID, snap.GoldPrice, snap.SilverPrice, gold, silver)
			}
			if snap.Source != models.SnapshotManual {
				t.Fatalf("snapshot source = %q", snap.Source)
			}
		}
		if matches != 1 {
			t.Fatalf("transaction %s has %d snapshots, expected exactly one", tx.ID, matches)
		}
		if !tx.SpotPriceGold.Equal(gold) || !tx.SpotPriceSilver.Equal(silver) {
			t.Fatalf("transaction %s did not capture the live spot pair", tx.ID)
		}
	}
}

func TestSellSplitsTotalEquallyAndMarksItems(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p2", "SN-A", "SN-B", "SN-C")

	total := decimal.NewFromInt(900000000)
	tx, err := l.Sell(SaleInput{Serials: []string{"SN-A", "SN-B", "SN-C"}, CustomerID: "c1", Total: total})
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if ok, _ := regexp.MatchString(`^INV-\d{8}$`, tx.ID); !ok {
		t.Fatalf("unexpected sale transaction ID %q", tx.ID)
	}

	expected := total.Div(decimal.NewFromInt(3))
	for _, line := range tx.Lines {
		if line.Quantity != 1 {
			t.Fatalf("sale line quantity = %d", line.Quantity)
		}
		if !line.UnitPrice.Equal(expected) || !line.Subtotal.Equal(expected) {
			t.Fatalf("line price %s/%s, expected the equal split %s", line.UnitPrice, line.Subtotal, expected)
		}
	}

	for _, sn := range []string{"SN-A", "SN-B", "SN-C"} {
		it, ok := l.ItemBySerial(sn)
		if !ok {
			t.Fatalf("item %s vanished", sn)
		}
		if it.Status != models.ItemSold || it.Location != models.LocationCustomer || it.SaleLink != tx.ID {
			t.Fatalf("item %s not handed to customer: %+v", sn, it)
		}
	}
}

func TestSellRejectsUnavailableSerials(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p1", "SN-1", "SN-2")
	if _, err := l.Sell(SaleInput{Serials: []string{"SN-1"}, CustomerID: "c1", Total: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("Sell: %v", err)
	}

	// SN-1 is now Sold, SN-404 was never stocked.
	_, err := l.Sell(SaleInput{Serials: []string{"SN-2", "SN-1", "SN-404"}, CustomerID: "c1", Total: decimal.NewFromInt(1000)})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Serials) != 2 {
		t.Fatalf("expected SN-1 and SN-404 reported, got %v", ve.Serials)
	}
	if it, _ := l.ItemBySerial("SN-2"); it.Status != models.ItemInStock {
		t.Fatal("failed sale must not touch item state")
	}
}

func TestSellRejectsRepeatedSerialInBatch(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p1", "SN-1")
	txsBefore := len(l.Transactions())

	_, err := l.Sell(SaleInput{Serials: []string{"SN-1", "SN-1"}, CustomerID: "c1", Total: decimal.NewFromInt(2000)})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError for repeated serial, got %v", err)
	}
	if len(ve.Serials) != 1 || ve.Serials[0] != "SN-1" {
		t.Fatalf("expected the repeated SN-1 reported, got %v", ve.Serials)
	}
	if it, _ := l.ItemBySerial("SN-1"); it.Status != models.ItemInStock {
		t.Fatal("rejected sale must not mark the item sold")
	}
	if len(l.Transactions()) != txsBefore {
		t.Fatal("rejected sale must not append a transaction")
	}
}

func TestBuybackRevivesSoldItem(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p1", "SN-1")
	if _, err := l.Sell(SaleInput{Serials: []string{"SN-1"}, CustomerID: "c1", Total: decimal.NewFromInt(38000000)}); err != nil {
		t.Fatalf("Sell: %v", err)
	}

	price := decimal.NewFromInt(35952500)
	tx, err := l.Buyback(BuybackInput{Serial: "SN-1", Price: price, CustomerID: "c1"})
	if err != nil {
		t.Fatalf("Buyback: %v", err)
	}
	if ok, _ := regexp.MatchString(`^BB-\d{8}$`, tx.ID); !ok {
		t.Fatalf("unexpected buyback transaction ID %q", tx.ID)
	}

	it, ok := l.ItemBySerial("SN-1")
	if !ok {
		t.Fatal("item vanished after buyback")
	}
	if it.Status != models.ItemInStock || it.Location != models.LocationQuarantine {
		t.Fatalf("revived item state: %+v", it)
	}
	if it.ProductID != "p1" {
		t.Fatalf("buyback changed the product reference to %q", it.ProductID)
	}
	// Re-valued: prior cost history is not retained.
	if !it.CostPrice.Equal(price) {
		t.Fatalf("cost price %s, expected buyback price %s", it.CostPrice, price)
	}
	if it.BuybackLink != tx.ID {
		t.Fatalf("item not linked to buyback %s", tx.ID)
	}
}

func TestBuybackManualIntakeOfUnknownSerial(t *testing.T) {
	l := newTestLedger()
	tx, err := l.Buyback(BuybackInput{
		ProductID:  "p1",
		Serial:     "SN-OUTSIDE",
		Price:      decimal.NewFromInt(34000000),
		CustomerID: "c1",
	})
	if err != nil {
		t.Fatalf("Buyback: %v", err)
	}

	it, ok := l.ItemBySerial("SN-OUTSIDE")
	if !ok {
		t.Fatal("manual intake did not create the item")
	}
	if it.Status != models.ItemInStock || it.Location != models.LocationQuarantine {
		t.Fatalf("intake item state: %+v", it)
	}
	if !strings.Contains(it.Notes, "Manual Intake") {
		t.Fatalf("intake note missing: %q", it.Notes)
	}
	if it.BuybackLink != tx.ID {
		t.Fatal("intake item not linked to the buyback transaction")
	}
}

func TestLowStockWarningAfterSale(t *testing.T) {
	l := newTestLedger()
	stockIn(t, l, "p1", "SN-1", "SN-2", "SN-3")
	stockIn(t, l, "p2", "SN-10", "SN-11", "SN-12", "SN-13")
	l.ClearNotifications()

	// 3 -> 2 in-stock for p1; p2 stays above the threshold.
	if _, err := l.Sell(SaleInput{Serials: []string{"SN-1"}, CustomerID: "c1", Total: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("Sell: %v", err)
	}

	var p1Warnings, p2Warnings int
	for _, n := range l.Notifications() {
		if n.Type != models.NotificationWarning {
			continue
		}
		if strings.Contains(n.Message, "1g gold bar") {
			p1Warnings++
		}
		if strings.Contains(n.Message, "10g gold bar") {
			p2Warnings++
		}
	}
	if p1Warnings != 1 {
		t.Fatalf("expected exactly one low-stock warning for p1, got %d", p1Warnings)
	}
	if p2Warnings != 0 {
		t.Fatalf("p2 is not low on stock, got %d warnings", p2Warnings)
	}
}

func TestTransactionsAndNotificationsNewestFirst(t *testing.T) {
	l := newTestLedger()
	first := stockIn(t, l, "p1", "SN-1")
	second := stockIn(t, l, "p1", "SN-2")

	txs := l.Transactions()
	if len(txs) != 2 || txs[0].ID != second.ID || txs[1].ID != first.ID {
		t.Fatalf("transactions not newest first: %v then %v", txs[0].ID, txs[1].ID)
	}

	notifs := l.Notifications()
	if len(notifs) < 2 {
		t.Fatalf("expected stock-in notifications, got %d", len(notifs))
	}
	if !notifs[0].Date.After(notifs[len(notifs)-1].Date) && !notifs[0].Date.Equal(notifs[len(notifs)-1].Date) {
		t.Fatal("notifications not newest first")
	}

	l.ClearNotifications()
	if len(l.Notifications()) != 0 {
		t.Fatal("clear-all must empty the notification list")
	}
}

func TestAddProductAndCustomerIDs(t *testing.T) {
	l := newTestLedger()
	p, err := l.AddProduct(NewProduct{
		Name:        "50g gold bar",
		MetalType:   models.MetalGold,
		WeightGrams: 50,
		Purity:      999.9,
	})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if ok, _ := regexp.MatchString(`^P-\d+$`, p.ID); !ok {
		t.Fatalf("unexpected product ID %q", p.ID)
	}

	c, err := l.AddCustomer(NewCustomer{Name: "Sara", Type: models.CustomerIndividual, Phone: "0912"})
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	if ok, _ := regexp.MatchString(`^c-\d+$`, c.ID); !ok {
		t.Fatalf("unexpected customer ID %q", c.ID)
	}

	if _, err := l.AddProduct(NewProduct{Name: "", MetalType: models.MetalGold, WeightGrams: 1, Purity: 999}); !IsValidation(err) {
		t.Fatalf("empty name should be a validation error, got %v", err)
	}
}
