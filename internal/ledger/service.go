package ledger

import (
	"fmt"
	"strings"
	"time"

	"goldshop-backend/internal/audit"
	"goldshop-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// A product is considered low on stock at or below this many in-stock items.
const lowStockThreshold = 2

type StockInInput struct {
	ProductID   string
	Serials     []string
	CostPerItem decimal.Decimal
	Supplier    string
}

// StockIn books a purchase batch from a supplier: one new InStock item per
// serial, one Purchase transaction, one price snapshot. The batch is
// all-or-nothing: any serial already present in the ledger (or repeated in the
// batch) rejects the whole operation and reports the offenders.
func (l *Ledger) StockIn(in StockInInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	product, ok := l.productByID(in.ProductID)
	if !ok {
		return models.Transaction{}, validationErrorf("product %q not found", in.ProductID)
	}
	serials := cleanSerials(in.Serials)
	if len(serials) == 0 {
		return models.Transaction{}, validationErrorf("at least one serial number is required")
	}
	if in.CostPerItem.Sign() <= 0 {
		return models.Transaction{}, validationErrorf("cost per item must be positive")
	}

	var duplicates []string
	seen := make(map[string]bool, len(serials))
	for _, sn := range serials {
		if seen[sn] || l.itemBySerial(sn) != nil {
			duplicates = append(duplicates, sn)
		}
		seen[sn] = true
	}
	if len(duplicates) > 0 {
		return models.Transaction{}, &ValidationError{Message: "duplicate serial numbers", Serials: duplicates}
	}

	now := time.Now()
	txID := newTransactionID(prefixPurchase)
	for _, sn := range serials {
		l.items = append(l.items, models.Item{
			SerialNumber: sn,
			ProductID:    product.ID,
			Status:       models.ItemInStock,
			Location:     models.LocationStoreSafe,
			PurchaseDate: now,
			CostPrice:    in.CostPerItem,
			PurchaseLink: txID,
		})
	}

	total := in.CostPerItem.Mul(decimal.NewFromInt(int64(len(serials))))
	tx := models.Transaction{
		ID:              txID,
		Type:            models.TransactionPurchase,
		Date:            now,
		SupplierName:    strings.TrimSpace(in.Supplier),
		SpotPriceGold:   l.spotGold,
		SpotPriceSilver: l.spotSilver,
		TotalAmount:     total,
		Fees:            decimal.Zero,
		Status:          models.TransactionCompleted,
		Lines: []models.TransactionLine{{
			ProductID:        product.ID,
			ItemSerialNumber: strings.Join(serials, ", "),
			Quantity:         len(serials),
			UnitPrice:        in.CostPerItem,
			Subtotal:         total,
		}},
	}
	l.prependTransaction(tx)
	l.snapshot(txID, now)
	l.notify(models.NotificationSuccess, fmt.Sprintf("%d x %s added to stock.", len(serials), product.Name))

	l.logTransaction(tx, "stock-in completed")
	l.audit("transaction", tx, fmt.Sprintf("Purchase %s: %d x %s from %s", tx.ID, len(serials), product.Name, tx.SupplierName))
	return tx, nil
}

type SaleInput struct {
	Serials    []string
	CustomerID string
	Total      decimal.Decimal
}

// Sell moves the given items to a customer. Every serial must resolve to an
// InStock item; the ledger re-checks this itself instead of trusting the
// caller. The total comes from the pricing engine via the caller and is split
// equally across the lines.
func (l *Ledger) Sell(in SaleInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	serials := cleanSerials(in.Serials)
	if len(serials) == 0 {
		return models.Transaction{}, validationErrorf("at least one serial number is required")
	}
	if _, ok := l.customerByID(in.CustomerID); !ok {
		return models.Transaction{}, validationErrorf("customer %q not found", in.CustomerID)
	}
	if in.Total.Sign() <= 0 {
		return models.Transaction{}, validationErrorf("sale total must be positive")
	}

	// A serial repeated in the batch would sell the same physical item twice.
	var unavailable []string
	seen := make(map[string]bool, len(serials))
	for _, sn := range serials {
		item := l.itemBySerial(sn)
		if seen[sn] || item == nil || item.Status != models.ItemInStock {
			unavailable = append(unavailable, sn)
		}
		seen[sn] = true
	}
	if len(unavailable) > 0 {
		return models.Transaction{}, &ValidationError{Message: "items not available for sale", Serials: unavailable}
	}

	now := time.Now()
	txID := newTransactionID(prefixSale)
	unitPrice := in.Total.Div(decimal.NewFromInt(int64(len(serials))))

	lines := make([]models.TransactionLine, 0, len(serials))
	for _, sn := range serials {
		item := l.itemBySerial(sn)
		item.Status = models.ItemSold
		item.Location = models.LocationCustomer
		item.SaleLink = txID
		lines = append(lines, models.TransactionLine{
			ProductID:        item.ProductID,
			ItemSerialNumber: sn,
			Quantity:         1,
			UnitPrice:        unitPrice,
			Subtotal:         unitPrice,
		})
	}

	tx := models.Transaction{
		ID:              txID,
		Type:            models.TransactionSale,
		Date:            now,
		CustomerID:      in.CustomerID,
		SpotPriceGold:   l.spotGold,
		SpotPriceSilver: l.spotSilver,
		TotalAmount:     in.Total,
		Fees:            decimal.Zero,
		Status:          models.TransactionCompleted,
		Lines:           lines,
	}
	l.prependTransaction(tx)
	l.snapshot(txID, now)
	l.checkLowStock()

	l.logTransaction(tx, "sale completed")
	l.audit("transaction", tx, fmt.Sprintf("Sale %s: %d item(s) to customer %s", tx.ID, len(serials), in.CustomerID))
	return tx, nil
}

type BuybackInput struct {
	ProductID  string
	Serial     string
	Price      decimal.Decimal
	CustomerID string
}

// Buyback takes an item back from a customer at the quoted price. A serial
// known to the ledger is revived in place (re-valued, quarantined); an unknown
// serial becomes a fresh item via manual intake.
func (l *Ledger) Buyback(in BuybackInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	serial := strings.TrimSpace(in.Serial)
	if serial == "" {
		return models.Transaction{}, validationErrorf("serial number is required")
	}
	if _, ok := l.customerByID(in.CustomerID); !ok {
		return models.Transaction{}, validationErrorf("customer %q not found", in.CustomerID)
	}
	if in.Price.Sign() <= 0 {
		return models.Transaction{}, validationErrorf("buyback price must be positive")
	}

	now := time.Now()
	txID := newTransactionID(prefixBuyback)

	var productID string
	if existing := l.itemBySerial(serial); existing != nil {
		// Item returning to stock: cost history is overwritten on purpose,
		// only the latest valuation is kept.
		existing.Status = models.ItemInStock
		existing.Location = models.LocationQuarantine
		existing.CostPrice = in.Price
		existing.BuybackLink = txID
		productID = existing.ProductID
	} else {
		product, ok := l.productByID(in.ProductID)
		if !ok {
			return models.Transaction{}, validationErrorf("product %q not found", in.ProductID)
		}
		productID = product.ID
		l.items = append(l.items, models.Item{
			SerialNumber: serial,
			ProductID:    product.ID,
			Status:       models.ItemInStock,
			Location:     models.LocationQuarantine,
			PurchaseDate: now,
			CostPrice:    in.Price,
			Notes:        "Bought back from customer (Manual Intake)",
			BuybackLink:  txID,
		})
	}

	tx := models.Transaction{
		ID:              txID,
		Type:            models.TransactionBuyback,
		Date:            now,
		CustomerID:      in.CustomerID,
		SpotPriceGold:   l.spotGold,
		SpotPriceSilver: l.spotSilver,
		TotalAmount:     in.Price,
		Fees:            decimal.Zero,
		Status:          models.TransactionCompleted,
		Lines: []models.TransactionLine{{
			ProductID:        productID,
			ItemSerialNumber: serial,
			Quantity:         1,
			UnitPrice:        in.Price,
			Subtotal:         in.Price,
		}},
	}
	l.prependTransaction(tx)
	l.snapshot(txID, now)
	l.notify(models.NotificationInfo, fmt.Sprintf("Item %s bought back and returned to stock.", serial))

	l.logTransaction(tx, "buyback completed")
	l.audit("transaction", tx, fmt.Sprintf("Buyback %s: item %s at %s", tx.ID, serial, in.Price.String()))
	return tx, nil
}

type NewProduct struct {
	Name         string
	MetalType    models.MetalType
	WeightGrams  float64
	Purity       float64
	Manufacturer string
	Packaging    string
	SKU          string
}

// AddProduct appends a catalog definition. Products are never updated or
// deleted afterwards.
func (l *Ledger) AddProduct(in NewProduct) (models.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, validationErrorf("product name is required")
	}
	if in.MetalType != models.MetalGold && in.MetalType != models.MetalSilver {
		return models.Product{}, validationErrorf("metal type must be gold or silver")
	}
	if in.WeightGrams <= 0 {
		return models.Product{}, validationErrorf("weight must be positive")
	}
	if in.Purity <= 0 {
		return models.Product{}, validationErrorf("purity must be positive")
	}

	p := models.Product{
		ID:           newEpochID("P"),
		Name:         name,
		MetalType:    in.MetalType,
		WeightGrams:  in.WeightGrams,
		Purity:       in.Purity,
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Packaging:    strings.TrimSpace(in.Packaging),
		SKU:          strings.TrimSpace(in.SKU),
	}
	l.products = append(l.products, p)
	l.notify(models.NotificationSuccess, fmt.Sprintf("New product %q added to the catalog.", p.Name))

	l.audit("product", p, fmt.Sprintf("Product %s defined: %s", p.ID, p.Name))
	return p, nil
}

type NewCustomer struct {
	Name         string
	Type         models.CustomerType
	Phone        string
	Email        string
	NationalID   string
	EconomicCode string
	Province     string
	City         string
	Address      string
	PostalCode   string
	Documents    bool
}

func (l *Ledger) AddCustomer(in NewCustomer) (models.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Customer{}, validationErrorf("customer name is required")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return models.Customer{}, validationErrorf("customer phone is required")
	}
	if in.Type != models.CustomerIndividual && in.Type != models.CustomerCorporate {
		return models.Customer{}, validationErrorf("customer type must be individual or corporate")
	}

	c := models.Customer{
		ID:           newEpochID("c"),
		Name:         name,
		Type:         in.Type,
		Phone:        phone,
		Email:        strings.TrimSpace(in.Email),
		NationalID:   strings.TrimSpace(in.NationalID),
		EconomicCode: strings.TrimSpace(in.EconomicCode),
		Province:     strings.TrimSpace(in.Province),
		City:         strings.TrimSpace(in.City),
		Address:      strings.TrimSpace(in.Address),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		Documents:    in.Documents,
	}
	l.customers = append(l.customers, c)
	l.notify(models.NotificationSuccess, fmt.Sprintf("New customer (%s) added.", c.Name))

	l.audit("customer", c, fmt.Sprintf("Customer %s created: %s", c.ID, c.Name))
	return c, nil
}

// checkLowStock scans every product after a completed sale and emits one
// warning per product at or below the threshold. Repeated breaches across
// sales emit repeated warnings; there is no deduplication.
func (l *Ledger) checkLowStock() {
	for _, p := range l.products {
		count := 0
		for i := range l.items {
			if l.items[i].ProductID == p.ID && l.items[i].Status == models.ItemInStock {
				count++
			}
		}
		if count <= lowStockThreshold {
			l.notify(models.NotificationWarning, fmt.Sprintf("Low stock warning: %s is down to %d unit(s).", p.Name, count))
		}
	}
}

func (l *Ledger) logTransaction(tx models.Transaction, msg string) {
	l.log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"type":           tx.Type,
		"total":          tx.TotalAmount.String(),
		"lines":          len(tx.Lines),
	}).Info(msg)
}

func (l *Ledger) audit(entityType string, entity any, description string) {
	if l.trail == nil {
		return
	}
	var id string
	switch e := entity.(type) {
	case models.Transaction:
		id = e.ID
	case models.Product:
		id = e.ID
	case models.Customer:
		id = e.ID
	}
	l.trail.Write(audit.Options{
		EntityType:  entityType,
		EntityID:    id,
		Action:      models.AuditActionCreate,
		Description: description,
		After:       entity,
	})
}
