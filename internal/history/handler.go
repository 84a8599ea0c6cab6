package history

import (
	"strings"

	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// -------------------------
// Response Types
// -------------------------

type InvoiceLine struct {
	ProductName  string          `json:"product_name"`
	WeightGrams  float64         `json:"weight_grams"`
	Purity       float64         `json:"purity"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type InvoiceResponse struct {
	TransactionID   string                 `json:"transaction_id"`
	Type            models.TransactionType `json:"type"`
	Date            string                 `json:"date"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	SupplierName    string                 `json:"supplier_name,omitempty"`
	Lines           []InvoiceLine          `json:"lines"`
	SpotPriceGold   decimal.Decimal        `json:"spot_price_gold"`
	SpotPriceSilver decimal.Decimal        `json:"spot_price_silver"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
}

// GET /api/transactions
// Optional filters: ?type=, ?status=, ?q= (matched against ID, customer and
// supplier). Result order is newest first.
func ListTransactionsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txType := c.Query("type")
		status := c.Query("status")
		q := strings.ToLower(c.Query("q"))

		txs := l.Transactions()
		filtered := make([]models.Transaction, 0, len(txs))
		for _, tx := range txs {
			if txType != "" && string(tx.Type) != txType {
				continue
			}
			if status != "" && string(tx.Status) != status {
				continue
			}
			if q != "" && !matchesQuery(l, tx, q) {
				continue
			}
			filtered = append(filtered, tx)
		}
		return c.JSON(filtered)
	}
}

// GET /api/transactions/:id
func GetTransactionHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, ok := l.TransactionByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return c.JSON(tx)
	}
}

// GET /api/transactions/:id/invoice
// Rebuilds a printable invoice from the ledger record. Catalog entries are
// never deleted so missing references only happen on corrupted fixtures; they
// render as placeholders rather than failing the whole invoice.
func GetInvoiceHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, ok := l.TransactionByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}

		inv := InvoiceResponse{
			TransactionID:   tx.ID,
			Type:            tx.Type,
			Date:            tx.Date.Format("2006-01-02 15:04"),
			SupplierName:    tx.SupplierName,
			SpotPriceGold:   tx.SpotPriceGold,
			SpotPriceSilver: tx.SpotPriceSilver,
			TotalAmount:     tx.TotalAmount,
		}
		if tx.CustomerID != "" {
			if cust, ok := l.CustomerByID(tx.CustomerID); ok {
				inv.CustomerName = cust.Name
			} else {
				inv.CustomerName = "unknown customer"
			}
		}
		for _, line := range tx.Lines {
			name, weight, purity := "unknown product", 0.0, 0.0
			if p, ok := l.ProductByID(line.ProductID); ok {
				name, weight, purity = p.Name, p.WeightGrams, p.Purity
			}
			inv.Lines = append(inv.Lines, InvoiceLine{
				ProductName:  name,
				WeightGrams:  weight,
				Purity:       purity,
				SerialNumber: line.ItemSerialNumber,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				Subtotal:     line.Subtotal,
			})
		}
		return c.JSON(inv)
	}
}

// GET /api/price-snapshots
func ListSnapshotsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(l.Snapshots())
	}
}

func matchesQuery(l *ledger.Ledger, tx models.Transaction, q string) bool {
	if strings.Contains(strings.ToLower(tx.ID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.SupplierName), q) {
		return true
	}
	if tx.CustomerID != "" {
		if cust, ok := l.CustomerByID(tx.CustomerID); ok {
			if strings.Contains(strings.ToLower(cust.Name), q) {
				return true
			}
		}
	}
	for _, line := range tx.Lines {
		if strings.Contains(strings.ToLower(line.ItemSerialNumber), q) {
			return true
		}
	}
	return false
}
