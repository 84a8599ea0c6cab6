package inventory

import (
	"strings"

	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"
	"goldshop-backend/internal/money"
	"goldshop-backend/internal/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// -------------------------
// Request/Response Types
// -------------------------

type StockInRequest struct {
	ProductID   string   `json:"product_id" validate:"required"`
	Serials     []string `json:"serials" validate:"required,min=1"`
	CostPerItem string   `json:"cost_per_item" validate:"required"`
	Supplier    string   `json:"supplier"`
}

type StockInPreviewRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	MarkupMode  string `json:"markup_mode" validate:"required,oneof=percent fixed_per_gram"`
	MarkupValue string `json:"markup_value"`
	UseDefaults bool   `json:"use_defaults"`
}

type StockInPreviewResponse struct {
	ProductID   string          `json:"product_id"`
	SpotPrice   decimal.Decimal `json:"spot_price"`
	CostPerItem decimal.Decimal `json:"cost_per_item"`
}

// GET /api/items
// Optional filters: ?status=, ?product_id=, ?location=, ?serial= (substring).
func ListItemsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		productID := c.Query("product_id")
		location := c.Query("location")
		serial := strings.ToLower(c.Query("serial"))

		items := l.Items()
		filtered := make([]models.Item, 0, len(items))
		for _, it := range items {
			if status != "" && string(it.Status) != status {
				continue
			}
			if productID != "" && it.ProductID != productID {
				continue
			}
			if location != "" && it.Location != location {
				continue
			}
			if serial != "" && !strings.Contains(strings.ToLower(it.SerialNumber), serial) {
				continue
			}
			filtered = append(filtered, it)
		}
		return c.JSON(filtered)
	}
}

// GET /api/items/:serial
func GetItemHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, ok := l.ItemBySerial(c.Params("serial"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		}
		return c.JSON(item)
	}
}

// POST /api/items/stock-in
func StockInHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StockInRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tx, err := l.StockIn(ledger.StockInInput{
			ProductID:   body.ProductID,
			Serials:     body.Serials,
			CostPerItem: money.ParseAmount(body.CostPerItem),
			Supplier:    body.Supplier,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}

// POST /api/items/stock-in/preview
// Prices one item under the requested markup without touching the ledger.
func StockInPreviewHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StockInPreviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		product, ok := l.ProductByID(body.ProductID)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "product not found")
		}

		// Markup values are plain numbers, not display-formatted rials; a
		// percent sent as "1.5" must stay 1.5.
		markup := pricing.Markup{Mode: pricing.MarkupMode(body.MarkupMode)}
		switch {
		case body.UseDefaults && markup.Mode == pricing.MarkupPercent:
			markup.Value = pricing.DefaultStockInPercent
		case body.UseDefaults:
			markup.Value = pricing.DefaultStockInPerGram
		default:
			value, err := decimal.NewFromString(body.MarkupValue)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid markup value")
			}
			markup.Value = value
		}
		if err := markup.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spot := spotFor(l, product.MetalType)
		return c.JSON(StockInPreviewResponse{
			ProductID:   product.ID,
			SpotPrice:   spot,
			CostPerItem: pricing.StockInCost(spot, product.WeightGrams, markup),
		})
	}
}

func spotFor(l *ledger.Ledger, metal models.MetalType) decimal.Decimal {
	gold, silver := l.SpotPrices()
	if metal == models.MetalSilver {
		return silver
	}
	return gold
}
