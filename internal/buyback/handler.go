package buyback

import (
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

type QuoteRequest struct {
	// Either a known serial or an explicit product for manual intake.
	SerialNumber string `json:"serial_number"`
	ProductID    string `json:"product_id"`

	DeductionMode  string `json:"deduction_mode" validate:"omitempty,oneof=percent fixed_per_gram"`
	DeductionValue string `json:"deduction_value"`
	PackagingFee   string `json:"packaging_fee"`
}

type QuoteResponse struct {
	ProductID string          `json:"product_id"`
	SpotPrice decimal.Decimal `json:"spot_price"`
	Price     decimal.Decimal `json:"price"`
}

type CompleteBuybackRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	ProductID    string `json:"product_id"`
	CustomerID   string `json:"customer_id" validate:"required"`
	Price        string `json:"price" validate:"required"`
}

// POST /api/buybacks/quote
// Prices taking an item back at the live spot rate. The default deduction is
// the standard buyback margin; a zero or negative result is rejected so the
// POS never offers to pay nothing.
func QuoteBuybackHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body QuoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		product, err := resolveProduct(l, body.SerialNumber, body.ProductID)
		if err != nil {
			return err
		}

		// The deduction value is a plain number (a rate or per-gram figure),
		// not a display-formatted rial amount; "1.5" must stay 1.5.
		deduction := pricing.Markup{Mode: pricing.MarkupPercent, Value: pricing.DefaultBuybackMargin}
		if body.DeductionMode != "" {
			value, err := decimal.NewFromString(body.DeductionValue)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid deduction value")
			}
			deduction = pricing.Markup{Mode: pricing.MarkupMode(body.DeductionMode), Value: value}
		}
		if err := deduction.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		gold, silver := l.SpotPrices()
		spot := gold
		if product.MetalType == models.MetalSilver {
			spot = silver
		}

		price := pricing.BuybackPrice(spot, product.WeightGrams, deduction, money.ParseAmount(body.PackagingFee))
		if price.Sign() <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "deduction and fees exceed the item value")
		}
		return c.JSON(QuoteResponse{ProductID: product.ID, SpotPrice: spot, Price: price})
	}
}

// POST /api/buybacks
func CompleteBuybackHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CompleteBuybackRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tx, err := l.Buyback(ledger.BuybackInput{
			ProductID:  body.ProductID,
			Serial:     body.SerialNumber,
			Price:      money.ParseAmount(body.Price),
			CustomerID: body.CustomerID,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}

func resolveProduct(l *ledger.Ledger, serial, productID string) (models.Product, error) {
	if serial != "" {
		if item, ok := l.ItemBySerial(serial); ok {
			if p, ok := l.ProductByID(item.ProductID); ok {
				return p, nil
			}
		}
	}
	if productID != "" {
		if p, ok := l.ProductByID(productID); ok {
			return p, nil
		}
	}
	return models.Product{}, fiber.NewError(fiber.StatusBadRequest, "quote needs a known serial or product")
}
