package pos

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

type SpotPricesResponse struct {
	Gold   decimal.Decimal `json:"gold"`
	Silver decimal.Decimal `json:"silver"`
}

type UpdateSpotPricesRequest struct {
	Gold   string `json:"gold" validate:"required"`
	Silver string `json:"silver" validate:"required"`
}

type QuoteRequest struct {
	Serials       []string `json:"serials" validate:"required,min=1"`
	Ojorat        string   `json:"ojorat"`
	MarginPercent string   `json:"margin_percent"`
}

type QuoteLine struct {
	SerialNumber string          `json:"serial_number"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
}

type QuoteResponse struct {
	Lines []QuoteLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type CompleteSaleRequest struct {
	Serials    []string `json:"serials" validate:"required,min=1"`
	CustomerID string   `json:"customer_id" validate:"required"`
	Total      string   `json:"total" validate:"required"`
}

// GET /api/prices
func GetSpotPricesHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gold, silver := l.SpotPrices()
		return c.JSON(SpotPricesResponse{Gold: gold, Silver: silver})
	}
}

// PUT /api/prices
// Accepts formatted amounts, including Persian digits and thousands separators.
func UpdateSpotPricesHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateSpotPricesRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		gold := money.ParseAmount(body.Gold)
		silver := money.ParseAmount(body.Silver)
		if gold.Sign() <= 0 || silver.Sign() <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "spot prices must be positive")
		}

		l.SetSpotPrices(gold, silver)
		gold, silver = l.SpotPrices()
		return c.JSON(SpotPricesResponse{Gold: gold, Silver: silver})
	}
}

// POST /api/sales/quote
// Prices each item at the live spot rate without touching the ledger. The POS
// shows the quote and posts the accepted total back on completion.
func QuoteSaleHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body QuoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ojorat := pricing.DefaultOjorat
		if body.Ojorat != "" {
			ojorat = money.ParseAmount(body.Ojorat)
		}
		// Percent, not a formatted rial amount; "7.5" must stay 7.5.
		margin := pricing.DefaultProfitMargin
		if body.MarginPercent != "" {
			m, err := decimal.NewFromString(body.MarginPercent)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid margin percent")
			}
			margin = m
		}

		gold, silver := l.SpotPrices()
		resp := QuoteResponse{Total: decimal.Zero}
		for _, sn := range body.Serials {
			item, ok := l.ItemBySerial(sn)
			if !ok || item.Status != models.ItemInStock {
				return &ledger.ValidationError{Message: "items not available for sale", Serials: []string{sn}}
			}
			product, ok := l.ProductByID(item.ProductID)
			if !ok {
				return fiber.NewError(fiber.StatusInternalServerError, "item references an unknown product")
			}

			spot := gold
			if product.MetalType == models.MetalSilver {
				spot = silver
			}
			price := pricing.SalePrice(spot, product.WeightGrams, ojorat, margin)
			resp.Lines = append(resp.Lines, QuoteLine{
				SerialNumber: item.SerialNumber,
				ProductID:    product.ID,
				ProductName:  product.Name,
				Price:        price,
			})
			resp.Total = resp.Total.Add(price)
		}
		return c.JSON(resp)
	}
}

// POST /api/sales
func CompleteSaleHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CompleteSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tx, err := l.Sell(ledger.SaleInput{
			Serials:    body.Serials,
			CustomerID: body.CustomerID,
			Total:      money.ParseAmount(body.Total),
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}
