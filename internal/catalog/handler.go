package catalog

import (
	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// -------------------------
// Request/Response Types
// -------------------------

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	MetalType    string  `json:"metal_type" validate:"required,oneof=gold silver"`
	WeightGrams  float64 `json:"weight_grams" validate:"required,gt=0"`
	Purity       float64 `json:"purity" validate:"required,gt=0"`
	Manufacturer string  `json:"manufacturer"`
	Packaging    string  `json:"packaging"`
	SKU          string  `json:"sku"`
}

// GET /api/products
func ListProductsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(l.Products())
	}
}

// POST /api/products
func CreateProductHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		product, err := l.AddProduct(ledger.NewProduct{
			Name:         body.Name,
			MetalType:    models.MetalType(body.MetalType),
			WeightGrams:  body.WeightGrams,
			Purity:       body.Purity,
			Manufacturer: body.Manufacturer,
			Packaging:    body.Packaging,
			SKU:          body.SKU,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}
