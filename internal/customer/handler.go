package customer

import (
	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=individual corporate"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	NationalID   string `json:"national_id"`
	EconomicCode string `json:"economic_code"`
	Province     string `json:"province"`
	City         string `json:"city"`
	Address      string `json:"address"`
	PostalCode   string `json:"postal_code"`
	Documents    bool   `json:"documents"`
}

// GET /api/customers
func ListCustomersHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(l.Customers())
	}
}

// GET /api/customers/:id
func GetCustomerHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cust, ok := l.CustomerByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "customer not found")
		}
		return c.JSON(cust)
	}
}

// POST /api/customers
func CreateCustomerHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cust, err := l.AddCustomer(ledger.NewCustomer{
			Name:         body.Name,
			Type:         models.CustomerType(body.Type),
			Phone:        body.Phone,
			Email:        body.Email,
			NationalID:   body.NationalID,
			EconomicCode: body.EconomicCode,
			Province:     body.Province,
			City:         body.City,
			Address:      body.Address,
			PostalCode:   body.PostalCode,
			Documents:    body.Documents,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(cust)
	}
}
