package buyback

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"goldshop-backend/internal/audit"
	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newQuoteApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	l := ledger.New(log, audit.NewTrail(), decimal.NewFromInt(36500000), decimal.NewFromInt(495000))
	l.Load(
		[]models.Product{{ID: "p1", Name: "1g gold bar", MetalType: models.MetalGold, WeightGrams: 1, Purity: 995}},
		nil, nil, nil,
	)

	app := fiber.New()
	app.Post("/api/buybacks/quote", QuoteBuybackHandler(l))
	return app
}

func TestQuoteKeepsFractionalDeduction(t *testing.T) {
	app := newQuoteApp()

	// 1.5 percent of 36,500,000 is 547,500; a deduction read as 15 percent
	// would price the item at 31,025,000 instead.
	req := httptest.NewRequest("POST", "/api/buybacks/quote",
		strings.NewReader(`{"product_id":"p1","deduction_mode":"percent","deduction_value":"1.5"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	var quote QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !quote.Price.Equal(decimal.NewFromInt(35952500)) {
		t.Fatalf("price = %s, expected 35952500 for a 1.5%% deduction", quote.Price)
	}
}

func TestQuoteRejectsMalformedDeduction(t *testing.T) {
	app := newQuoteApp()

	req := httptest.NewRequest("POST", "/api/buybacks/quote",
		strings.NewReader(`{"product_id":"p1","deduction_mode":"percent","deduction_value":"abc"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", res.StatusCode)
	}
}
