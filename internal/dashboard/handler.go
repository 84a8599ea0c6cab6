// Package dashboard aggregates ledger state into the figures the back office
// screen shows: stock composition, realized profit and the recent sales trend.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// -------------------------
// Response Types
// -------------------------

type LowStockProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	InStock   int    `json:"in_stock"`
}

type DailySales struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

type StatsResponse struct {
	// Inventory, valued at the live spot pair.
	StockValue      decimal.Decimal `json:"stock_value"`
	StockCount      int             `json:"stock_count"`
	GoldGrams       float64         `json:"gold_grams"`
	SilverGrams     float64         `json:"silver_grams"`
	PendingBuybacks int             `json:"pending_buybacks"`

	// Realized figures over completed sales.
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CostOfGoodsSold decimal.Decimal `json:"cost_of_goods_sold"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	NetProfitGrams  float64         `json:"net_profit_grams"` // gold-gram equivalent
	ProfitMargin    float64         `json:"profit_margin"`    // percent
	SalesCount      int             `json:"sales_count"`
	TodayRevenue    decimal.Decimal `json:"today_revenue"`
	TodaySalesCount int             `json:"today_sales_count"`

	CustomerCount  int               `json:"customer_count"`
	LowStock       []LowStockProduct `json:"low_stock"`
	SalesLast7Days []DailySales      `json:"sales_last_7_days"`
}

const lowStockThreshold = 2

// GET /api/dashboard
func StatsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := l.Items()
		products := l.Products()
		spotGold, spotSilver := l.SpotPrices()
		today := time.Now().Format("2006-01-02")

		productByID := make(map[string]models.Product, len(products))
		for _, p := range products {
			productByID[p.ID] = p
		}
		costBySerial := make(map[string]decimal.Decimal, len(items))

		resp := StatsResponse{
			StockValue:      decimal.Zero,
			TotalRevenue:    decimal.Zero,
			CostOfGoodsSold: decimal.Zero,
			TodayRevenue:    decimal.Zero,
			CustomerCount:   len(l.Customers()),
		}

		inStockPerProduct := make(map[string]int, len(products))
		for _, it := range items {
			costBySerial[it.SerialNumber] = it.CostPrice
			if it.Status == models.ItemBuybackPending {
				resp.PendingBuybacks++
			}
			if it.Status != models.ItemInStock {
				continue
			}
			resp.StockCount++
			inStockPerProduct[it.ProductID]++
			p, ok := productByID[it.ProductID]
			if !ok {
				continue
			}
			weight := decimal.NewFromFloat(p.WeightGrams)
			if p.MetalType == models.MetalGold {
				resp.GoldGrams += p.WeightGrams
				resp.StockValue = resp.StockValue.Add(spotGold.Mul(weight))
			} else {
				resp.SilverGrams += p.WeightGrams
				resp.StockValue = resp.StockValue.Add(spotSilver.Mul(weight))
			}
		}
		for _, p := range products {
			if n := inStockPerProduct[p.ID]; n <= lowStockThreshold {
				resp.LowStock = append(resp.LowStock, LowStockProduct{ProductID: p.ID, Name: p.Name, InStock: n})
			}
		}

		// COGS is resolved per serial: each sold item contributes the cost
		// price it carried, not an average.
		byDay := map[string]*DailySales{}
		for _, tx := range l.Transactions() {
			if tx.Type != models.TransactionSale || tx.Status != models.TransactionCompleted {
				continue
			}
			resp.SalesCount++
			resp.TotalRevenue = resp.TotalRevenue.Add(tx.TotalAmount)

			saleCost := decimal.Zero
			for _, line := range tx.Lines {
				for _, sn := range strings.Split(line.ItemSerialNumber, ",") {
					if cost, ok := costBySerial[strings.TrimSpace(sn)]; ok {
						saleCost = saleCost.Add(cost)
					}
				}
			}
			resp.CostOfGoodsSold = resp.CostOfGoodsSold.Add(saleCost)

			day := tx.Date.Format("2006-01-02")
			if day == today {
				resp.TodayRevenue = resp.TodayRevenue.Add(tx.TotalAmount)
				resp.TodaySalesCount++
			}
			if byDay[day] == nil {
				byDay[day] = &DailySales{Date: day, Revenue: decimal.Zero, Profit: decimal.Zero}
			}
			byDay[day].Revenue = byDay[day].Revenue.Add(tx.TotalAmount)
			byDay[day].Profit = byDay[day].Profit.Add(tx.TotalAmount.Sub(saleCost))
		}

		resp.NetProfit = resp.TotalRevenue.Sub(resp.CostOfGoodsSold)
		if resp.TotalRevenue.Sign() > 0 {
			resp.ProfitMargin, _ = resp.NetProfit.Div(resp.TotalRevenue).Mul(decimal.NewFromInt(100)).Float64()
		}
		if spotGold.Sign() > 0 {
			resp.NetProfitGrams, _ = resp.NetProfit.Div(spotGold).Float64()
		}

		days := make([]string, 0, len(byDay))
		for day := range byDay {
			days = append(days, day)
		}
		sort.Strings(days)
		if len(days) > 7 {
			days = days[len(days)-7:]
		}
		resp.SalesLast7Days = make([]DailySales, 0, len(days))
		for _, day := range days {
			resp.SalesLast7Days = append(resp.SalesLast7Days, *byDay[day])
		}

		return c.JSON(resp)
	}
}
