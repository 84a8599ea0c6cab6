// Package report renders ledger exports for the back office. Everything is
// generated on the fly from the live ledger state; nothing is cached.
package report

import (
	"fmt"

	"goldshop-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/reports/ledger.xlsx
// One sheet per concern: current inventory and the transaction history.
func ExportLedgerHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := excelize.NewFile()
		defer f.Close()

		sheet := "Inventory"
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "report generation failed")
		}

		headers := []string{"SerialNumber", "Product", "Metal", "WeightGrams", "Status", "Location", "CostPrice", "PurchaseDate"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for i, it := range l.Items() {
			productName, metal, weight := "", "", 0.0
			if p, ok := l.ProductByID(it.ProductID); ok {
				productName, metal, weight = p.Name, string(p.MetalType), p.WeightGrams
			}
			row := i + 2
			f.SetCellValue(sheet, "A"+fmt.Sprint(row), it.SerialNumber)
			f.SetCellValue(sheet, "B"+fmt.Sprint(row), productName)
			f.SetCellValue(sheet, "C"+fmt.Sprint(row), metal)
			f.SetCellValue(sheet, "D"+fmt.Sprint(row), weight)
			f.SetCellValue(sheet, "E"+fmt.Sprint(row), string(it.Status))
			f.SetCellValue(sheet, "F"+fmt.Sprint(row), it.Location)
			f.SetCellValue(sheet, "G"+fmt.Sprint(row), it.CostPrice.String())
			f.SetCellValue(sheet, "H"+fmt.Sprint(row), it.PurchaseDate.Format("2006-01-02"))
		}

		txSheet := "Transactions"
		if _, err := f.NewSheet(txSheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "report generation failed")
		}
		txHeaders := []string{"ID", "Type", "Date", "Total", "SpotGold", "SpotSilver", "Status"}
		for i, h := range txHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(txSheet, cell, h)
		}
		for i, tx := range l.Transactions() {
			row := i + 2
			f.SetCellValue(txSheet, "A"+fmt.Sprint(row), tx.ID)
			f.SetCellValue(txSheet, "B"+fmt.Sprint(row), string(tx.Type))
			f.SetCellValue(txSheet, "C"+fmt.Sprint(row), tx.Date.Format("2006-01-02 15:04"))
			f.SetCellValue(txSheet, "D"+fmt.Sprint(row), tx.TotalAmount.String())
			f.SetCellValue(txSheet, "E"+fmt.Sprint(row), tx.SpotPriceGold.String())
			f.SetCellValue(txSheet, "F"+fmt.Sprint(row), tx.SpotPriceSilver.String())
			f.SetCellValue(txSheet, "G"+fmt.Sprint(row), string(tx.Status))
		}

		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="ledger.xlsx"`)
		if err := f.Write(c.Response().BodyWriter()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "report generation failed")
		}
		return nil
	}
}
