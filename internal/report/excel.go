package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"la-carta/pkg/models"
)

const sheetName = "Orders"

// Filename returns the report path for a calendar date. One file per date.
func Filename(dir string, date time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("orders_%s.xlsx", date.Format("2006-01-02")))
}

// ExcelWriter renders an archive snapshot as a spreadsheet, one row per
// order with per-order totals derived from the item lines.
type ExcelWriter struct {
	dir string
}

func NewExcelWriter(dir string) *ExcelWriter {
	return &ExcelWriter{dir: dir}
}

// Write creates the report file for the given date, replacing any previous
// one. The file is written to a temp name and renamed into place.
func (w *ExcelWriter) Write(date time.Time, orders []models.Order) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	widths := []float64{15, 10, 35, 15, 15, 15, 20, 15}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	header := []any{"Order ID", "Table", "Products", "Total Quantity",
		"Total Local", "Total Foreign", "Order Time", "Status"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, order := range orders {
		row := orderRow(order)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	path := Filename(w.dir, date)
	tmp := path + ".tmp"
	// SaveAs rejects the .tmp extension, so write the bytes directly.
	tmpFile, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := f.Write(tmpFile); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func orderRow(order models.Order) []any {
	lines := make([]string, 0, len(order.Items))
	totalQuantity := 0
	totalLocal := 0.0
	totalForeign := 0.0
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
		totalQuantity += item.Quantity
		totalLocal += item.PriceLocal * float64(item.Quantity)
		totalForeign += item.PriceForeign * float64(item.Quantity)
	}

	return []any{
		order.ID,
		order.Table,
		strings.Join(lines, "\n"),
		totalQuantity,
		totalLocal,
		strconv.FormatFloat(totalForeign, 'f', 2, 64),
		order.ArrivalTime,
		order.Status,
	}
}
