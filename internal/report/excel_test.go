package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"la-carta/pkg/models"
)

var reportDate = time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC)

func TestFilenameIsDeterministicPerDate(t *testing.T) {
	require.Equal(t, "reports/orders_2026-08-27.xlsx", Filename("reports", reportDate))

	sameDayLater := reportDate.Add(30 * time.Minute)
	require.Equal(t, Filename("reports", reportDate), Filename("reports", sameDayLater))
}

func TestWriteDerivesTotals(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)

	orders := []models.Order{
		{
			ID:    "PED-001",
			Table: "4",
			Items: []models.OrderItem{
				{Name: "Burger", PriceLocal: 18000, PriceForeign: 4.5, Quantity: 2},
				{Name: "Fries", PriceLocal: 8000, PriceForeign: 2, Quantity: 1},
			},
			Status:      "delivered",
			ArrivalTime: "12:30",
		},
	}
	require.NoError(t, w.Write(reportDate, orders))

	f, err := excelize.OpenFile(Filename(dir, reportDate))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, []string{"Order ID", "Table", "Products", "Total Quantity",
		"Total Local", "Total Foreign", "Order Time", "Status"}, rows[0])

	row := rows[1]
	require.Equal(t, "PED-001", row[0])
	require.Equal(t, "4", row[1])
	require.Equal(t, "Burger (x2)\nFries (x1)", row[2])
	require.Equal(t, "3", row[3])
	require.Equal(t, "44000", row[4])
	require.Equal(t, "11.00", row[5])
	require.Equal(t, "12:30", row[6])
	require.Equal(t, "delivered", row[7])
}

func TestWriteEmptySnapshot(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)

	require.NoError(t, w.Write(reportDate, nil))

	f, err := excelize.OpenFile(Filename(dir, reportDate))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWriteReplacesSameDayFile(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)

	require.NoError(t, w.Write(reportDate, nil))
	require.NoError(t, w.Write(reportDate, []models.Order{{
		ID:    "PED-001",
		Items: []models.OrderItem{{Name: "Jugo", PriceLocal: 5000, PriceForeign: 1.5, Quantity: 1}},
	}}))

	f, err := excelize.OpenFile(Filename(dir, reportDate))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
