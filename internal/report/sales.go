// Package report builds the daily sales workbook for the back office.
package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"tpvcomida/internal/models"
)

const sheetName = "Ventas"

var salesHeader = []string{
	"Pedido",
	"Cliente",
	"Entrega",
	"Hora",
	"Estado",
	"Artículos",
	"Total",
}

// DailySales renders the given orders (already filtered to one day by the
// caller) as an Excel workbook and returns the serialized bytes.
func DailySales(day string, orders []models.Order) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFF1E0"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", "Ventas del "+day); err != nil {
		f.Close()
		return nil, err
	}

	for col, title := range salesHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	var total float64
	for i, order := range orders {
		row := i + 3
		values := []any{
			"#" + order.ID,
			customerCell(&order),
			order.DeliveryType,
			order.Time,
			order.Status,
			len(order.Items),
			order.Total,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
		total += order.Total
	}

	totalRow := len(orders) + 3
	if err := f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), "Total"); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("G%d", totalRow), total); err != nil {
		f.Close()
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportFileName returns a unique workbook name for the given day, so
// repeated exports of the same day never overwrite each other.
func ExportFileName(day string) string {
	return fmt.Sprintf("ventas_%s_%s.xlsx", day, uuid.NewString()[:8])
}

// FilterByDate keeps the orders whose date matches day (yyyy-mm-dd).
func FilterByDate(orders []models.Order, day string) []models.Order {
	filtered := make([]models.Order, 0)
	for _, o := range orders {
		if o.Date == day {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// customerCell prefers the snapshot name; guests show the guest label.
func customerCell(o *models.Order) string {
	if o.IsGuest() {
		return models.GuestLabel
	}
	return o.CustomerName
}
