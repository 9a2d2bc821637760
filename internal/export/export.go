// Package export renders an account's contacts as a spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

// SheetName is the name of the only sheet of the workbook.
const SheetName = "Contacts"

// Headers are the column titles, in order.
var Headers = []string{"Name", "Email", "Phone", "Birthdate", "Approximate", "Kids", "Notes", "Address"}

var columnWidths = []float64{28, 30, 18, 12, 12, 8, 8, 40}

// Contacts builds an XLSX workbook with one row per contact.
func Contacts(contacts []*models.Contact) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close happens on every exit path instead of a defer.

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range Headers {
		if err := setCell(f, i+1, 1, header); err != nil {
			f.Close()
			return nil, err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, columnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeaderCell(), headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, c := range contacts {
		if err := writeRow(f, i+2, c); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, c *models.Contact) error {
	email, _ := c.EmailAddress()
	phone, _ := c.Phone()
	address, _ := c.Address()
	birthdate := ""
	if c.Birthdate != nil {
		birthdate = dates.Format(*c.Birthdate)
	}
	approximate := "No"
	if c.Birthdate != nil && c.IsBirthdateApproximate() {
		approximate = "Yes"
	}

	values := []any{c.CompleteName(), email, phone, birthdate, approximate, c.NumberOfKids, c.NumberOfNotes, address}
	for col, v := range values {
		if v == "" {
			continue
		}
		if err := setCell(f, col+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

func lastHeaderCell() string {
	cell, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	return cell
}
