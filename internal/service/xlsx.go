package service

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	loyaltySheet = "Clientes_fidelizacion"
	headerFill   = "D3D3D3"
)

var loyaltyHeader = []string{
	"Tipo documento",
	"Nombre tipo documento",
	"Número de documento",
	"Nombre",
	"Apellido",
	"Correo",
	"Teléfono",
	"Total último mes",
}

// renderLoyaltyXLSX writes a single-sheet workbook: a bold gray header row followed by one
// row per customer. Totals are numeric cells.
func renderLoyaltyXLSX(customers []LoyalCustomer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), loyaltySheet); err != nil {
		return nil, err
	}

	widths := make([]int, len(loyaltyHeader))
	track := func(col int, text string) {
		if n := utf8.RuneCountInString(text); n > widths[col] {
			widths[col] = n
		}
	}

	for i, h := range loyaltyHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(loyaltySheet, cell, h); err != nil {
			return nil, err
		}
		track(i, h)
	}

	for r, c := range customers {
		row := r + 2
		text := []string{c.DocumentType, c.DocumentTypeName, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone}
		for i, v := range text {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStr(loyaltySheet, cell, v); err != nil {
				return nil, err
			}
			track(i, v)
		}

		totalCell, err := excelize.CoordinatesToCellName(8, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellFloat(loyaltySheet, totalCell, c.Total.InexactFloat64(), -1, 64); err != nil {
			return nil, err
		}
		track(7, c.Total.String())
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(loyaltyHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(loyaltySheet, "A1", last, style); err != nil {
		return nil, err
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(loyaltySheet, col, col, float64(min(w+2, excelize.MaxColumnWidth))); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
