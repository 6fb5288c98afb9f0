package service

import (
	"bytes"
	"encoding/csv"
	"sort"

	"loyaltyapi/internal/model"
)

const csvDateLayout = "2006-01-02"

var (
	clientSectionTitle    = []string{"Datos del cliente"}
	clientSectionHeader   = []string{"Tipo documento", "Número de documento", "Nombre", "Apellido", "Correo", "Teléfono"}
	purchaseSectionTitle  = []string{"Compras del cliente"}
	purchaseSectionHeader = []string{"Fecha de compra", "Monto", "Descripción", "Número de orden"}
)

// renderClientCSV writes the client section, a blank line, then the purchase section.
// Purchases are sorted by date ascending; the client's slice is left untouched.
func renderClientCSV(c *model.Client) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.WriteAll([][]string{
		clientSectionTitle,
		clientSectionHeader,
		{c.DocumentType.Code, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone},
	}); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	purchases := make([]model.Purchase, len(c.Purchases))
	copy(purchases, c.Purchases)
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].PurchaseDate.Before(purchases[j].PurchaseDate)
	})

	records := [][]string{purchaseSectionTitle, purchaseSectionHeader}
	for _, p := range purchases {
		records = append(records, []string{
			p.PurchaseDate.Format(csvDateLayout),
			p.Amount.String(),
			derefString(p.Description),
			derefString(p.OrderNumber),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
