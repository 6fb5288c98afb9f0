package postgres

import (
	"context"
	"database/sql"
	"time"

	"loyaltyapi/internal/model"
	"loyaltyapi/internal/repository"
)

// PurchasePostgres is a PostgreSQL implementation of repository.PurchaseRepository.
type PurchasePostgres struct {
	db *sql.DB
}

// NewPurchasePostgres creates a new PurchasePostgres repository.
func NewPurchasePostgres(db *sql.DB) *PurchasePostgres {
	return &PurchasePostgres{db: db}
}

var _ repository.PurchaseRepository = (*PurchasePostgres)(nil)

// FindSince returns every purchase dated on or after since, joined with its client and document type.
// Clients are shared between purchases of the same owner.
func (r *PurchasePostgres) FindSince(ctx context.Context, since time.Time) ([]model.Purchase, error) {
	const q = `
		SELECT p.id, p.client_id, p.amount, p.purchase_date, p.description, p.order_number, p.created_at,
		       c.document_type_id, dt.code, dt.name,
		       c.document_number, c.first_name, c.last_name, c.email, c.phone,
		       c.created_at, c.updated_at
		FROM purchases p
		JOIN clients c         ON c.id  = p.client_id
		JOIN document_types dt ON dt.id = c.document_type_id
		WHERE p.purchase_date >= $1
		ORDER BY p.id
	`
	rows, err := r.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make(map[int64]*model.Client)
	items := make([]model.Purchase, 0)
	for rows.Next() {
		var (
			p                 model.Purchase
			c                 model.Client
			desc, orderNumber sql.NullString
		)
		if err := rows.Scan(
			&p.ID,
			&p.ClientID,
			&p.Amount,
			&p.PurchaseDate,
			&desc,
			&orderNumber,
			&p.CreatedAt,
			&c.DocumentTypeID,
			&c.DocumentType.Code,
			&c.DocumentType.Name,
			&c.DocumentNumber,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Description = nullableString(desc)
		p.OrderNumber = nullableString(orderNumber)

		owner, ok := clients[p.ClientID]
		if !ok {
			c.ID = p.ClientID
			c.DocumentType.ID = c.DocumentTypeID
			owner = &c
			clients[p.ClientID] = owner
		}
		p.Client = owner
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
