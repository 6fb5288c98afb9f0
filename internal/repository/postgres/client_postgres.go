package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"loyaltyapi/internal/model"
	"loyaltyapi/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

// FindByTypeAndNumber loads the client with its document type, then its purchases.
// Returns sql.ErrNoRows when no client matches.
func (r *ClientPostgres) FindByTypeAndNumber(ctx context.Context, documentTypeID int64, documentNumber string) (*model.Client, error) {
	const q = `
		SELECT c.id, c.document_type_id, dt.id, dt.code, dt.name,
		       c.document_number, c.first_name, c.last_name, c.email, c.phone,
		       c.created_at, c.updated_at
		FROM clients c
		JOIN document_types dt ON dt.id = c.document_type_id
		WHERE c.document_type_id = $1 AND c.document_number = $2
	`
	var c model.Client
	row := r.db.QueryRowContext(ctx, q, documentTypeID, documentNumber)
	if err := row.Scan(
		&c.ID,
		&c.DocumentTypeID,
		&c.DocumentType.ID,
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

	purchases, err := r.purchasesOf(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	c.Purchases = purchases
	return &c, nil
}

func (r *ClientPostgres) purchasesOf(ctx context.Context, clientID int64) ([]model.Purchase, error) {
	const q = `
		SELECT id, client_id, amount, purchase_date, description, order_number, created_at
		FROM purchases
		WHERE client_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Purchase, 0)
	for rows.Next() {
		var (
			p                 model.Purchase
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
		); err != nil {
			return nil, err
		}
		p.Description = nullableString(desc)
		p.OrderNumber = nullableString(orderNumber)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
