package postgres

import (
	"context"
	"database/sql"

	"loyaltyapi/internal/model"
	"loyaltyapi/internal/repository"
)

// DocumentTypePostgres is a PostgreSQL implementation of repository.DocumentTypeRepository.
type DocumentTypePostgres struct {
	db *sql.DB
}

// NewDocumentTypePostgres creates a new DocumentTypePostgres repository.
func NewDocumentTypePostgres(db *sql.DB) *DocumentTypePostgres {
	return &DocumentTypePostgres{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypePostgres)(nil)

// FindByCode fetches a document type by its exact (case-sensitive) code.
func (r *DocumentTypePostgres) FindByCode(ctx context.Context, code string) (*model.DocumentType, error) {
	const q = `
		SELECT id, code, name
		FROM document_types
		WHERE code = $1
	`
	var dt model.DocumentType
	if err := r.db.QueryRowContext(ctx, q, code).Scan(&dt.ID, &dt.Code, &dt.Name); err != nil {
		return nil, err
	}
	return &dt, nil
}
