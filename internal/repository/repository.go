package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres). Lookups that find no row
// return sql.ErrNoRows so callers can translate it to their own not-found error.

import (
	"context"
	"time"

	"loyaltyapi/internal/model"
)

// DocumentTypeRepository reads document type reference data.
type DocumentTypeRepository interface {
	// FindByCode returns the document type whose code matches exactly.
	FindByCode(ctx context.Context, code string) (*model.DocumentType, error)
}

// ClientRepository reads clients.
type ClientRepository interface {
	// FindByTypeAndNumber returns the unique client for the identity pair,
	// with its document type and all purchases (in insertion order) loaded.
	FindByTypeAndNumber(ctx context.Context, documentTypeID int64, documentNumber string) (*model.Client, error)
}

// PurchaseRepository reads purchases for reporting.
type PurchaseRepository interface {
	// FindSince returns purchases with purchase_date >= since, each with its
	// owning client and the client's document type loaded.
	FindSince(ctx context.Context, since time.Time) ([]model.Purchase, error)
}
