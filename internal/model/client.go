package model

import "time"

// Client is a customer identified by the pair (DocumentTypeID, DocumentNumber),
// which is unique across the clients table.
type Client struct {
	ID             int64        `json:"id"`
	DocumentTypeID int64        `json:"document_type_id"`
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Purchases is only populated by lookups that eager-load them.
	Purchases []Purchase `json:"purchases,omitempty"`
}
