package service

import "errors"

// Request-level failures. Handlers map each one to a status code and a configured message.
var (
	ErrBadRequest          = errors.New("document type and document number are required")
	ErrInvalidDocumentType = errors.New("document type not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrNoPurchasesInWindow = errors.New("no purchases in the report window")
	ErrNoQualifyingClients = errors.New("no client exceeds the loyalty threshold")
)

// ExportFile is a fully rendered downloadable document.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
