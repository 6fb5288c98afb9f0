package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loyaltyapi/internal/model"
	"loyaltyapi/internal/repository"
)

// ContentTypeCSV is sent with client CSV exports.
const ContentTypeCSV = "text/csv; charset=utf-8"

// ClientProfile is the lookup response for a single client.
type ClientProfile struct {
	DocumentType   DocumentTypeInfo `json:"documentType"`
	DocumentNumber string           `json:"documentNumber"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Purchases      []PurchaseInfo   `json:"purchases"`
}

// DocumentTypeInfo is the public view of a document type.
type DocumentTypeInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PurchaseInfo is the public view of a purchase.
type PurchaseInfo struct {
	Amount       Money     `json:"amount"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Description  *string   `json:"description"`
	OrderNumber  *string   `json:"orderNumber"`
}

// Money is an exact amount written to JSON as a bare number (100.5, not "100.5").
type Money struct {
	decimal.Decimal
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// ClientService defines the client lookup and export use cases.
type ClientService interface {
	// Find returns the profile of the client identified by document type code and number.
	// Purchases keep the order the store returned them in.
	Find(ctx context.Context, documentTypeCode, documentNumber string) (*ClientProfile, error)

	// ExportCSV renders the client and its purchases (oldest first) as a semicolon separated file.
	ExportCSV(ctx context.Context, documentTypeCode, documentNumber string) (*ExportFile, error)
}

type clientService struct {
	docTypes repository.DocumentTypeRepository
	clients  repository.ClientRepository
}

// NewClientService constructs a new ClientService.
func NewClientService(docTypes repository.DocumentTypeRepository, clients repository.ClientRepository) ClientService {
	return &clientService{docTypes: docTypes, clients: clients}
}

func (s *clientService) Find(ctx context.Context, documentTypeCode, documentNumber string) (*ClientProfile, error) {
	c, err := s.resolveClient(ctx, documentTypeCode, documentNumber)
	if err != nil {
		return nil, err
	}
	return toProfile(c), nil
}

func (s *clientService) ExportCSV(ctx context.Context, documentTypeCode, documentNumber string) (*ExportFile, error) {
	c, err := s.resolveClient(ctx, documentTypeCode, documentNumber)
	if err != nil {
		return nil, err
	}

	content, err := renderClientCSV(c)
	if err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("cliente_%s_%s.csv", c.DocumentType.Code, c.DocumentNumber),
		ContentType: ContentTypeCSV,
		Content:     content,
	}, nil
}

// resolveClient validates the identity pair and loads the client with its purchases.
// Lookup and export share it so they fail identically for identical input.
func (s *clientService) resolveClient(ctx context.Context, documentTypeCode, documentNumber string) (*model.Client, error) {
	if strings.TrimSpace(documentTypeCode) == "" || strings.TrimSpace(documentNumber) == "" {
		return nil, ErrBadRequest
	}

	dt, err := s.docTypes.FindByCode(ctx, documentTypeCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidDocumentType
		}
		return nil, fmt.Errorf("find document type: %w", err)
	}

	c, err := s.clients.FindByTypeAndNumber(ctx, dt.ID, documentNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return c, nil
}

func toProfile(c *model.Client) *ClientProfile {
	purchases := make([]PurchaseInfo, 0, len(c.Purchases))
	for _, p := range c.Purchases {
		purchases = append(purchases, PurchaseInfo{
			Amount:       Money{p.Amount},
			PurchaseDate: p.PurchaseDate,
			Description:  p.Description,
			OrderNumber:  p.OrderNumber,
		})
	}
	return &ClientProfile{
		DocumentType: DocumentTypeInfo{
			Code: c.DocumentType.Code,
			Name: c.DocumentType.Name,
		},
		DocumentNumber: c.DocumentNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Purchases:      purchases,
	}
}
