package handler

import (
	"github.com/gofiber/fiber/v2"

	"loyaltyapi/internal/config"
	"loyaltyapi/internal/service"
)

const (
	queryDocumentType   = "document_type"
	queryDocumentNumber = "document_number"
)

// SearchClient godoc
// @Summary      Find a client
// @Description  Returns the client identified by document type code and number, with its purchases.
// @Tags         client
// @Produce      json
// @Param        document_type    query  string  true  "Document type code (e.g. CC)"
// @Param        document_number  query  string  true  "Document number"
// @Success      200  {object}  service.ClientProfile
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/client/search [get]
func SearchClient(svc service.ClientService, msgs config.MessagesConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := svc.Find(c.UserContext(), c.Query(queryDocumentType), c.Query(queryDocumentNumber))
		if err != nil {
			return writeServiceError(c, msgs, err)
		}
		return c.JSON(profile)
	}
}

// ExportClient godoc
// @Summary      Export a client as CSV
// @Description  Downloads the client data and purchases (oldest first) as a semicolon separated file.
// @Tags         client
// @Produce      text/csv
// @Param        document_type    query  string  true  "Document type code (e.g. CC)"
// @Param        document_number  query  string  true  "Document number"
// @Success      200  {file}    file
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/client/export [get]
func ExportClient(svc service.ClientService, msgs config.MessagesConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := svc.ExportCSV(c.UserContext(), c.Query(queryDocumentType), c.Query(queryDocumentNumber))
		if err != nil {
			return writeServiceError(c, msgs, err)
		}
		return sendFile(c, file)
	}
}

// sendFile writes a rendered document as an attachment.
func sendFile(c *fiber.Ctx, file *service.ExportFile) error {
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
