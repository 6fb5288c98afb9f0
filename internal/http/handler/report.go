package handler

import (
	"github.com/gofiber/fiber/v2"

	"loyaltyapi/internal/config"
	"loyaltyapi/internal/service"
)

// LoyaltyReport godoc
// @Summary      Loyalty report
// @Description  Downloads a spreadsheet of the clients whose purchases in the last 30 days exceed the loyalty threshold.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      404  {object}  errorPayload
// @Router       /api/reports/loyal-customers [get]
func LoyaltyReport(svc service.ReportService, msgs config.MessagesConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := svc.LoyaltyReport(c.UserContext())
		if err != nil {
			return writeServiceError(c, msgs, err)
		}
		return sendFile(c, file)
	}
}
