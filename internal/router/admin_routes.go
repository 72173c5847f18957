package router

import (
	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/handler"
	"github.com/atollway/travel-content-api/internal/middleware"
	"github.com/atollway/travel-content-api/internal/repository"
)

// RegisterAdmin registers every authenticated content-management endpoint
// under /api. All routes require a valid JWT with the ADMIN or EDITOR role;
// the dataset export/import pair is ADMIN only.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "EDITOR"),
	)

	g.GET("/transfer-types", h.ListTransferTypes)
	g.POST("/transfer-types", h.CreateTransferType)
	g.GET("/transfer-types/:id", h.GetTransferType)
	g.PUT("/transfer-types/:id", h.UpdateTransferType)
	g.DELETE("/transfer-types/:id", h.DeleteTransferType)
	g.POST("/transfer-types/:id/move", h.MoveTransferType)

	g.GET("/atoll-transfers", h.ListAtolls)
	g.POST("/atoll-transfers", h.CreateAtoll)
	g.GET("/atoll-transfers/:id", h.GetAtoll)
	g.PUT("/atoll-transfers/:id", h.UpdateAtoll)
	g.DELETE("/atoll-transfers/:id", h.DeleteAtoll)
	g.POST("/atoll-transfers/:id/move", h.MoveAtoll)

	g.GET("/resort-transfers", h.ListResorts)
	g.POST("/resort-transfers", h.CreateResort)
	g.GET("/resort-transfers/:id", h.GetResort)
	g.PUT("/resort-transfers/:id", h.UpdateResort)
	g.DELETE("/resort-transfers/:id", h.DeleteResort)
	g.POST("/resort-transfers/:id/move", h.MoveResort)

	// GET /api/transfer-faqs is registered on the public router.
	g.POST("/transfer-faqs", h.CreateFAQ)
	g.GET("/transfer-faqs/:id", h.GetFAQ)
	g.PUT("/transfer-faqs/:id", h.UpdateFAQ)
	g.DELETE("/transfer-faqs/:id", h.DeleteFAQ)
	g.POST("/transfer-faqs/:id/move", h.MoveFAQ)

	sections := []struct {
		prefix string
		kind   repository.SectionKind
	}{
		{"/transfer-contact-methods", repository.KindContactMethod},
		{"/transfer-booking-steps", repository.KindBookingStep},
		{"/transfer-benefits", repository.KindBenefit},
		{"/transfer-pricing-factors", repository.KindPricingFactor},
		{"/transfer-content", repository.KindContent},
	}
	for _, s := range sections {
		g.GET(s.prefix, h.ListSections(s.kind))
		g.POST(s.prefix, h.CreateSection(s.kind))
		g.GET(s.prefix+"/:id", h.GetSection(s.kind))
		g.PUT(s.prefix+"/:id", h.UpdateSection(s.kind))
		g.DELETE(s.prefix+"/:id", h.DeleteSection(s.kind))
		g.POST(s.prefix+"/:id/move", h.MoveSection(s.kind))
	}

	g.GET("/ferry-schedules", h.ListFerrySchedules)
	g.POST("/ferry-schedules", h.CreateFerrySchedule)
	g.GET("/ferry-schedules/:id", h.GetFerrySchedule)
	g.PUT("/ferry-schedules/:id", h.UpdateFerrySchedule)
	g.DELETE("/ferry-schedules/:id", h.DeleteFerrySchedule)
	g.POST("/ferry-schedules/:id/move", h.MoveFerrySchedule)

	g.GET("/homepage/dashboard_data", h.DashboardData)
	g.POST("/homepage/bulk_update", h.BulkUpdate)
	g.POST("/homepage/images", h.UploadImage)
	g.POST("/homepage/images/upload_multiple", h.UploadImages)

	admin := g.Group("", middleware.RequireRole("ADMIN"))
	admin.GET("/transportation/export", h.ExportDataset)
	admin.POST("/transportation/import", h.ImportDataset)
}
