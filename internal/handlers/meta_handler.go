package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warung/internal/config"
	"warung/internal/models"
)

// MetaHandler exposes static client-support data: the category
// enumeration and the recognized barcode formats.
type MetaHandler struct {
	cfg *config.Config
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{cfg: cfg}
}

// RegisterRoutes registers the meta routes with the Fiber app.
func (h *MetaHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/meta", h.HandleMeta)
}

// HandleMeta serves GET /meta.
func (h *MetaHandler) HandleMeta(c *fiber.Ctx) error {
	return c.JSON(models.OK(fiber.Map{
		"categories":     models.Categories,
		"barcodeFormats": h.cfg.BarcodeFormats,
	}))
}
