package handlers

import (
	"github.com/gofiber/fiber/v2"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/services"
)

// statusByKind is the pure lookup from service error kind to HTTP status.
var statusByKind = map[services.ErrorKind]int{
	services.KindValidation:  fiber.StatusBadRequest,
	services.KindNotFound:    fiber.StatusNotFound,
	services.KindConflict:    fiber.StatusConflict,
	services.KindPersistence: fiber.StatusInternalServerError,
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	// devMode controls whether persistence error detail reaches clients.
	devMode bool
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, devMode bool) *ProductHandler {
	return &ProductHandler{
		service: service,
		devMode: devMode,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Get("/:id", h.HandleGet)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList serves GET /products with filtering, search and pagination.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	params := repositories.ListParams{
		Category: c.Query("category"),
		InStock:  c.QueryBool("inStock"),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page"),
		Limit:    c.QueryInt("limit"),
	}

	products, pagination, svcErr := h.service.ListProducts(c.Context(), params)
	if svcErr != nil {
		return h.respondError(c, svcErr)
	}
	return c.JSON(models.OKPage(models.NewProductViews(products), pagination))
}

// HandleGet serves GET /products/:id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, svcErr := h.service.GetProduct(c.Context(), c.Params("id"))
	if svcErr != nil {
		return h.respondError(c, svcErr)
	}
	return c.JSON(models.OK(models.NewProductView(*product)))
}

// HandleCreate serves POST /products.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Invalid request body"))
	}

	product, svcErr := h.service.CreateProduct(c.Context(), req)
	if svcErr != nil {
		return h.respondError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(
		models.OKWithMessage(models.NewProductView(*product), "Product created successfully"))
}

// HandleUpdate serves PUT /products/:id with partial-update semantics.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Invalid request body"))
	}

	product, svcErr := h.service.UpdateProduct(c.Context(), c.Params("id"), req)
	if svcErr != nil {
		return h.respondError(c, svcErr)
	}
	return c.JSON(models.OKWithMessage(models.NewProductView(*product), "Product updated successfully"))
}

// HandleDelete serves DELETE /products/:id, returning the deleted entity.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	product, svcErr := h.service.DeleteProduct(c.Context(), c.Params("id"))
	if svcErr != nil {
		return h.respondError(c, svcErr)
	}
	return c.JSON(models.OKWithMessage(models.NewProductView(*product), "Product deleted successfully"))
}

func (h *ProductHandler) respondError(c *fiber.Ctx, svcErr *services.ServiceError) error {
	status, ok := statusByKind[svcErr.Kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	errMsg := svcErr.Message
	if h.devMode && svcErr.Cause != nil {
		errMsg = svcErr.Cause.Error()
	}
	return c.Status(status).JSON(models.Fail(errMsg, svcErr.Details...))
}
