package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre descripción o código de proveedor"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items := h.store.Products(inventory.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{Items: out, Total: len(out)})
}

// Categories godoc
// @Summary      Categorías distintas del inventario
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoryListResponse{Items: h.store.Categories()})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p := h.store.Product(c.Params("id"))
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(toProductResponse(*p))
}

// Create godoc
// @Summary      Crear producto (rol maker o admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.VendorCode == "" || in.Category == "" || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vendor_code, category y description son requeridos"})
	}
	expiry, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "expiry_date debe ser yyyy-mm-dd"})
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}

	created := h.store.AddProduct(entity.Product{
		VendorCode:     in.VendorCode,
		Category:       in.Category,
		Description:    in.Description,
		Count:          in.Count,
		Cost:           in.Cost,
		Currency:       in.Currency,
		ExpiryDate:     expiry,
		WarehouseStock: in.WarehouseStock,
		ShelfStock:     in.ShelfStock,
		Threshold:      in.Threshold,
		Barcode:        in.Barcode,
		Status:         status,
		CreatedBy:      GetUsername(c),
	})
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(created))
}

// Update godoc
// @Summary      Actualización parcial de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	upd := inventory.ProductUpdate{
		VendorCode:     in.VendorCode,
		Category:       in.Category,
		Description:    in.Description,
		Count:          in.Count,
		Cost:           in.Cost,
		Currency:       in.Currency,
		WarehouseStock: in.WarehouseStock,
		ShelfStock:     in.ShelfStock,
		Threshold:      in.Threshold,
		Barcode:        in.Barcode,
		Status:         in.Status,
	}
	if in.ExpiryDate != nil {
		expiry, err := dto.ParseDate(*in.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "expiry_date debe ser yyyy-mm-dd"})
		}
		upd.ExpiryDate = &expiry
	}

	if err := h.store.UpdateProduct(id, upd); err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(toProductResponse(*h.store.Product(id)))
}

// Approve godoc
// @Summary      Aprobar producto (rol checker o admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/approve [post]
func (h *ProductHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.ApproveProduct(id, GetUsername(c)); err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(toProductResponse(*h.store.Product(id)))
}

func notFoundOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		VendorCode:     p.VendorCode,
		Category:       p.Category,
		Description:    p.Description,
		Count:          p.Count,
		Cost:           p.Cost,
		Currency:       p.Currency,
		ExpiryDate:     dto.FormatDate(p.ExpiryDate),
		WarehouseStock: p.WarehouseStock,
		ShelfStock:     p.ShelfStock,
		Threshold:      p.Threshold,
		Barcode:        p.Barcode,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		CreatedBy:      p.CreatedBy,
		ApprovedBy:     p.ApprovedBy,
		Approved:       p.Approved,
	}
}
