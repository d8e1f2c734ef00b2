package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/catalog/usecase"
	"github.com/qualifygym/commerce/internal/httpx"
)

// /productos のHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type CreateProductRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
	Image       string          `json:"imagen"`
	Stock       int64           `json:"stock"`
}

type UpdateProductRequest struct {
	Name        string           `json:"nombre"`
	Description string           `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	Category    string           `json:"categoria"`
	Image       *string          `json:"imagen"`
	Stock       *int64           `json:"stock"`
}

type AdjustStockRequest struct {
	Delta  int64  `json:"cantidad"`
	Reason string `json:"motivo"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/productos")

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/categoria/:categoria", h.listByCategory)
	g.GET("/buscar", h.search)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.PATCH("/:id/stock", h.adjustStock)
	g.GET("/:id/stock/ajustes", h.listAdjustments)
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	p, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) listByCategory(c echo.Context) error {
	items, err := h.uc.ListByCategory(c.Request().Context(), c.Param("categoria"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) search(c echo.Context) error {
	items, err := h.uc.SearchByName(c.Request().Context(), c.QueryParam("nombre"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	p, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) adjustStock(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	p, err := h.uc.AdjustStock(c.Request().Context(), id, req.Delta, req.Reason)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) listAdjustments(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	items, err := h.uc.ListAdjustments(c.Request().Context(), id)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}
