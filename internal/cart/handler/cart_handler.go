package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/cart/usecase"
	"github.com/qualifygym/commerce/internal/httpx"
)

// /carrito のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemRequest struct {
	UserID    int64           `json:"usuarioId"`
	ProductID int64           `json:"productoId"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
}

type SetQuantityRequest struct {
	Quantity int64 `json:"cantidad"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/carrito")

	g.POST("/items", h.addItem)
	g.GET("/usuario/:usuarioId", h.listByUser)
	g.GET("/items/:id", h.getItem)
	g.PATCH("/items/:id", h.setQuantity)
	g.DELETE("/items/:id", h.removeItem)
	g.DELETE("/usuario/:usuarioId", h.clearCart)
	g.DELETE("/usuario/:usuarioId/producto/:productoId", h.removeByProduct)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	item, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) listByUser(c echo.Context) error {
	userID, ok := httpx.ParseIDParam(c, "usuarioId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "usuarioId inválido"})
	}

	items, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) getItem(c echo.Context) error {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) setQuantity(c echo.Context) error {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	item, err := h.uc.SetQuantity(c.Request().Context(), itemID, req.Quantity)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	userID, ok := httpx.ParseIDParam(c, "usuarioId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "usuarioId inválido"})
	}

	if err := h.uc.ClearCart(c.Request().Context(), userID); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) removeByProduct(c echo.Context) error {
	userID, ok := httpx.ParseIDParam(c, "usuarioId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "usuarioId inválido"})
	}
	productID, ok := httpx.ParseIDParam(c, "productoId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "productoId inválido"})
	}

	if err := h.uc.RemoveByProduct(c.Request().Context(), userID, productID); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
