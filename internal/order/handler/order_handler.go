package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/httpx"
	"github.com/qualifygym/commerce/internal/order/usecase"
)

// /ordenes のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ProductID int64           `json:"productoId"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
}

type CreateOrderRequest struct {
	UserID          int64              `json:"usuarioId"`
	Total           decimal.Decimal    `json:"total"`
	ShippingAddress string             `json:"direccionEnvio"`
	Notes           string             `json:"notas"`
	Items           []OrderItemRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/ordenes")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/items", h.listItems)
	g.GET("/usuario/:usuarioId", h.listByUser)
	g.GET("/estado/:estado", h.listByStatus)
	g.PATCH("/:id/estado", h.updateStatus)
	g.DELETE("/:id", h.remove)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID:          req.UserID,
		Total:           req.Total,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Items:           items,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(orders) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	order, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) listItems(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	items, err := h.uc.ListItems(c.Request().Context(), id)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) listByUser(c echo.Context) error {
	userID, ok := httpx.ParseIDParam(c, "usuarioId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "usuarioId inválido"})
	}

	orders, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(orders) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) listByStatus(c echo.Context) error {
	orders, err := h.uc.ListByStatus(c.Request().Context(), c.Param("estado"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(orders) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) remove(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
