package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/httpx"
	"github.com/qualifygym/commerce/internal/payment/usecase"
)

// /pagos のHTTP
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CreatePaymentRequest struct {
	OrderID int64           `json:"ordenId"`
	UserID  int64           `json:"usuarioId"`
	Amount  decimal.Decimal `json:"monto"`
	Method  string          `json:"metodoPago"`
	Note    string          `json:"informacionAdicional"`
}

type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/pagos")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/usuario/:usuarioId", h.listByUser)
	g.GET("/orden/:ordenId", h.listByOrder)
	g.GET("/estado/:estado", h.listByStatus)
	g.PATCH("/:id/estado", h.updateStatus)
	g.DELETE("/:id", h.remove)
}

func (h *PaymentHandler) create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	p, err := h.uc.CreatePayment(c.Request().Context(), usecase.CreatePaymentInput{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Amount:  req.Amount,
		Method:  req.Method,
		Note:    req.Note,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PaymentHandler) detail(c echo.Context) error {
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

func (h *PaymentHandler) listByUser(c echo.Context) error {
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

func (h *PaymentHandler) listByOrder(c echo.Context) error {
	orderID, ok := httpx.ParseIDParam(c, "ordenId")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "ordenId inválido"})
	}

	items, err := h.uc.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PaymentHandler) listByStatus(c echo.Context) error {
	items, err := h.uc.ListByStatus(c.Request().Context(), c.Param("estado"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PaymentHandler) updateStatus(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	p, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) remove(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
