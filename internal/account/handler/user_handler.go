package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qualifygym/commerce/internal/account/usecase"
	"github.com/qualifygym/commerce/internal/httpx"
)

// /usuarios のHTTP
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RoleID   int64  `json:"rolId"`
	Address  string `json:"address"`
}

type UpdateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	RoleID   *int64  `json:"rolId"`
	Address  *string `json:"address"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/usuarios")

	g.POST("/registro", h.register)
	g.POST("/login", h.login)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/email/:email", h.getByEmail)
	g.GET("/username/:username", h.listByUsername)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.GET("/roles", h.listRoles)
}

func (h *UserHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	user, err := h.uc.RegisterPublic(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	ok, err := h.uc.VerifyCredentials(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, httpx.ErrorResponse{Error: "credenciales inválidas"})
	}

	user, err := h.uc.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(users) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) detail(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) getByEmail(c echo.Context) error {
	user, err := h.uc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) listByUsername(c echo.Context) error {
	users, err := h.uc.ListByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpx.WriteError(c, err)
	}
	if len(users) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Address:  req.Address,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) update(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "cuerpo inválido"})
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Address:  req.Address,
	})
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) remove(c echo.Context) error {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return httpx.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) listRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return httpx.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}
