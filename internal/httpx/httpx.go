// Package httpx はハンドラ共通のレスポンス部品。
package httpx

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/qualifygym/commerce/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError はusecaseのエラーをHTTPレスポンスに変換する。
func WriteError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := apperr.As(err); ok {
		return c.JSON(ae.HTTPStatus(), ErrorResponse{Error: ae.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ParseIDParam はパスパラメータのIDを読む。
func ParseIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
