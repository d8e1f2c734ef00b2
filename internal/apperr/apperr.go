// Package apperr carries the error taxonomy shared by the five services.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	// 対象が存在しない（404）
	KindNotFound
	// 入力不正（400）
	KindValidation
	// email/phoneの一意キー衝突（400）
	KindDuplicate
	// 認証失敗（401）
	KindUnauthorized
	// 必須データ欠落など回復不能な構成エラー（500）
	KindConfig
)

type Error struct {
	Kind    Kind
	Message string
	// Duplicateのとき、衝突したフィールド名（"email" / "telefono"）
	Field string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}
	return e.Message
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(field string, format string, args ...any) error {
	return &Error{Kind: KindDuplicate, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Config(format string, args ...any) error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string) error {
	return &Error{Kind: KindInternal, Message: message}
}

func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

func IsKind(err error, kind Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind
}

// HTTPStatusはエラー種別をレスポンスコードに変換する。
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
