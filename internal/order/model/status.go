package model

import "errors"

// 注文ステータス。既知の状態は閉じた集合で持ちつつ、
// 境界では任意の空でない文字列を受け付ける（未知の値はCustomとして保持）。
type StatusKind int

const (
	StatusCustom StatusKind = iota
	StatusPendiente
	StatusPagada
	StatusEnviada
	StatusEntregada
	StatusCancelada
)

type Status struct {
	Kind StatusKind
	raw  string
}

var ErrEmptyStatus = errors.New("estado vacío")

var knownStatuses = map[string]StatusKind{
	"pendiente": StatusPendiente,
	"pagada":    StatusPagada,
	"enviada":   StatusEnviada,
	"entregada": StatusEntregada,
	"cancelada": StatusCancelada,
}

var statusNames = map[StatusKind]string{
	StatusPendiente: "pendiente",
	StatusPagada:    "pagada",
	StatusEnviada:   "enviada",
	StatusEntregada: "entregada",
	StatusCancelada: "cancelada",
}

// ParseStatus は文字列をステータスに変換する。未知の値もエラーにはせず
// 元の文字列を保ったまま受け付ける。空だけは拒否する。
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return Status{}, ErrEmptyStatus
	}
	if kind, ok := knownStatuses[raw]; ok {
		return Status{Kind: kind, raw: raw}, nil
	}
	return Status{Kind: StatusCustom, raw: raw}, nil
}

// Pendiente は注文作成時の初期ステータス。
func Pendiente() Status {
	return Status{Kind: StatusPendiente, raw: "pendiente"}
}

func (s Status) String() string {
	if s.Kind != StatusCustom {
		return statusNames[s.Kind]
	}
	return s.raw
}
