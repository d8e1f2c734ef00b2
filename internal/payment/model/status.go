package model

import "errors"

// 支払いステータス。既知の状態は閉じた集合、未知の文字列はCustomで保持する。
// "completado" への遷移だけが fecha_pago を更新する。
type StatusKind int

const (
	StatusCustom StatusKind = iota
	StatusPendiente
	StatusCompletado
	StatusFallido
	StatusReembolsado
)

type Status struct {
	Kind StatusKind
	raw  string
}

var ErrEmptyStatus = errors.New("estado vacío")

var knownStatuses = map[string]StatusKind{
	"pendiente":   StatusPendiente,
	"completado":  StatusCompletado,
	"fallido":     StatusFallido,
	"reembolsado": StatusReembolsado,
}

var statusNames = map[StatusKind]string{
	StatusPendiente:   "pendiente",
	StatusCompletado:  "completado",
	StatusFallido:     "fallido",
	StatusReembolsado: "reembolsado",
}

// ParseStatus は空だけを拒否し、未知の値は元の文字列のまま受け付ける。
// 照合は完全一致（"Completado" はcompletadoではなくCustom扱い）。
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return Status{}, ErrEmptyStatus
	}
	if kind, ok := knownStatuses[raw]; ok {
		return Status{Kind: kind, raw: raw}, nil
	}
	return Status{Kind: StatusCustom, raw: raw}, nil
}

// Pendiente は支払い作成時の初期ステータス。
func Pendiente() Status {
	return Status{Kind: StatusPendiente, raw: "pendiente"}
}

func (s Status) String() string {
	if s.Kind != StatusCustom {
		return statusNames[s.Kind]
	}
	return s.raw
}

// Settles は遷移が決済（fecha_pago更新）を意味するかどうか。
func (s Status) Settles() bool {
	return s.Kind == StatusCompletado
}
