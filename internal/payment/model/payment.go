package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment は注文に対する支払い試行。orden_id/usuario_idは他サービスのIDで、
// ここからの参照整合性は持たない（サービス間の整合境界）。
type Payment struct {
	ID      int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64           `gorm:"column:orden_id;not null;index" json:"ordenId"`
	UserID  int64           `gorm:"column:usuario_id;not null;index" json:"usuarioId"`
	Amount  decimal.Decimal `gorm:"column:monto;type:numeric(12,2);not null" json:"monto"`
	Method  string          `gorm:"column:metodo_pago;type:varchar(50);not null" json:"metodoPago"`
	Status  string          `gorm:"column:estado;type:varchar(50);not null;index" json:"estado"`
	// 作成時刻で初期化し、completadoへの遷移のたびに更新される
	PaidAt time.Time `gorm:"column:fecha_pago;not null" json:"fechaPago"`
	Note   string    `gorm:"column:informacion_adicional;type:varchar(500)" json:"informacionAdicional"`
}

func (Payment) TableName() string { return "pagos" }
