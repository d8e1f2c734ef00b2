package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order は注文ヘッダ。totalはクライアント申告値で、明細から再計算しない。
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"column:usuario_id;not null;index" json:"usuarioId"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Status          string          `gorm:"column:estado;type:varchar(50);not null;index" json:"estado"`
	CreatedAt       time.Time       `gorm:"column:fecha_creacion;not null" json:"fechaCreacion"`
	UpdatedAt       time.Time       `gorm:"column:fecha_actualizacion;not null" json:"fechaActualizacion"`
	ShippingAddress string          `gorm:"type:varchar(500)" json:"direccionEnvio"`
	Notes           string          `gorm:"type:varchar(1000)" json:"notas"`
}

func (Order) TableName() string { return "ordenes" }
