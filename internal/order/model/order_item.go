package model

import "github.com/shopspring/decimal"

// OrderItem は注文確定時に固定される明細。作成後は変更しない。
// subtotalは作成時に precio_unitario × cantidad で計算して保存する。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"column:orden_id;not null;index" json:"ordenId"`
	ProductID int64           `gorm:"column:producto_id;not null" json:"productoId"`
	Quantity  int64           `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:numeric(12,2);not null" json:"precioUnitario"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
}

func (OrderItem) TableName() string { return "items_orden" }
