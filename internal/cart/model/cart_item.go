package model

import "github.com/shopspring/decimal"

// CartItem はユーザー×商品ごとの明細。
// 同じ(usuario, producto)の行は常に1つだけ（DBの複合ユニークで保証）。
// precio_unitarioは追加時点の価格で、以後のaddで上書きされない。
type CartItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"column:usuario_id;not null;uniqueIndex:idx_items_carrito_usuario_producto" json:"usuarioId"`
	ProductID int64           `gorm:"column:producto_id;not null;uniqueIndex:idx_items_carrito_usuario_producto" json:"productoId"`
	Quantity  int64           `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:numeric(12,2);not null" json:"precioUnitario"`
}

func (CartItem) TableName() string { return "items_carrito" }
