package model

import "github.com/shopspring/decimal"

// Product はカタログの商品。stockは在庫調整APIでのみ増減する。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:nombre;type:varchar(200);not null" json:"nombre"`
	Description string          `gorm:"column:descripcion;type:varchar(1000);not null" json:"descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:numeric(12,2);not null" json:"precio"`
	Category    string          `gorm:"column:categoria;type:varchar(50);not null;index" json:"categoria"`
	Image       string          `gorm:"column:imagen;type:varchar(500)" json:"imagen"`
	Stock       int64           `gorm:"not null" json:"stock"`
}

func (Product) TableName() string { return "productos" }
