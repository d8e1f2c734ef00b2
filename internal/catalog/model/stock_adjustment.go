package model

import "time"

//在庫調整の履歴

type StockAdjustment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"column:producto_id;not null;index" json:"producto_id"`
	Delta     int64     `gorm:"column:cantidad;not null" json:"cantidad"`
	Reason    string    `gorm:"column:motivo;type:varchar(255)" json:"motivo"`
	CreatedAt time.Time `gorm:"column:fecha;not null;autoCreateTime" json:"fecha"`
}

func (StockAdjustment) TableName() string { return "ajustes_stock" }
