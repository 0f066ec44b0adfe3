package model

import "time"

type BloggImage struct {
	ID        uint64 `gorm:"primaryKey"`
	BloggID   uint64 `gorm:"not null;index"`
	FilePath  string `gorm:"size:512;not null"`
	Order     int    `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time
}
