package model

import "time"

type ContactMe struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null"`
	Email     string `gorm:"size:64;not null"`
	Subject   string `gorm:"size:200"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ContactMe) TableName() string { return "contact_me" }
