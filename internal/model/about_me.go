package model

import "time"

type AboutMe struct {
	ID        uint64 `gorm:"primaryKey"`
	Title     string `gorm:"size:200"`
	Content   string `gorm:"type:text"`
	ImageURL  string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AboutMe) TableName() string { return "about_me" }
