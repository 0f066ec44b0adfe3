package model

import "time"

type Blogg struct {
	ID         uint64    `gorm:"primaryKey"`
	Title      string    `gorm:"size:200;not null"`
	Content    string    `gorm:"type:text"`
	Author     string    `gorm:"size:64"`
	LaunchDate time.Time `gorm:"index"`
	Hidden     bool      `gorm:"not null;default:false"`
	IsArchived bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BloggOutbox queues publish events for the notifier relayer.
type BloggOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // blogg.published
	BloggID   uint64 `gorm:"not null;index"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BloggOutbox) TableName() string { return "blogg_outbox" }
