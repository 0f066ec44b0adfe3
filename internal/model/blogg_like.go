package model

import "time"

// BloggLike rows are keyed by a free-form user key (username or
// email), one row per user and post.
type BloggLike struct {
	ID        uint64 `gorm:"primaryKey"`
	BloggID   uint64 `gorm:"not null;index;uniqueIndex:uk_blogg_user"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:uk_blogg_user"`
	CreatedAt time.Time
}
