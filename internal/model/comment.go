package model

import "time"

// Comment belongs to a blogg post. UserEmail is the ownership anchor:
// set only when the comment was created by a logged-in user, empty for
// anonymous comments. Name may drift (renames), UserEmail never does.
type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	BloggID   uint64 `gorm:"not null;index:idx_blogg_created,priority:1"`
	Name      string `gorm:"size:64;not null"`
	UserEmail string `gorm:"size:64;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_blogg_created,priority:2"`
}
