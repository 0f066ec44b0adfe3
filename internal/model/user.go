package model

import "time"

type User struct {
	ID              uint64 `gorm:"primaryKey"`
	UserName        string `gorm:"uniqueIndex;size:32;not null"`
	Email           string `gorm:"uniqueIndex;size:64;not null"`
	Password        string `gorm:"size:255;not null"`
	EmailConfirmed  bool   `gorm:"not null;default:false"`
	NotifyOnNewPost bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserRole joins users to role names. A user may hold several roles;
// the displayed badge is the top-ranked one.
type UserRole struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_role"`
	Role      string `gorm:"size:32;not null;uniqueIndex:uk_user_role"`
	CreatedAt time.Time
}

func (UserRole) TableName() string { return "user_roles" }
