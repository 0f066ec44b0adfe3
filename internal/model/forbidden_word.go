package model

type ForbiddenWord struct {
	ID          uint64 `gorm:"primaryKey"`
	WordPattern string `gorm:"size:128;not null"`
}

func (ForbiddenWord) TableName() string { return "forbidden_words" }
