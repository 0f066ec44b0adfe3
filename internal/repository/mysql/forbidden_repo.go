package mysql

import (
	"sarasblogg/internal/model"
)

type ForbiddenWordRepository struct{}

func (r *ForbiddenWordRepository) ListPatterns() ([]string, error) {
	var patterns []string
	err := DB.Model(&model.ForbiddenWord{}).Pluck("word_pattern", &patterns).Error
	return patterns, err
}
