package mysql

import (
	"sarasblogg/internal/model"

	"gorm.io/gorm/clause"
)

type BloggLikeRepository struct{}

func (r *BloggLikeRepository) Count(bloggID uint64) (int64, error) {
	var count int64
	err := DB.Model(&model.BloggLike{}).Where("blogg_id = ?", bloggID).Count(&count).Error
	return count, err
}

func (r *BloggLikeRepository) Exists(bloggID uint64, userID string) (bool, error) {
	var count int64
	err := DB.Model(&model.BloggLike{}).
		Where("blogg_id = ? AND user_id = ?", bloggID, userID).
		Count(&count).Error
	return count > 0, err
}

// Add is idempotent: inserting an existing (blogg, user) pair is a
// no-op.
func (r *BloggLikeRepository) Add(like *model.BloggLike) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blogg_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(like).Error
}

func (r *BloggLikeRepository) Delete(bloggID uint64, userID string) (bool, error) {
	tx := DB.Where("blogg_id = ? AND user_id = ?", bloggID, userID).Delete(&model.BloggLike{})
	return tx.RowsAffected > 0, tx.Error
}

func (r *BloggLikeRepository) DeleteByBlogg(bloggID uint64) (int64, error) {
	tx := DB.Delete(&model.BloggLike{}, "blogg_id = ?", bloggID)
	return tx.RowsAffected, tx.Error
}
