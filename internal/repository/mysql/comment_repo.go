package mysql

import (
	"errors"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct{}

func (r *CommentRepository) List() ([]model.Comment, error) {
	var list []model.Comment
	err := DB.Find(&list).Error
	return list, err
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := DB.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByBlogg returns a post's comments oldest first.
func (r *CommentRepository) ListByBlogg(bloggID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := DB.
		Where("blogg_id = ?", bloggID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return DB.Create(comment).Error
}

func (r *CommentRepository) DeleteByID(id uint64) (bool, error) {
	tx := DB.Delete(&model.Comment{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *CommentRepository) DeleteByBlogg(bloggID uint64) (int64, error) {
	tx := DB.Delete(&model.Comment{}, "blogg_id = ?", bloggID)
	return tx.RowsAffected, tx.Error
}
