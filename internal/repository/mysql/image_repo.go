package mysql

import (
	"errors"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
)

type BloggImageRepository struct{}

func (r *BloggImageRepository) ListByBlogg(bloggID uint64) ([]model.BloggImage, error) {
	var list []model.BloggImage
	err := DB.Where("blogg_id = ?", bloggID).Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *BloggImageRepository) FindByID(id uint64) (*model.BloggImage, error) {
	var image model.BloggImage
	err := DB.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Create appends the image last in the post's ordering (max+1).
func (r *BloggImageRepository) Create(image *model.BloggImage) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Model(&model.BloggImage{}).
			Where("blogg_id = ?", image.BloggID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&max).Error; err != nil {
			return err
		}
		image.Order = max + 1
		return tx.Create(image).Error
	})
}

func (r *BloggImageRepository) UpdateOrder(id uint64, order int) error {
	return DB.Model(&model.BloggImage{}).Where("id = ?", id).Update("sort_order", order).Error
}

func (r *BloggImageRepository) Delete(id uint64) (bool, error) {
	tx := DB.Delete(&model.BloggImage{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *BloggImageRepository) DeleteByBlogg(bloggID uint64) (int64, error) {
	tx := DB.Delete(&model.BloggImage{}, "blogg_id = ?", bloggID)
	return tx.RowsAffected, tx.Error
}
