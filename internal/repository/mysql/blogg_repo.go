package mysql

import (
	"errors"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
)

type BloggRepository struct{}

// List returns every post, newest launch first.
func (r *BloggRepository) List() ([]model.Blogg, error) {
	var list []model.Blogg
	err := DB.Order("launch_date DESC").Find(&list).Error
	return list, err
}

func (r *BloggRepository) FindByID(id uint64) (*model.Blogg, error) {
	var blogg model.Blogg
	err := DB.First(&blogg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogg, nil
}

func (r *BloggRepository) Exists(id uint64) (bool, error) {
	var count int64
	err := DB.Model(&model.Blogg{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *BloggRepository) Create(blogg *model.Blogg) error {
	return DB.Create(blogg).Error
}

func (r *BloggRepository) Update(blogg *model.Blogg) (bool, error) {
	tx := DB.Model(&model.Blogg{}).Where("id = ?", blogg.ID).Updates(map[string]any{
		"title":       blogg.Title,
		"content":     blogg.Content,
		"author":      blogg.Author,
		"launch_date": blogg.LaunchDate,
		"hidden":      blogg.Hidden,
		"is_archived": blogg.IsArchived,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *BloggRepository) Delete(id uint64) (bool, error) {
	tx := DB.Delete(&model.Blogg{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
