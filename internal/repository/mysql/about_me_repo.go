package mysql

import (
	"errors"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
)

type AboutMeRepository struct{}

// Get returns the single about-me row, nil when unset.
func (r *AboutMeRepository) Get() (*model.AboutMe, error) {
	var aboutMe model.AboutMe
	err := DB.Order("id ASC").First(&aboutMe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &aboutMe, nil
}

func (r *AboutMeRepository) Create(aboutMe *model.AboutMe) error {
	return DB.Create(aboutMe).Error
}

func (r *AboutMeRepository) Update(aboutMe *model.AboutMe) (bool, error) {
	tx := DB.Model(&model.AboutMe{}).Where("id = ?", aboutMe.ID).Updates(map[string]any{
		"title":     aboutMe.Title,
		"content":   aboutMe.Content,
		"image_url": aboutMe.ImageURL,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *AboutMeRepository) Delete(id uint64) (bool, error) {
	tx := DB.Delete(&model.AboutMe{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
