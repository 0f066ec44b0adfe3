package mysql

import (
	"sarasblogg/internal/model"
)

type ContactMeRepository struct{}

func (r *ContactMeRepository) List() ([]model.ContactMe, error) {
	var list []model.ContactMe
	err := DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ContactMeRepository) Create(contact *model.ContactMe) error {
	return DB.Create(contact).Error
}

func (r *ContactMeRepository) Delete(id uint64) (bool, error) {
	tx := DB.Delete(&model.ContactMe{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
