package mysql

import (
	"errors"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository struct{}

func (r *RoleRepository) ListNames() ([]string, error) {
	var names []string
	err := DB.Model(&model.Role{}).Order("id ASC").Pluck("name", &names).Error
	return names, err
}

func (r *RoleRepository) Exists(name string) (bool, error) {
	var count int64
	err := DB.Model(&model.Role{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	return count > 0, err
}

// Ensure creates the role if missing, idempotent.
func (r *RoleRepository) Ensure(name string) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&model.Role{Name: name}).Error
}

func (r *RoleRepository) Delete(name string) (bool, error) {
	tx := DB.Where("LOWER(name) = LOWER(?)", name).Delete(&model.Role{})
	return tx.RowsAffected > 0, tx.Error
}

func (r *RoleRepository) RolesForUser(userID uint64) ([]string, error) {
	var roles []string
	err := DB.Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error
	return roles, err
}

func (r *RoleRepository) AddToUser(userID uint64, role string) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "role"}},
		DoNothing: true,
	}).Create(&model.UserRole{UserID: userID, Role: role}).Error
}

func (r *RoleRepository) RemoveFromUser(userID uint64, role string) (bool, error) {
	tx := DB.Where("user_id = ? AND role = ?", userID, role).Delete(&model.UserRole{})
	return tx.RowsAffected > 0, tx.Error
}

// ResolveByEmail looks up the current display name and role set for an
// identity key. ok is false when the user no longer exists.
func (r *RoleRepository) ResolveByEmail(email string) (name string, roles []string, ok bool, err error) {
	var user model.User
	if err := DB.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, false, nil
		}
		return "", nil, false, err
	}
	roles, err = r.RolesForUser(user.ID)
	if err != nil {
		return "", nil, false, err
	}
	return user.UserName, roles, true, nil
}
