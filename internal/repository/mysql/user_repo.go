package mysql

import (
	"sarasblogg/internal/model"
)

type UserRepository struct{}

func (r *UserRepository) Create(user *model.User) error {
	return DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := DB.Where("user_name = ? OR email = ?", username, username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := DB.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var list []model.User
	err := DB.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return DB.Model(user).Update("password", newPassword).Error
}

func (r *UserRepository) UpdateUserName(user *model.User, newUserName string) error {
	return DB.Model(user).Update("user_name", newUserName).Error
}

func (r *UserRepository) UpdateNotify(user *model.User, notify bool) error {
	return DB.Model(user).Update("notify_on_new_post", notify).Error
}

func (r *UserRepository) ConfirmEmail(user *model.User) error {
	return DB.Model(user).Update("email_confirmed", true).Error
}

// Delete removes the user and their role rows.
func (r *UserRepository) Delete(id uint64) error {
	if err := DB.Delete(&model.UserRole{}, "user_id = ?", id).Error; err != nil {
		return err
	}
	return DB.Delete(&model.User{}, "id = ?", id).Error
}

// NotifyRecipients lists addresses for new-post mail: confirmed email
// plus opt-in.
func (r *UserRepository) NotifyRecipients() ([]string, error) {
	var emails []string
	err := DB.Model(&model.User{}).
		Where("email_confirmed = ? AND notify_on_new_post = ?", true, true).
		Pluck("email", &emails).Error
	return emails, err
}
