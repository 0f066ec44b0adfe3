package service

import (
	"errors"
	"strings"

	"sarasblogg/internal/model"
	"sarasblogg/internal/repository/mysql"
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleProtected = errors.New("the superadmin role cannot be deleted")
)

type RoleService struct {
	repo *mysql.RoleRepository
}

func NewRoleService() *RoleService {
	return &RoleService{repo: &mysql.RoleRepository{}}
}

func (s *RoleService) List() ([]string, error) {
	return s.repo.ListNames()
}

// Create is idempotent, an existing role is fine.
func (s *RoleService) Create(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return errors.New("role name required")
	}
	return s.repo.Ensure(name)
}

func (s *RoleService) Delete(name string) error {
	if strings.EqualFold(name, model.RoleSuperadmin) {
		return ErrRoleProtected
	}
	deleted, err := s.repo.Delete(name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoleNotFound
	}
	return nil
}
