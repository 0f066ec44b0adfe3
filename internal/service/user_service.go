package service

import (
	"errors"
	"strings"

	"sarasblogg/internal/model"
	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/mysql"
	"sarasblogg/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRootUserProtected = errors.New("this account cannot be modified")
)

// UserView is what user listings expose, never the password hash.
type UserView struct {
	ID       uint64   `json:"id"`
	UserName string   `json:"user_name"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	TopRole  string   `json:"top_role,omitempty"`
}

// PersonalData is the explicit export set, a fixed field list rather
// than anything reflection-driven.
type PersonalData struct {
	Data  map[string]string `json:"data"`
	Roles []string          `json:"roles"`
}

type UserService struct {
	repo       *mysql.UserRepository
	roleRepo   *mysql.RoleRepository
	rUser      *redis.UserRepository
	emailSvc   *EmailService
	ownerEmail string
}

func NewUserService(emailSvc *EmailService, ownerEmail string) *UserService {
	return &UserService{
		repo:       &mysql.UserRepository{},
		roleRepo:   &mysql.RoleRepository{},
		rUser:      &redis.UserRepository{},
		emailSvc:   emailSvc,
		ownerEmail: ownerEmail,
	}
}

// Register creates the account once the emailed code checks out. The
// verified code doubles as email confirmation, and every new account
// starts with the plain user role.
func (s *UserService) Register(username, password, email, code string) error {
	ok, err := s.emailSvc.VerifyCode(ScopeRegister, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		UserName:        username,
		Password:        string(hash),
		Email:           email,
		EmailConfirmed:  true,
		NotifyOnNewPost: true,
	}
	if err := s.repo.Create(user); err != nil {
		return err
	}
	return s.roleRepo.AddToUser(user.ID, model.RoleUser)
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid credentials")
	}

	roles, err := s.roleRepo.RolesForUser(user.ID)
	if err != nil {
		return nil, err
	}
	pair, err := pkg.GeneratePair(user.ID, user.Email, roles)
	if err != nil {
		return nil, err
	}
	if err := s.rUser.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.rUser.DeleteUserToken(userID)
}

// Refresh re-reads roles before re-issuing so promotions and demotions
// take effect at the next refresh.
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	claims, err := pkg.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.RolesForUser(claims.UserID)
	if err != nil {
		return nil, err
	}
	pair, err := pkg.GeneratePair(claims.UserID, claims.Email, roles)
	if err != nil {
		return nil, err
	}
	if err := s.rUser.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	// force a fresh login
	return s.Logout(userID)
}

// ResetPassword is the forgot-password flow: emailed code instead of a
// logged-in session.
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyCode(ScopeReset, email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(user.ID)
}

func (s *UserService) Me(userID uint64) (*UserView, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.view(user)
}

// PersonalData exports the explicit field set for the account.
func (s *UserService) PersonalData(userID uint64) (*PersonalData, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	roles, err := s.roleRepo.RolesForUser(user.ID)
	if err != nil {
		return nil, err
	}
	return &PersonalData{
		Data: map[string]string{
			"UserName":       user.UserName,
			"Email":          user.Email,
			"EmailConfirmed": boolString(user.EmailConfirmed),
			"CreatedAt":      user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		},
		Roles: roles,
	}, nil
}

// DeleteSelf removes the caller's own account after a password
// confirmation. The site owner account refuses.
func (s *UserService) DeleteSelf(userID uint64, password string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if strings.EqualFold(user.Email, s.ownerEmail) {
		return ErrRootUserProtected
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return errors.New("password is incorrect")
	}
	if err := s.repo.Delete(userID); err != nil {
		return err
	}
	return s.Logout(userID)
}

/*
Admin operations
*/

func (s *UserService) ListUsers() ([]UserView, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for i := range users {
		view, err := s.view(&users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// GetUser returns nil when the id does not exist.
func (s *UserService) GetUser(id uint64) (*UserView, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.view(user)
}

func (s *UserService) UserRoles(id uint64) ([]string, error) {
	return s.roleRepo.RolesForUser(id)
}

func (s *UserService) DeleteUser(id uint64) error {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if strings.EqualFold(user.Email, s.ownerEmail) {
		return ErrRootUserProtected
	}
	return s.repo.Delete(id)
}

func (s *UserService) AddRole(id uint64, role string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrUserNotFound
	}
	exists, err := s.roleRepo.Exists(role)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("role does not exist")
	}
	return s.roleRepo.AddToUser(id, strings.ToLower(role))
}

func (s *UserService) RemoveRole(id uint64, role string) error {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if strings.EqualFold(user.Email, s.ownerEmail) {
		return ErrRootUserProtected
	}
	removed, err := s.roleRepo.RemoveFromUser(id, strings.ToLower(role))
	if err != nil {
		return err
	}
	if !removed {
		return errors.New("user does not hold that role")
	}
	return nil
}

func (s *UserService) ChangeUserName(id uint64, newUserName string) error {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	return s.repo.UpdateUserName(user, newUserName)
}

func (s *UserService) view(user *model.User) (*UserView, error) {
	roles, err := s.roleRepo.RolesForUser(user.ID)
	if err != nil {
		return nil, err
	}
	return &UserView{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Roles:    roles,
		TopRole:  model.TopRole(roles),
	}, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
