package service

import (
	"errors"
	"strings"

	"sarasblogg/internal/model"
	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/mysql"

	"go.uber.org/zap"
)

var ErrContactNotFound = errors.New("message not found")

type ContactMeService struct {
	repo       *mysql.ContactMeRepository
	smtp       pkg.SMTPConfig
	ownerEmail string
}

func NewContactMeService(smtp pkg.SMTPConfig, ownerEmail string) *ContactMeService {
	return &ContactMeService{
		repo:       &mysql.ContactMeRepository{},
		smtp:       smtp,
		ownerEmail: ownerEmail,
	}
}

func (s *ContactMeService) List() ([]model.ContactMe, error) {
	return s.repo.List()
}

// Create stores the message and mails the site owner a copy. The mail
// is best effort, the stored row is the source of truth.
func (s *ContactMeService) Create(contact *model.ContactMe) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Message = strings.TrimSpace(contact.Message)
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return errors.New("name, email and message are required")
	}

	if err := s.repo.Create(contact); err != nil {
		return err
	}

	go func(c model.ContactMe) {
		body := pkg.ContactMessageHTML(c.Name, c.Email, c.Subject, c.Message)
		if err := pkg.SendEmail(s.smtp, s.ownerEmail, "Nytt meddelande via kontaktformuläret", body); err != nil {
			pkg.Log.Warn("contact mail failed", zap.Uint64("contact_id", c.ID), zap.Error(err))
		}
	}(*contact)

	return nil
}

func (s *ContactMeService) Delete(id uint64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}
	return nil
}
