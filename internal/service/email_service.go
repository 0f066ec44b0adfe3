package service

import (
	"errors"

	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/redis"
)

const (
	ScopeRegister = "register"
	ScopeReset    = "reset"
)

var ErrInvalidScope = errors.New("invalid code scope")

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendCode generates, stores and mails a 6-digit code for the given
// flow.
func (s *EmailService) SendCode(scope, email string) error {
	var action, subject string
	switch scope {
	case ScopeRegister:
		action, subject = "registrera ett konto", "SarasBlogg verifieringskod"
	case ScopeReset:
		action, subject = "återställa ditt lösenord", "SarasBlogg återställningskod"
	default:
		return ErrInvalidScope
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err := s.rds.SetCode(scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(action, code, redis.DefaultEmailCodeTTL)
	if err := pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		// the code is unusable if the mail never went out
		_ = s.rds.DeleteCode(scope, email)
		return err
	}
	return nil
}

// VerifyCode checks and consumes a code. A matching code is deleted so
// it cannot be replayed.
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	stored, err := s.rds.GetCode(scope, email)
	if err != nil {
		if errors.Is(err, redis.ErrEmailCodeNotFound) {
			return false, nil
		}
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.rds.DeleteCode(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
