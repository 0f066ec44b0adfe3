package service

import (
	"errors"

	"sarasblogg/internal/model"
	"sarasblogg/internal/repository/mysql"
)

var ErrAboutMeNotFound = errors.New("about-me is not set")

// AboutMeService manages the single presentation row of the site.
type AboutMeService struct {
	repo *mysql.AboutMeRepository
}

func NewAboutMeService() *AboutMeService {
	return &AboutMeService{repo: &mysql.AboutMeRepository{}}
}

func (s *AboutMeService) Get() (*model.AboutMe, error) {
	aboutMe, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if aboutMe == nil {
		return nil, ErrAboutMeNotFound
	}
	return aboutMe, nil
}

// Save creates the row on first use and updates it afterwards, there
// is never more than one.
func (s *AboutMeService) Save(aboutMe *model.AboutMe) error {
	current, err := s.repo.Get()
	if err != nil {
		return err
	}
	if current == nil {
		return s.repo.Create(aboutMe)
	}
	aboutMe.ID = current.ID
	// RowsAffected is 0 when nothing changed, existence is already known
	_, err = s.repo.Update(aboutMe)
	return err
}

func (s *AboutMeService) Delete(id uint64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAboutMeNotFound
	}
	return nil
}
