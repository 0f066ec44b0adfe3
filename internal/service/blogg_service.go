package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sarasblogg/internal/model"
	"sarasblogg/internal/repository/mysql"
)

var ErrBloggNotFound = errors.New("blogg not found")

type BloggService struct {
	repo        *mysql.BloggRepository
	commentRepo *mysql.CommentRepository
	likeRepo    *mysql.BloggLikeRepository
	outboxRepo  *mysql.OutboxRepository
	imageSvc    *ImageService
}

func NewBloggService(imageSvc *ImageService) *BloggService {
	return &BloggService{
		repo:        &mysql.BloggRepository{},
		commentRepo: &mysql.CommentRepository{},
		likeRepo:    &mysql.BloggLikeRepository{},
		outboxRepo:  &mysql.OutboxRepository{},
		imageSvc:    imageSvc,
	}
}

func (s *BloggService) List() ([]model.Blogg, error) {
	return s.repo.List()
}

// Get returns nil when the id does not exist.
func (s *BloggService) Get(id uint64) (*model.Blogg, error) {
	return s.repo.FindByID(id)
}

// Create stores the post and, when it is publicly visible, queues a
// publish event for the notifier.
func (s *BloggService) Create(blogg *model.Blogg) error {
	if blogg.Title == "" {
		return errors.New("title required")
	}
	if blogg.LaunchDate.IsZero() {
		blogg.LaunchDate = time.Now().UTC()
	}
	if err := s.repo.Create(blogg); err != nil {
		return err
	}
	if !blogg.Hidden && !blogg.IsArchived {
		payload, err := json.Marshal(map[string]any{
			"blogg_id": blogg.ID,
			"title":    blogg.Title,
		})
		if err != nil {
			return err
		}
		return s.outboxRepo.Enqueue(&model.BloggOutbox{
			EventType: "blogg.published",
			BloggID:   blogg.ID,
			Payload:   string(payload),
		})
	}
	return nil
}

func (s *BloggService) Update(blogg *model.Blogg) error {
	if blogg.Title == "" {
		return errors.New("title required")
	}
	// RowsAffected is 0 for a no-op update, so existence is checked
	// separately.
	exists, err := s.repo.Exists(blogg.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBloggNotFound
	}
	_, err = s.repo.Update(blogg)
	return err
}

// Delete removes the post and everything hanging off it: comments,
// stored images (remote files included) and likes.
func (s *BloggService) Delete(ctx context.Context, id uint64) error {
	blogg, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if blogg == nil {
		return ErrBloggNotFound
	}

	if err := s.imageSvc.DeleteByBlogg(ctx, id); err != nil {
		return err
	}
	if _, err := s.commentRepo.DeleteByBlogg(id); err != nil {
		return err
	}
	if _, err := s.likeRepo.DeleteByBlogg(id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBloggNotFound
	}
	return nil
}
