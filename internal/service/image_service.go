package service

import (
	"context"
	"errors"

	"sarasblogg/internal/model"
	"sarasblogg/internal/repository/mysql"
)

var ErrImageNotFound = errors.New("image not found")

type ImageService struct {
	repo      *mysql.BloggImageRepository
	bloggRepo *mysql.BloggRepository
	storage   *GitHubStorage
}

func NewImageService(storage *GitHubStorage) *ImageService {
	return &ImageService{
		repo:      &mysql.BloggImageRepository{},
		bloggRepo: &mysql.BloggRepository{},
		storage:   storage,
	}
}

func (s *ImageService) ListByBlogg(bloggID uint64) ([]model.BloggImage, error) {
	return s.repo.ListByBlogg(bloggID)
}

// Upload pushes the file to storage and records the row; the row gets
// the next order slot for the post.
func (s *ImageService) Upload(ctx context.Context, bloggID uint64, fileName string, data []byte) (*model.BloggImage, error) {
	exists, err := s.bloggRepo.Exists(bloggID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBloggNotFound
	}

	imageURL, err := s.storage.SaveImage(ctx, bloggID, fileName, data)
	if err != nil {
		return nil, err
	}

	image := &model.BloggImage{
		BloggID:  bloggID,
		FilePath: imageURL,
	}
	if err := s.repo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Reorder persists the given id order as 0..n-1. Unknown ids are
// skipped.
func (s *ImageService) Reorder(bloggID uint64, orderedIDs []uint64) error {
	existing, err := s.repo.ListByBlogg(bloggID)
	if err != nil {
		return err
	}
	known := make(map[uint64]bool, len(existing))
	for _, image := range existing {
		known[image.ID] = true
	}
	for i, id := range orderedIDs {
		if !known[id] {
			continue
		}
		if err := s.repo.UpdateOrder(id, i); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the remote file first, then the row.
func (s *ImageService) Delete(ctx context.Context, id uint64) error {
	image, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}
	if err := s.storage.DeleteImage(ctx, image.FilePath); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrImageNotFound
	}
	return nil
}

func (s *ImageService) DeleteByBlogg(ctx context.Context, bloggID uint64) error {
	images, err := s.repo.ListByBlogg(bloggID)
	if err != nil {
		return err
	}
	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.FilePath)
	}
	if err := s.storage.DeleteBloggFolder(ctx, bloggID, urls); err != nil {
		return err
	}
	_, err = s.repo.DeleteByBlogg(bloggID)
	return err
}
