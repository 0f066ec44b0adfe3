package service

import (
	"errors"

	"sarasblogg/internal/model"
	"sarasblogg/internal/repository/mysql"
)

var ErrLikeNotFound = errors.New("like not found")

// LikeStatus is the response shape for every like operation: the
// current count plus whether the asking user has liked.
type LikeStatus struct {
	BloggID uint64 `json:"blogg_id"`
	UserID  string `json:"user_id"`
	Count   int64  `json:"count"`
	Liked   bool   `json:"liked"`
}

type LikeService struct {
	repo *mysql.BloggLikeRepository
}

func NewLikeService() *LikeService {
	return &LikeService{repo: &mysql.BloggLikeRepository{}}
}

// Get returns the count and, when userID is non-empty, whether that
// user has liked the post.
func (s *LikeService) Get(bloggID uint64, userID string) (*LikeStatus, error) {
	count, err := s.repo.Count(bloggID)
	if err != nil {
		return nil, err
	}
	liked := false
	if userID != "" {
		liked, err = s.repo.Exists(bloggID, userID)
		if err != nil {
			return nil, err
		}
	}
	return &LikeStatus{BloggID: bloggID, UserID: userID, Count: count, Liked: liked}, nil
}

// Add is idempotent, liking twice changes nothing.
func (s *LikeService) Add(bloggID uint64, userID string) (*LikeStatus, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	if err := s.repo.Add(&model.BloggLike{BloggID: bloggID, UserID: userID}); err != nil {
		return nil, err
	}
	count, err := s.repo.Count(bloggID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{BloggID: bloggID, UserID: userID, Count: count, Liked: true}, nil
}

func (s *LikeService) Remove(bloggID uint64, userID string) (*LikeStatus, error) {
	deleted, err := s.repo.Delete(bloggID, userID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrLikeNotFound
	}
	count, err := s.repo.Count(bloggID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{BloggID: bloggID, UserID: userID, Count: count, Liked: false}, nil
}
