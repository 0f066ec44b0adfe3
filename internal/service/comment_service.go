package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sarasblogg/internal/model"
)

// CommentStore is the persistence surface the gate writes through.
type CommentStore interface {
	List() ([]model.Comment, error)
	FindByID(id uint64) (*model.Comment, error)
	ListByBlogg(bloggID uint64) ([]model.Comment, error)
	Create(comment *model.Comment) error
	DeleteByID(id uint64) (bool, error)
	DeleteByBlogg(bloggID uint64) (int64, error)
}

// IdentityDirectory resolves an identity key to the user's current
// display name and role set. ok is false when no such user exists.
type IdentityDirectory interface {
	ResolveByEmail(email string) (name string, roles []string, ok bool, err error)
}

// SafetyClassifier scores free text; unsafe text must never reach the
// store. A transport error means the verdict is unknown and the gate
// fails closed.
type SafetyClassifier interface {
	IsSafe(ctx context.Context, text string) (bool, error)
}

// Caller is the request's authentication state. Email is the stable
// identity key, empty when anonymous.
type Caller struct {
	Email         string
	Authenticated bool
}

// CommentView is the outbound shape: the name and role are resolved
// live at read time so renames and promotions show up retroactively.
type CommentView struct {
	ID        uint64    `json:"id"`
	BloggID   uint64    `json:"blogg_id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	TopRole   string    `json:"top_role,omitempty"`
}

// CommentService is the sole authority for creating, reading and
// removing comments. It owns the safety gate, the identity binding
// rules and the ownership-or-moderator delete policy.
type CommentService struct {
	store      CommentStore
	directory  IdentityDirectory
	classifier SafetyClassifier
}

func NewCommentService(store CommentStore, directory IdentityDirectory, classifier SafetyClassifier) *CommentService {
	return &CommentService{
		store:      store,
		directory:  directory,
		classifier: classifier,
	}
}

func (s *CommentService) List(ctx context.Context) ([]CommentView, error) {
	comments, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return s.shapeAll(comments)
}

// Get returns nil when the id does not exist.
func (s *CommentService) Get(ctx context.Context, id uint64) (*CommentView, error) {
	comment, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	view, err := s.shape(*comment)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *CommentService) ListByBlogg(ctx context.Context, bloggID uint64) ([]CommentView, error) {
	comments, err := s.store.ListByBlogg(bloggID)
	if err != nil {
		return nil, err
	}
	return s.shapeAll(comments)
}

// Create runs the safety gate on both the submitted name and the
// content, then binds identity: a logged-in caller's comment gets the
// account's current display name and identity key regardless of the
// payload, an anonymous comment never carries an owner even if the
// payload smuggled one in.
func (s *CommentService) Create(ctx context.Context, caller Caller, name, content string, bloggID uint64) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	safe, err := s.classifier.IsSafe(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSafetyCheck, err)
	}
	if !safe {
		return nil, ErrUnsafeName
	}

	safe, err = s.classifier.IsSafe(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSafetyCheck, err)
	}
	if !safe {
		return nil, ErrUnsafeContent
	}

	comment := model.Comment{
		BloggID: bloggID,
		Name:    name,
		Content: content,
	}
	if caller.Authenticated {
		displayName, _, ok, err := s.directory.ResolveByEmail(caller.Email)
		if err != nil {
			return nil, err
		}
		if ok {
			comment.Name = displayName
			comment.UserEmail = caller.Email
		}
	}

	if err := s.store.Create(&comment); err != nil {
		return nil, err
	}

	view, err := s.shape(comment)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Delete removes a single comment. Owners may delete their own,
// moderators anyone's; the order of checks keeps "forbidden" distinct
// from "not found".
func (s *CommentService) Delete(ctx context.Context, caller Caller, id uint64) error {
	if !caller.Authenticated {
		return ErrAuthRequired
	}

	comment, err := s.store.FindByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if !s.ownedBy(comment, caller) {
		_, roles, ok, err := s.directory.ResolveByEmail(caller.Email)
		if err != nil {
			return err
		}
		if !ok || !model.IsModerator(roles) {
			return ErrForbidden
		}
	}

	deleted, err := s.store.DeleteByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

// DeleteByBlogg removes every comment under a post. Moderators only;
// ownership does not substitute. Zero matches is a success.
func (s *CommentService) DeleteByBlogg(ctx context.Context, caller Caller, bloggID uint64) (int64, error) {
	if !caller.Authenticated {
		return 0, ErrAuthRequired
	}

	_, roles, ok, err := s.directory.ResolveByEmail(caller.Email)
	if err != nil {
		return 0, err
	}
	if !ok || !model.IsModerator(roles) {
		return 0, ErrModeratorOnly
	}

	return s.store.DeleteByBlogg(bloggID)
}

func (s *CommentService) ownedBy(comment *model.Comment, caller Caller) bool {
	return comment.UserEmail != "" && strings.EqualFold(comment.UserEmail, caller.Email)
}

func (s *CommentService) shapeAll(comments []model.Comment) ([]CommentView, error) {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view, err := s.shape(comment)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// shape re-resolves the author at response time. A deleted author (or
// an anonymous comment) falls back to the stored name with no role.
func (s *CommentService) shape(comment model.Comment) (CommentView, error) {
	view := CommentView{
		ID:        comment.ID,
		BloggID:   comment.BloggID,
		Name:      comment.Name,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.UserEmail == "" {
		return view, nil
	}
	name, roles, ok, err := s.directory.ResolveByEmail(comment.UserEmail)
	if err != nil {
		return CommentView{}, err
	}
	if ok {
		view.Name = name
		view.TopRole = model.TopRole(roles)
	}
	return view, nil
}
