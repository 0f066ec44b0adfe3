package service

import (
	"context"
	"errors"
	"testing"

	"sarasblogg/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentStore is a mock of CommentStore
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) List() ([]model.Comment, error) {
	args := m.Called()
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentStore) FindByID(id uint64) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentStore) ListByBlogg(bloggID uint64) ([]model.Comment, error) {
	args := m.Called(bloggID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentStore) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentStore) DeleteByID(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentStore) DeleteByBlogg(bloggID uint64) (int64, error) {
	args := m.Called(bloggID)
	return args.Get(0).(int64), args.Error(1)
}

// MockDirectory is a mock of IdentityDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) ResolveByEmail(email string) (string, []string, bool, error) {
	args := m.Called(email)
	var roles []string
	if args.Get(1) != nil {
		roles = args.Get(1).([]string)
	}
	return args.String(0), roles, args.Bool(2), args.Error(3)
}

// MockClassifier is a mock of SafetyClassifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) IsSafe(ctx context.Context, text string) (bool, error) {
	args := m.Called(text)
	return args.Bool(0), args.Error(1)
}

func newGate() (*CommentService, *MockCommentStore, *MockDirectory, *MockClassifier) {
	store := new(MockCommentStore)
	directory := new(MockDirectory)
	classifier := new(MockClassifier)
	return NewCommentService(store, directory, classifier), store, directory, classifier
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous comment keeps the submitted name and no owner", func(t *testing.T) {
		svc, store, _, classifier := newGate()

		classifier.On("IsSafe", "Kalle").Return(true, nil)
		classifier.On("IsSafe", "Fint inlägg!").Return(true, nil)
		store.On("Create", mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
			comment := args.Get(0).(*model.Comment)
			assert.Equal(t, "Kalle", comment.Name)
			assert.Empty(t, comment.UserEmail)
		}).Return(nil)

		view, err := svc.Create(ctx, Caller{}, "Kalle", "Fint inlägg!", 7)

		assert.NoError(t, err)
		assert.Equal(t, "Kalle", view.Name)
		assert.Empty(t, view.TopRole)
		store.AssertExpectations(t)
	})

	t.Run("logged-in comment gets the account name and identity", func(t *testing.T) {
		svc, store, directory, classifier := newGate()

		classifier.On("IsSafe", mock.Anything).Return(true, nil)
		directory.On("ResolveByEmail", "sara@example.com").
			Return("Sara", []string{"admin"}, true, nil)
		store.On("Create", mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
			comment := args.Get(0).(*model.Comment)
			assert.Equal(t, "Sara", comment.Name)
			assert.Equal(t, "sara@example.com", comment.UserEmail)
		}).Return(nil)

		view, err := svc.Create(ctx, Caller{Email: "sara@example.com", Authenticated: true},
			"Smuggled Name", "Hej!", 7)

		assert.NoError(t, err)
		assert.Equal(t, "Sara", view.Name)
		assert.Equal(t, "admin", view.TopRole)
		store.AssertExpectations(t)
	})

	t.Run("empty content is rejected before any classification", func(t *testing.T) {
		svc, store, _, classifier := newGate()

		_, err := svc.Create(ctx, Caller{}, "Kalle", "   ", 7)

		assert.ErrorIs(t, err, ErrContentRequired)
		classifier.AssertNotCalled(t, "IsSafe", mock.Anything)
		store.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unsafe name never reaches the store", func(t *testing.T) {
		svc, store, _, classifier := newGate()

		classifier.On("IsSafe", "BadName").Return(false, nil)

		_, err := svc.Create(ctx, Caller{}, "BadName", "harmless text", 7)

		assert.ErrorIs(t, err, ErrUnsafeName)
		classifier.AssertNotCalled(t, "IsSafe", "harmless text")
		store.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unsafe content never reaches the store", func(t *testing.T) {
		svc, store, _, classifier := newGate()

		classifier.On("IsSafe", "Kalle").Return(true, nil)
		classifier.On("IsSafe", "bad text").Return(false, nil)

		_, err := svc.Create(ctx, Caller{}, "Kalle", "bad text", 7)

		assert.ErrorIs(t, err, ErrUnsafeContent)
		store.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("classifier failure fails closed", func(t *testing.T) {
		svc, store, _, classifier := newGate()

		classifier.On("IsSafe", mock.Anything).Return(false, errors.New("timeout"))

		_, err := svc.Create(ctx, Caller{}, "Kalle", "text", 7)

		assert.ErrorIs(t, err, ErrSafetyCheck)
		store.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("deleted account falls back to anonymous handling", func(t *testing.T) {
		svc, store, directory, classifier := newGate()

		classifier.On("IsSafe", mock.Anything).Return(true, nil)
		directory.On("ResolveByEmail", "gone@example.com").Return("", nil, false, nil)
		store.On("Create", mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
			comment := args.Get(0).(*model.Comment)
			assert.Equal(t, "Kalle", comment.Name)
			assert.Empty(t, comment.UserEmail)
		}).Return(nil)

		_, err := svc.Create(ctx, Caller{Email: "gone@example.com", Authenticated: true},
			"Kalle", "text", 7)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	owned := &model.Comment{ID: 1, BloggID: 7, Name: "Sara", UserEmail: "sara@example.com"}

	t.Run("unauthenticated delete is refused", func(t *testing.T) {
		svc, store, _, _ := newGate()

		err := svc.Delete(ctx, Caller{}, 1)

		assert.ErrorIs(t, err, ErrAuthRequired)
		store.AssertNotCalled(t, "FindByID", mock.Anything)
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		svc, store, _, _ := newGate()

		store.On("FindByID", uint64(99)).Return(nil, nil)

		err := svc.Delete(ctx, Caller{Email: "sara@example.com", Authenticated: true}, 99)

		assert.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("owner deletes their own comment", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("FindByID", uint64(1)).Return(owned, nil)
		store.On("DeleteByID", uint64(1)).Return(true, nil)

		err := svc.Delete(ctx, Caller{Email: "SARA@example.com", Authenticated: true}, 1)

		assert.NoError(t, err)
		directory.AssertNotCalled(t, "ResolveByEmail", mock.Anything)
		store.AssertExpectations(t)
	})

	t.Run("a third user is forbidden, not told the comment is missing", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("FindByID", uint64(1)).Return(owned, nil)
		directory.On("ResolveByEmail", "other@example.com").
			Return("Other", []string{"user"}, true, nil)

		err := svc.Delete(ctx, Caller{Email: "other@example.com", Authenticated: true}, 1)

		assert.ErrorIs(t, err, ErrForbidden)
		store.AssertNotCalled(t, "DeleteByID", mock.Anything)
	})

	t.Run("a moderator may delete anyone's comment", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("FindByID", uint64(1)).Return(owned, nil)
		directory.On("ResolveByEmail", "mod@example.com").
			Return("Mod", []string{"superuser"}, true, nil)
		store.On("DeleteByID", uint64(1)).Return(true, nil)

		err := svc.Delete(ctx, Caller{Email: "mod@example.com", Authenticated: true}, 1)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("anonymous comments are never owned", func(t *testing.T) {
		svc, store, directory, _ := newGate()
		anonymous := &model.Comment{ID: 2, BloggID: 7, Name: "Drive-by"}

		store.On("FindByID", uint64(2)).Return(anonymous, nil)
		directory.On("ResolveByEmail", "user@example.com").
			Return("User", []string{"user"}, true, nil)

		err := svc.Delete(ctx, Caller{Email: "user@example.com", Authenticated: true}, 2)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDeleteByBlogg(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated bulk delete is refused", func(t *testing.T) {
		svc, store, _, _ := newGate()

		_, err := svc.DeleteByBlogg(ctx, Caller{}, 7)

		assert.ErrorIs(t, err, ErrAuthRequired)
		store.AssertNotCalled(t, "DeleteByBlogg", mock.Anything)
	})

	t.Run("ownership does not substitute for the moderator role", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		directory.On("ResolveByEmail", "sara@example.com").
			Return("Sara", []string{"user"}, true, nil)

		_, err := svc.DeleteByBlogg(ctx, Caller{Email: "sara@example.com", Authenticated: true}, 7)

		assert.ErrorIs(t, err, ErrModeratorOnly)
		store.AssertNotCalled(t, "DeleteByBlogg", mock.Anything)
	})

	t.Run("moderator clears the thread", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		directory.On("ResolveByEmail", "mod@example.com").
			Return("Mod", []string{"admin"}, true, nil)
		store.On("DeleteByBlogg", uint64(7)).Return(int64(3), nil)

		count, err := svc.DeleteByBlogg(ctx, Caller{Email: "mod@example.com", Authenticated: true}, 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("a second run with nothing left still succeeds", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		directory.On("ResolveByEmail", "mod@example.com").
			Return("Mod", []string{"admin"}, true, nil)
		store.On("DeleteByBlogg", uint64(7)).Return(int64(0), nil)

		count, err := svc.DeleteByBlogg(ctx, Caller{Email: "mod@example.com", Authenticated: true}, 7)

		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestCommentViews(t *testing.T) {
	ctx := context.Background()

	t.Run("owned comments resolve the live name and top role", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("ListByBlogg", uint64(7)).Return([]model.Comment{
			{ID: 1, BloggID: 7, Name: "Old Name", UserEmail: "sara@example.com"},
			{ID: 2, BloggID: 7, Name: "Drive-by"},
		}, nil)
		directory.On("ResolveByEmail", "sara@example.com").
			Return("Sara Renamed", []string{"user", "admin"}, true, nil)

		views, err := svc.ListByBlogg(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Sara Renamed", views[0].Name)
		assert.Equal(t, "admin", views[0].TopRole)
		assert.Equal(t, "Drive-by", views[1].Name)
		assert.Empty(t, views[1].TopRole)
	})

	t.Run("a deleted author falls back to the stored name", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("ListByBlogg", uint64(7)).Return([]model.Comment{
			{ID: 1, BloggID: 7, Name: "Sara", UserEmail: "gone@example.com"},
		}, nil)
		directory.On("ResolveByEmail", "gone@example.com").Return("", nil, false, nil)

		views, err := svc.ListByBlogg(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Sara", views[0].Name)
		assert.Empty(t, views[0].TopRole)
	})

	t.Run("a directory failure propagates", func(t *testing.T) {
		svc, store, directory, _ := newGate()

		store.On("ListByBlogg", uint64(7)).Return([]model.Comment{
			{ID: 1, BloggID: 7, Name: "Sara", UserEmail: "sara@example.com"},
		}, nil)
		directory.On("ResolveByEmail", "sara@example.com").
			Return("", nil, false, errors.New("db down"))

		_, err := svc.ListByBlogg(ctx, 7)

		assert.Error(t, err)
	})
}
