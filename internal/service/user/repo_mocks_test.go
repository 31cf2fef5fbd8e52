package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
)

var (
	_ profileRepo = &profileRepoMock{}
	_ blogRepo    = &blogRepoMock{}
	_ visitorRepo = &visitorRepoMock{}
	_ tokenRepo   = &tokenRepoMock{}
	_ txManager   = &txManagerMock{}
)

type profileRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, bio, avatarURL, website *string) (*domain.Profile, error)
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) Update(ctx context.Context, id uuid.UUID, bio, avatarURL, website *string) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, bio, avatarURL, website)
}

type blogRepoMock struct {
	SoftDeleteByAuthorFunc func(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		SoftDeleteByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
		}
	}
	lockSoftDeleteByAuthor sync.RWMutex
}

func (mock *blogRepoMock) SoftDeleteByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	if mock.SoftDeleteByAuthorFunc == nil {
		panic("blogRepoMock.SoftDeleteByAuthorFunc: method is nil but blogRepo.SoftDeleteByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockSoftDeleteByAuthor.Lock()
	mock.calls.SoftDeleteByAuthor = append(mock.calls.SoftDeleteByAuthor, callInfo)
	mock.lockSoftDeleteByAuthor.Unlock()
	return mock.SoftDeleteByAuthorFunc(ctx, authorID)
}

func (mock *blogRepoMock) SoftDeleteByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
} {
	mock.lockSoftDeleteByAuthor.RLock()
	calls := mock.calls.SoftDeleteByAuthor
	mock.lockSoftDeleteByAuthor.RUnlock()
	return calls
}

type visitorRepoMock struct {
	SoftDeleteByBlogIDsFunc func(ctx context.Context, blogIDs []uuid.UUID) error

	calls struct {
		SoftDeleteByBlogIDs []struct {
			Ctx     context.Context
			BlogIDs []uuid.UUID
		}
	}
	lockSoftDeleteByBlogIDs sync.RWMutex
}

func (mock *visitorRepoMock) SoftDeleteByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) error {
	if mock.SoftDeleteByBlogIDsFunc == nil {
		panic("visitorRepoMock.SoftDeleteByBlogIDsFunc: method is nil but visitorRepo.SoftDeleteByBlogIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BlogIDs []uuid.UUID
	}{Ctx: ctx, BlogIDs: blogIDs}
	mock.lockSoftDeleteByBlogIDs.Lock()
	mock.calls.SoftDeleteByBlogIDs = append(mock.calls.SoftDeleteByBlogIDs, callInfo)
	mock.lockSoftDeleteByBlogIDs.Unlock()
	return mock.SoftDeleteByBlogIDsFunc(ctx, blogIDs)
}

func (mock *visitorRepoMock) SoftDeleteByBlogIDsCalls() []struct {
	Ctx     context.Context
	BlogIDs []uuid.UUID
} {
	mock.lockSoftDeleteByBlogIDs.RLock()
	calls := mock.calls.SoftDeleteByBlogIDs
	mock.lockSoftDeleteByBlogIDs.RUnlock()
	return calls
}

type tokenRepoMock struct {
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	return mock.RevokeAllByUserFunc(ctx, userID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
