package blog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	blogrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/blog"
	"github.com/sangseok/blog-backend/internal/domain"
)

var (
	_ blogRepo    = &blogRepoMock{}
	_ tagRepo     = &tagRepoMock{}
	_ visitorRepo = &visitorRepoMock{}
	_ txManager   = &txManagerMock{}
)

type blogRepoMock struct {
	CreateFunc      func(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFunc        func(ctx context.Context, filter blogrepo.Filter) ([]*domain.Blog, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, title string, description *string, content string) (*domain.Blog, error)
	SoftDeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ReplaceTagsFunc func(ctx context.Context, blogID uuid.UUID, tagIDs []uuid.UUID) error

	calls struct {
		ReplaceTags []struct {
			Ctx    context.Context
			BlogID uuid.UUID
			TagIDs []uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockReplaceTags sync.RWMutex
	lockSoftDelete  sync.RWMutex
}

func (mock *blogRepoMock) Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	if mock.CreateFunc == nil {
		panic("blogRepoMock.CreateFunc: method is nil but blogRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, b)
}

func (mock *blogRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if mock.GetByIDFunc == nil {
		panic("blogRepoMock.GetByIDFunc: method is nil but blogRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *blogRepoMock) List(ctx context.Context, filter blogrepo.Filter) ([]*domain.Blog, error) {
	if mock.ListFunc == nil {
		panic("blogRepoMock.ListFunc: method is nil but blogRepo.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}

func (mock *blogRepoMock) Update(ctx context.Context, id uuid.UUID, title string, description *string, content string) (*domain.Blog, error) {
	if mock.UpdateFunc == nil {
		panic("blogRepoMock.UpdateFunc: method is nil but blogRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, title, description, content)
}

func (mock *blogRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("blogRepoMock.SoftDeleteFunc: method is nil but blogRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *blogRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *blogRepoMock) ReplaceTags(ctx context.Context, blogID uuid.UUID, tagIDs []uuid.UUID) error {
	if mock.ReplaceTagsFunc == nil {
		panic("blogRepoMock.ReplaceTagsFunc: method is nil but blogRepo.ReplaceTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BlogID uuid.UUID
		TagIDs []uuid.UUID
	}{Ctx: ctx, BlogID: blogID, TagIDs: tagIDs}
	mock.lockReplaceTags.Lock()
	mock.calls.ReplaceTags = append(mock.calls.ReplaceTags, callInfo)
	mock.lockReplaceTags.Unlock()
	return mock.ReplaceTagsFunc(ctx, blogID, tagIDs)
}

func (mock *blogRepoMock) ReplaceTagsCalls() []struct {
	Ctx    context.Context
	BlogID uuid.UUID
	TagIDs []uuid.UUID
} {
	mock.lockReplaceTags.RLock()
	calls := mock.calls.ReplaceTags
	mock.lockReplaceTags.RUnlock()
	return calls
}

type tagRepoMock struct {
	EnsureByNamesFunc func(ctx context.Context, names []string) ([]domain.Tag, error)
	ListAllFunc       func(ctx context.Context) ([]domain.Tag, error)
	ListByBlogIDFunc  func(ctx context.Context, blogID uuid.UUID) ([]domain.Tag, error)
	ListByBlogIDsFunc func(ctx context.Context, blogIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

func (mock *tagRepoMock) EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error) {
	if mock.EnsureByNamesFunc == nil {
		panic("tagRepoMock.EnsureByNamesFunc: method is nil but tagRepo.EnsureByNames was just called")
	}
	return mock.EnsureByNamesFunc(ctx, names)
}

func (mock *tagRepoMock) ListAll(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListAllFunc == nil {
		panic("tagRepoMock.ListAllFunc: method is nil but tagRepo.ListAll was just called")
	}
	return mock.ListAllFunc(ctx)
}

func (mock *tagRepoMock) ListByBlogID(ctx context.Context, blogID uuid.UUID) ([]domain.Tag, error) {
	if mock.ListByBlogIDFunc == nil {
		panic("tagRepoMock.ListByBlogIDFunc: method is nil but tagRepo.ListByBlogID was just called")
	}
	return mock.ListByBlogIDFunc(ctx, blogID)
}

func (mock *tagRepoMock) ListByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	if mock.ListByBlogIDsFunc == nil {
		panic("tagRepoMock.ListByBlogIDsFunc: method is nil but tagRepo.ListByBlogIDs was just called")
	}
	return mock.ListByBlogIDsFunc(ctx, blogIDs)
}

type visitorRepoMock struct {
	CreateFunc              func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	ListByBlogFunc          func(ctx context.Context, blogID uuid.UUID, limit, offset int) ([]*domain.Visitor, error)
	CountByBlogFunc         func(ctx context.Context, blogID uuid.UUID) (int64, error)
	SoftDeleteByBlogIDsFunc func(ctx context.Context, blogIDs []uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Visitor *domain.Visitor
		}
		SoftDeleteByBlogIDs []struct {
			Ctx     context.Context
			BlogIDs []uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockSoftDeleteByBlogIDs sync.RWMutex
}

func (mock *visitorRepoMock) Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	if mock.CreateFunc == nil {
		panic("visitorRepoMock.CreateFunc: method is nil but visitorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Visitor *domain.Visitor
	}{Ctx: ctx, Visitor: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *visitorRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Visitor *domain.Visitor
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *visitorRepoMock) ListByBlog(ctx context.Context, blogID uuid.UUID, limit, offset int) ([]*domain.Visitor, error) {
	if mock.ListByBlogFunc == nil {
		panic("visitorRepoMock.ListByBlogFunc: method is nil but visitorRepo.ListByBlog was just called")
	}
	return mock.ListByBlogFunc(ctx, blogID, limit, offset)
}

func (mock *visitorRepoMock) CountByBlog(ctx context.Context, blogID uuid.UUID) (int64, error) {
	if mock.CountByBlogFunc == nil {
		panic("visitorRepoMock.CountByBlogFunc: method is nil but visitorRepo.CountByBlog was just called")
	}
	return mock.CountByBlogFunc(ctx, blogID)
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

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
