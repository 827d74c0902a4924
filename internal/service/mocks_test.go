package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) FindByTitle(ctx context.Context, title string) (*model.Tag, error) {
	args := m.Called(ctx, title)
	if t, ok := args.Get(0).(*model.Tag); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	if id, ok := args.Get(0).(int64); ok {
		tag.ID = id
	}
	return args.Error(1)
}

var _ repo.TagRepository = (*mockTagRepo)(nil)

type mockContentRepo struct{ mock.Mock }

func (m *mockContentRepo) Create(ctx context.Context, c *model.Content) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) DeleteByID(ctx context.Context, id string, ownerID int64) (*model.Content, error) {
	args := m.Called(ctx, id, ownerID)
	if v, ok := args.Get(0).(*model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ContentRepository = (*mockContentRepo)(nil)

type mockShareRepo struct{ mock.Mock }

func (m *mockShareRepo) Create(ctx context.Context, l *model.ShareLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockShareRepo) FindByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	args := m.Called(ctx, hash)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) FindByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) DeleteOneByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ShareLinkRepository = (*mockShareRepo)(nil)

// memTagRepo — потокобезопасный фейк с уникальностью title, как у хранилища.
// Барьер gate заставляет все вызовы FindByTitle промахнуться до первой вставки.
type memTagRepo struct {
	mu     sync.Mutex
	byName map[string]int64
	nextID int64
	rows   int
	gate   *sync.WaitGroup
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{byName: map[string]int64{}}
}

func (r *memTagRepo) FindByTitle(_ context.Context, title string) (*model.Tag, error) {
	r.mu.Lock()
	id, ok := r.byName[title]
	r.mu.Unlock()
	if !ok {
		if r.gate != nil {
			r.gate.Done()
			r.gate.Wait()
		}
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Tag{ID: id, Title: title}, nil
}

func (r *memTagRepo) Create(_ context.Context, tag *model.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[tag.Title]; ok {
		return repo.ErrDuplicate
	}
	r.nextID++
	r.rows++
	tag.ID = r.nextID
	r.byName[tag.Title] = tag.ID
	return nil
}

// memCache — фейк LinkCache
type memCache struct {
	mu   sync.Mutex
	data map[string]int64
	err  error
}

func newMemCache() *memCache { return &memCache{data: map[string]int64{}} }

func (c *memCache) Get(_ context.Context, hash string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, false, c.err
	}
	id, ok := c.data[hash]
	return id, ok, nil
}

func (c *memCache) Set(_ context.Context, hash string, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[hash] = userID
	return nil
}

func (c *memCache) Delete(_ context.Context, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, hash)
	return c.err
}
