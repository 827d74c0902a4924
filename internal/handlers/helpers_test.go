package handlers_test

import (
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/handlers"
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/token"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AuthSecret:      testSecret,
		SingleShareLink: true,
		OwnerOnlyDelete: true,
		PublicRPS:       1000,
		PublicBurst:     1000,
	}
}

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockTagRepo struct{ mock.Mock }

func (m *hMockTagRepo) FindByTitle(ctx context.Context, title string) (*model.Tag, error) {
	args := m.Called(ctx, title)
	if t, ok := args.Get(0).(*model.Tag); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockTagRepo) Create(ctx context.Context, tag *model.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

var _ repo.TagRepository = (*hMockTagRepo)(nil)

type hMockContentRepo struct{ mock.Mock }

func (m *hMockContentRepo) Create(ctx context.Context, c *model.Content) error {
	return m.Called(ctx, c).Error(0)
}
func (m *hMockContentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockContentRepo) DeleteByID(ctx context.Context, id string, ownerID int64) (*model.Content, error) {
	args := m.Called(ctx, id, ownerID)
	if v, ok := args.Get(0).(*model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ContentRepository = (*hMockContentRepo)(nil)

type hMockShareRepo struct{ mock.Mock }

func (m *hMockShareRepo) Create(ctx context.Context, l *model.ShareLink) error {
	return m.Called(ctx, l).Error(0)
}
func (m *hMockShareRepo) FindByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	args := m.Called(ctx, hash)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockShareRepo) FindByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockShareRepo) DeleteOneByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.ShareLink); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ShareLinkRepository = (*hMockShareRepo)(nil)

type mockRepos struct {
	users    *hMockUserRepo
	tags     *hMockTagRepo
	contents *hMockContentRepo
	links    *hMockShareRepo
}

func newMockRouter(t *testing.T) (http.Handler, *mockRepos) {
	t.Helper()
	m := &mockRepos{
		users:    &hMockUserRepo{},
		tags:     &hMockTagRepo{},
		contents: &hMockContentRepo{},
		links:    &hMockShareRepo{},
	}
	return buildRouter(t, testConfig(), m.users, m.tags, m.contents, m.links, nil), m
}

// testServer — роутер поверх настоящей in-memory SQLite
type testServer struct {
	router http.Handler
	db     *gorm.DB
}

func newSQLiteRouter(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repo.InitDB(context.Background(), dsn, nil)
	require.NoError(t, err)
	require.NoError(t, repo.SetSingleShareLink(context.Background(), db, cfg.SingleShareLink))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	router := buildRouter(t, cfg,
		repo.NewUserRepository(db),
		repo.NewTagRepository(db),
		repo.NewContentRepository(db),
		repo.NewShareLinkRepository(db),
		sqlDB,
	)
	return &testServer{router: router, db: db}
}

func buildRouter(
	t *testing.T,
	cfg *config.Config,
	users repo.UserRepository,
	tags repo.TagRepository,
	contents repo.ContentRepository,
	links repo.ShareLinkRepository,
	db handlers.Pinger,
) http.Handler {
	t.Helper()
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	tagSvc := service.NewTagService(tags)
	h := handlers.NewHandler(
		service.NewUserService(users),
		service.NewContentService(contents, tagSvc, cfg.OwnerOnlyDelete),
		service.NewShareService(links, contents, nil, cfg.SingleShareLink, logger),
		token.NewManager(cfg.AuthSecret, cfg.TokenTTL),
		db,
		logger,
		cfg,
	)
	t.Cleanup(h.Close)
	return h.Router
}

// sessionCookie выпускает cookie uid для пользователя
func sessionCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()
	tok, err := token.NewManager(testSecret, 0).Issue(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: tok}
}

func do(t *testing.T, router http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), "body: %s", rr.Body.String())
	return m
}

func uidCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}
