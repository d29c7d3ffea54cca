package handlers_test

import (
	"GopherMarket/internal/config"
	"GopherMarket/internal/handlers"
	"GopherMarket/internal/middleware"
	"GopherMarket/internal/model"
	"GopherMarket/internal/repo"
	"GopherMarket/internal/service"
	"GopherMarket/internal/storage"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	args := m.Called(ctx, item)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) AddEntry(ctx context.Context, userID, itemID int64, quantity int) (*model.CartEntry, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if v, ok := args.Get(0).(*model.CartEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) RemoveEntry(ctx context.Context, userID, itemID int64) (*model.CartEntry, error) {
	args := m.Called(ctx, userID, itemID)
	if v, ok := args.Get(0).(*model.CartEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) ListEntries(ctx context.Context, userID int64) ([]repo.CartRow, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]repo.CartRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CartRepository = (*mockCartRepo)(nil)

type mockBlobStore struct{ mock.Mock }

func (m *mockBlobStore) Save(src io.Reader, originalName string) (string, error) {
	args := m.Called(src, originalName)
	return args.String(0), args.Error(1)
}

func (m *mockBlobStore) Remove(publicPath string) error {
	args := m.Called(publicPath)
	return args.Error(0)
}

var _ storage.BlobStore = (*mockBlobStore)(nil)

// --- Helpers ---

const testSecret = "test-secret"

func newTestRouter(t *testing.T, ur repo.UserRepository, ir repo.ItemRepository, cr repo.CartRepository, blobs storage.BlobStore) http.Handler {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:      testSecret,
		UploadMaxSizeMB: 1,
		UploadDir:       t.TempDir(),
	}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur, bcrypt.MinCost)
	itemSvc := service.NewItemService(ir, blobs, logger)
	cartSvc := service.NewCartService(cr, ir)

	h := handlers.NewHandler(userSvc, itemSvc, cartSvc, blobs, logger, cfg)
	return h.Router
}

func addAuthHeader(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	token, err := middleware.BuildToken(userID, testSecret)
	if err != nil {
		t.Fatalf("BuildToken: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// multipartBody собирает multipart-тело из строковых полей и опционального файла
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte(fileContent)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}
