package service

import (
	"GopherMarket/internal/model"
	"GopherMarket/internal/repo"
	"GopherMarket/internal/storage"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
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

// мок для repo.ItemRepository
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

// мок для repo.CartRepository
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

// мок для storage.BlobStore
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
