package service

import (
	"GopherMarket/internal/model"
	"GopherMarket/internal/repo"
	"GopherMarket/internal/storage"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemService инкапсулирует бизнес-логику каталога товаров.
type ItemService struct {
	repo   repo.ItemRepository
	blobs  storage.BlobStore
	logger *zap.SugaredLogger
}

// NewItemService создаёт сервис каталога.
func NewItemService(r repo.ItemRepository, blobs storage.BlobStore, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, blobs: blobs, logger: logger}
}

// List возвращает все товары, новые первыми.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListItems(ctx)
}

// Get возвращает товар или ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Create вставляет товар; image — публичный путь уже сохранённого файла.
func (s *ItemService) Create(ctx context.Context, title string, description, image *string) (*model.Item, error) {
	return s.repo.CreateItem(ctx, &model.Item{
		Title:       title,
		Description: description,
		Image:       image,
	})
}

// Update меняет только переданные поля (nil — не трогать).
// Старый файл картинки при замене не удаляется.
func (s *ItemService) Update(ctx context.Context, id int64, title, description, image *string) (*model.Item, error) {
	updates := map[string]any{}
	if title != nil && *title != "" {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if image != nil {
		updates["image"] = *image
	}
	it, err := s.repo.UpdateItem(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Delete удаляет товар и best-effort убирает его файл картинки.
// Неудача удаления файла логируется и никогда не отменяет уже
// зафиксированное удаление записи.
func (s *ItemService) Delete(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if it.Image != nil && *it.Image != "" {
		image := *it.Image
		go func() {
			if err := s.blobs.Remove(image); err != nil {
				s.logger.Warnw("failed to remove item image", "item_id", id, "image", image, "error", err)
			}
		}()
	}
	return it, nil
}
