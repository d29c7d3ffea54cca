package repo

import (
	"GopherMarket/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// ListItems возвращает все товары, новые первыми.
	ListItems(ctx context.Context) ([]model.Item, error)

	// GetItemByID возвращает товар по id или gorm.ErrRecordNotFound.
	GetItemByID(ctx context.Context, id int64) (*model.Item, error)

	// CreateItem вставляет новый товар.
	CreateItem(ctx context.Context, item *model.Item) (*model.Item, error)

	// UpdateItem обновляет только переданные поля и возвращает свежую запись.
	UpdateItem(ctx context.Context, id int64, updates map[string]any) (*model.Item, error)

	// DeleteItem удаляет товар и возвращает удалённую запись.
	// Записи корзин, ссылающиеся на товар, уходят каскадом.
	DeleteItem(ctx context.Context, id int64) (*model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) UpdateItem(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetItemByID(ctx, id)
}

func (r *itemRepo) DeleteItem(ctx context.Context, id int64) (*model.Item, error) {
	it, err := r.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Каскад по cart_entries обеспечивает constraint в модели,
	// для SQLite дополнительно чистим явно.
	if err := r.db.WithContext(ctx).Where("item_id = ?", id).Delete(&model.CartEntry{}).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Item{}, id).Error; err != nil {
		return nil, err
	}
	return it, nil
}
