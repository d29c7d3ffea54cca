package repo

import (
	"GopherMarket/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRow — строка корзины, объединённая с данными товара.
type CartRow struct {
	CartID      int64     `json:"cart_id"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
	ItemID      int64     `json:"item_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartRepository определяет контракт доступа к корзине для слоя сервиса.
type CartRepository interface {
	// AddEntry атомарно добавляет товар в корзину: вставка новой строки либо
	// инкремент количества существующей, одним запросом на уровне стора.
	// Возвращает итоговую строку корзины.
	AddEntry(ctx context.Context, userID, itemID int64, quantity int) (*model.CartEntry, error)

	// RemoveEntry удаляет строку (user, item) целиком и возвращает её.
	// Если строки нет — gorm.ErrRecordNotFound.
	RemoveEntry(ctx context.Context, userID, itemID int64) (*model.CartEntry, error)

	// ListEntries возвращает корзину пользователя с данными товаров,
	// последние добавленные первыми. Пустая корзина — пустой срез.
	ListEntries(ctx context.Context, userID int64) ([]CartRow, error)
}

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository создаёт реализацию репозитория корзины.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

// AddEntry — INSERT ... ON CONFLICT (user_id, item_id) DO UPDATE
// SET quantity = cart_entries.quantity + excluded.quantity.
// Разложение на read-then-write здесь недопустимо: при конкурентных
// добавлениях одной пары оно теряет обновления.
func (r *cartRepo) AddEntry(ctx context.Context, userID, itemID int64, quantity int) (*model.CartEntry, error) {
	entry := &model.CartEntry{UserID: userID, ItemID: itemID, Quantity: quantity}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_entries.quantity + excluded.quantity"),
		}),
	}).Create(entry)
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Перечитываем строку: на ветке конфликта Create не возвращает
	// итоговое количество.
	var out model.CartEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *cartRepo) RemoveEntry(ctx context.Context, userID, itemID int64) (*model.CartEntry, error) {
	// Один DELETE ... RETURNING: удаление атомарно и при конкурентных remove.
	var removed []model.CartEntry
	tx := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&removed)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 || len(removed) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &removed[0], nil
}

func (r *cartRepo) ListEntries(ctx context.Context, userID int64) ([]CartRow, error) {
	rows := make([]CartRow, 0)
	err := r.db.WithContext(ctx).
		Table("cart_entries").
		Select("cart_entries.id AS cart_id, cart_entries.quantity, cart_entries.added_at, "+
			"items.id AS item_id, items.title, items.description, items.image, items.created_at").
		Joins("JOIN items ON items.id = cart_entries.item_id").
		Where("cart_entries.user_id = ?", userID).
		Order("cart_entries.added_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
