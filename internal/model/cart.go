package model

import "time"

// CartEntry — позиция корзины, одна строка на пару (user, item).
// Уникальный составной индекс — основа атомарного upsert при добавлении.
type CartEntry struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID int64 `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`

	// Связи: удаление пользователя или товара уносит и записи корзины.
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Ставится при первой вставке и не обновляется при инкременте.
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}
