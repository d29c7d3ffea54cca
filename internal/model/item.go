package model

import "time"

// Item — серверная модель товара каталога.
// Товар не принадлежит конкретному пользователю: любой авторизованный
// пользователь может создавать и править записи.
type Item struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`

	Description *string `json:"description"`
	Image       *string `json:"image"` // путь к файлу в каталоге загрузок

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
