package model

import "time"

// Серверная модель User — учётная запись покупателя.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`

	// Хранится только bcrypt-хеш; наружу не сериализуется.
	Password string `gorm:"not null" json:"-"`

	Avatar *string `json:"avatar"`
	Role   string  `gorm:"not null;default:user" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
