package service

import "errors"

// Ожидаемые доменные ошибки. Хендлеры мапят их в 4xx,
// всё остальное уходит как 500 с логированием.
var (
	// ErrEmailTaken — email уже занят (нарушение уникальности при регистрации).
	ErrEmailTaken = errors.New("email already used")

	// ErrInvalidCredentials — неверная пара email/пароль. Намеренно не
	// различает "нет такого пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound — товар или пользователь не найден.
	ErrNotFound = errors.New("not found")

	// ErrNotInCart — удаляемой позиции нет в корзине.
	ErrNotInCart = errors.New("item not in cart")
)
