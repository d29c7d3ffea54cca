package service

import (
	"GopherMarket/internal/model"
	"GopherMarket/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// CartService инкапсулирует логику корзины.
type CartService struct {
	cart  repo.CartRepository
	items repo.ItemRepository
}

// NewCartService создаёт сервис корзины.
func NewCartService(cart repo.CartRepository, items repo.ItemRepository) *CartService {
	return &CartService{cart: cart, items: items}
}

// AddToCart добавляет товар в корзину пользователя: новая строка либо
// атомарный инкремент количества существующей — без read-then-write.
// Отсутствующее или неположительное количество трактуется как 1.
// Несуществующий товар — ErrNotFound.
func (s *CartService) AddToCart(ctx context.Context, userID, itemID int64, quantity int) (*model.CartEntry, error) {
	if quantity <= 0 {
		quantity = 1
	}
	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.cart.AddEntry(ctx, userID, itemID, quantity)
}

// RemoveFromCart удаляет позицию целиком (не декремент).
// Отсутствие позиции — ErrNotInCart, без каких-либо изменений.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, itemID int64) (*model.CartEntry, error) {
	entry, err := s.cart.RemoveEntry(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInCart
		}
		return nil, err
	}
	return entry, nil
}

// GetCart возвращает корзину пользователя с данными товаров,
// последние добавленные первыми. Пустая корзина — пустой срез.
func (s *CartService) GetCart(ctx context.Context, userID int64) ([]repo.CartRow, error) {
	return s.cart.ListEntries(ctx, userID)
}
