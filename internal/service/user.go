package service

import (
	"GopherMarket/internal/model"
	"GopherMarket/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService инкапсулирует регистрацию, вход и профиль пользователя.
type UserService struct {
	repo repo.UserRepository
	cost int // bcrypt work factor
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = 10
	}
	return &UserService{repo: r, cost: bcryptCost}
}

// Register хеширует пароль и вставляет пользователя. Занятый email
// определяется по ограничению уникальности стора (одна запись, ноль
// при конфликте), без предварительного чтения.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.CreateUser(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет email и пароль. Ответ при неизвестном email и при
// неверном пароле одинаков — чтобы нельзя было перечислять адреса.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает пользователя или ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile меняет только переданные поля (nil — не трогать).
func (s *UserService) UpdateProfile(ctx context.Context, id int64, username, avatar *string) (*model.User, error) {
	updates := map[string]any{}
	if username != nil && *username != "" {
		updates["username"] = *username
	}
	if avatar != nil {
		updates["avatar"] = *avatar
	}
	user, err := s.repo.UpdateUser(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
