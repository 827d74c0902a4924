package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — регистрация и вход.
type UserService struct {
	repo repo.UserRepository
	cost int
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r, cost: bcrypt.DefaultCost}
}

// Register хеширует пароль и создаёт пользователя.
// Уникальность имени проверяет хранилище: при коллизии ничего не записывается.
func (s *UserService) Register(ctx context.Context, userName, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.repo.CreateUser(ctx, &model.User{UserName: userName, Password: string(hash)})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %v", ErrUserExists, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login возвращает пользователя, если хеш пароля сходится.
func (s *UserService) Login(ctx context.Context, userName, password string) (*model.User, error) {
	user, err := s.repo.GetUserByName(ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
