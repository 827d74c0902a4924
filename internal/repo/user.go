package repo

import (
	"LinkKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — хранилище учётных записей.
type UserRepository interface {
	// CreateUser создаёт пользователя. Занятое имя — ErrDuplicate.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByName ищет по имени; отсутствие — gorm.ErrRecordNotFound.
	GetUserByName(ctx context.Context, userName string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, mapErr(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
