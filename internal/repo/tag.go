package repo

import (
	"LinkKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// TagRepository — хранилище тегов с уникальным title.
type TagRepository interface {
	FindByTitle(ctx context.Context, title string) (*model.Tag, error)
	// Create вставляет тег; при гонке за тот же title второй писатель получает ErrDuplicate.
	Create(ctx context.Context, tag *model.Tag) error
}

type tagRepo struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) FindByTitle(ctx context.Context, title string) (*model.Tag, error) {
	var t model.Tag
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) Create(ctx context.Context, tag *model.Tag) error {
	return mapErr(r.db.WithContext(ctx).Create(tag).Error)
}
