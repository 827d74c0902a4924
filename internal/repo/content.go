package repo

import (
	"LinkKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// ContentRepository — контент пользователей с подгрузкой тега и имени владельца.
type ContentRepository interface {
	Create(ctx context.Context, c *model.Content) error
	// ListByOwner возвращает контент владельца в порядке создания.
	ListByOwner(ctx context.Context, userID int64) ([]model.Content, error)
	// DeleteByID удаляет запись и возвращает её состояние до удаления.
	// ownerID > 0 ограничивает удаление записями этого владельца.
	// Если удалять нечего — gorm.ErrRecordNotFound.
	DeleteByID(ctx context.Context, id string, ownerID int64) (*model.Content, error)
}

type contentRepo struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

// expand подгружает связи так же, как их отдаёт публичная ссылка.
func expand(db *gorm.DB) *gorm.DB {
	return db.Preload("Tag").Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "user_name")
	})
}

func (r *contentRepo) Create(ctx context.Context, c *model.Content) error {
	return mapErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *contentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	var out []model.Content
	err := expand(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) DeleteByID(ctx context.Context, id string, ownerID int64) (*model.Content, error) {
	var deleted model.Content
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := expand(tx).Where("id = ?", id)
		if ownerID > 0 {
			q = q.Where("user_id = ?", ownerID)
		}
		if err := q.First(&deleted).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", deleted.ID).Delete(&model.Content{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
