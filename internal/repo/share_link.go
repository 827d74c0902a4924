package repo

import (
	"LinkKeeper/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ShareLinkRepository — публичные ссылки на коллекцию пользователя.
type ShareLinkRepository interface {
	Create(ctx context.Context, l *model.ShareLink) error
	FindByHash(ctx context.Context, hash string) (*model.ShareLink, error)
	// FindByOwner возвращает самую раннюю ссылку владельца.
	FindByOwner(ctx context.Context, userID int64) (*model.ShareLink, error)
	// DeleteOneByOwner удаляет одну ссылку владельца (самую раннюю) и возвращает её с подгруженным User.
	DeleteOneByOwner(ctx context.Context, userID int64) (*model.ShareLink, error)
}

type shareLinkRepo struct {
	db *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) ShareLinkRepository {
	return &shareLinkRepo{db: db}
}

func (r *shareLinkRepo) Create(ctx context.Context, l *model.ShareLink) error {
	return mapErr(r.db.WithContext(ctx).Create(l).Error)
}

func (r *shareLinkRepo) FindByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	var l model.ShareLink
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *shareLinkRepo) FindByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	var l model.ShareLink
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *shareLinkRepo) DeleteOneByOwner(ctx context.Context, userID int64) (*model.ShareLink, error) {
	var l model.ShareLink
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_name")
		})
		if err := q.Where("user_id = ?", userID).Order("id ASC").First(&l).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ShareLink{}, l.ID)
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
	return &l, nil
}

const singleOwnerIndex = "idx_share_links_single_owner"

// SetSingleShareLink включает или снимает уникальный индекс share_links(user_id).
// С индексом вторая ссылка того же владельца отклоняется хранилищем (ErrDuplicate),
// поэтому параллельные Enable не могут создать две живые ссылки.
// Если в таблице уже есть дубликаты по владельцу, создание индекса завершится ошибкой.
func SetSingleShareLink(ctx context.Context, db *gorm.DB, enabled bool) error {
	stmt := "DROP INDEX IF EXISTS " + singleOwnerIndex
	if enabled {
		stmt = "CREATE UNIQUE INDEX IF NOT EXISTS " + singleOwnerIndex + " ON share_links (user_id)"
	}
	if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return fmt.Errorf("single share link index: %w", err)
	}
	return nil
}
