package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewContent — входные данные для создания контента.
type NewContent struct {
	Link  string
	Type  model.ContentType
	Title string
	Tag   string // title тега
}

// ContentService — контент пользователя.
type ContentService struct {
	repo            repo.ContentRepository
	tags            *TagService
	ownerOnlyDelete bool
}

func NewContentService(r repo.ContentRepository, tags *TagService, ownerOnlyDelete bool) *ContentService {
	return &ContentService{repo: r, tags: tags, ownerOnlyDelete: ownerOnlyDelete}
}

// Create проверяет тип до любых записей, разрешает тег и создаёт контент.
// Запись контента — последняя операция: сбой после создания тега оставляет только тег.
func (s *ContentService) Create(ctx context.Context, ownerID int64, in NewContent) (*model.Content, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}

	tagID, err := s.tags.Resolve(ctx, in.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagResolution, err)
	}

	c := &model.Content{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Link:   in.Link,
		Type:   in.Type,
		Title:  in.Title,
		TagID:  tagID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return c, nil
}

// List возвращает весь контент владельца с тегом и именем владельца.
func (s *ContentService) List(ctx context.Context, ownerID int64) ([]model.Content, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return list, nil
}

// Delete удаляет контент по id. При ownerOnlyDelete чужой контент неотличим от отсутствующего.
func (s *ContentService) Delete(ctx context.Context, callerID int64, contentID string) (*model.Content, error) {
	var owner int64
	if s.ownerOnlyDelete {
		owner = callerID
	}
	c, err := s.repo.DeleteByID(ctx, contentID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("delete content: %w", err)
	}
	return c, nil
}
