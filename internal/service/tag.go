package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// TagService находит тег по title или создаёт его.
type TagService struct {
	repo repo.TagRepository
}

func NewTagService(r repo.TagRepository) *TagService {
	return &TagService{repo: r}
}

// Resolve идемпотентен: повторный вызов с тем же title возвращает тот же id.
// Если параллельный запрос успел создать тег первым, создание падает с
// repo.ErrDuplicate и тег перечитывается один раз.
func (s *TagService) Resolve(ctx context.Context, title string) (int64, error) {
	tag, err := s.repo.FindByTitle(ctx, title)
	if err == nil {
		return tag.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("find tag: %w", err)
	}

	created := &model.Tag{Title: title}
	err = s.repo.Create(ctx, created)
	if err == nil {
		return created.ID, nil
	}
	if !errors.Is(err, repo.ErrDuplicate) {
		return 0, fmt.Errorf("create tag: %w", err)
	}

	tag, err = s.repo.FindByTitle(ctx, title)
	if err != nil {
		return 0, fmt.Errorf("re-read tag after duplicate: %w", err)
	}
	return tag.ID, nil
}
