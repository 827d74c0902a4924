package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkCache кеширует соответствие hash -> id владельца. Необязателен.
type LinkCache interface {
	Get(ctx context.Context, hash string) (userID int64, ok bool, err error)
	Set(ctx context.Context, hash string, userID int64) error
	Delete(ctx context.Context, hash string) error
}

// ShareService управляет публичными ссылками на коллекцию пользователя.
type ShareService struct {
	links    repo.ShareLinkRepository
	contents repo.ContentRepository
	cache    LinkCache
	single   bool
	logger   *zap.SugaredLogger
	newHash  func() (string, error)
}

// NewShareService создаёт сервис. single=true — не более одной ссылки на пользователя:
// повторное включение возвращает существующий hash. cache может быть nil.
func NewShareService(
	links repo.ShareLinkRepository,
	contents repo.ContentRepository,
	cache LinkCache,
	single bool,
	logger *zap.SugaredLogger,
) *ShareService {
	return &ShareService{
		links:    links,
		contents: contents,
		cache:    cache,
		single:   single,
		logger:   logger,
		newHash:  func() (string, error) { return gonanoid.New() },
	}
}

// Enable создаёт публичную ссылку и возвращает её hash.
// При single уникальный индекс по владельцу (repo.SetSingleShareLink) решает гонку
// параллельных вызовов: проигравший получает ErrDuplicate и перечитывает ссылку победителя.
func (s *ShareService) Enable(ctx context.Context, ownerID int64) (string, error) {
	if s.single {
		hash, found, err := s.existingHash(ctx, ownerID)
		if err != nil || found {
			return hash, err
		}
	}

	// коллизия nanoid практически невозможна, но уникальный индекс её всё равно поймает
	for attempt := 0; attempt < 2; attempt++ {
		hash, err := s.newHash()
		if err != nil {
			return "", fmt.Errorf("generate hash: %w", err)
		}
		err = s.links.Create(ctx, &model.ShareLink{Hash: hash, UserID: ownerID})
		if err == nil {
			return hash, nil
		}
		if !errors.Is(err, repo.ErrDuplicate) {
			return "", fmt.Errorf("create share link: %w", err)
		}
		if s.single {
			existing, found, ferr := s.existingHash(ctx, ownerID)
			if ferr != nil || found {
				return existing, ferr
			}
		}
	}
	return "", fmt.Errorf("create share link: %w", repo.ErrDuplicate)
}

func (s *ShareService) existingHash(ctx context.Context, ownerID int64) (string, bool, error) {
	existing, err := s.links.FindByOwner(ctx, ownerID)
	switch {
	case err == nil:
		return existing.Hash, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("find share link: %w", err)
	}
}

// Disable удаляет одну ссылку владельца и возвращает его имя.
// Если ключ не удалось убрать из кеша, возвращается ошибка: ссылка в БД уже удалена,
// но по кешу она ещё резолвится до истечения TTL.
func (s *ShareService) Disable(ctx context.Context, ownerID int64) (string, error) {
	link, err := s.links.DeleteOneByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoActiveLink
		}
		return "", fmt.Errorf("delete share link: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, link.Hash); err != nil {
			s.logger.Errorw("share cache evict failed", "user_id", ownerID, "error", err)
			return "", fmt.Errorf("evict share link from cache: %w", err)
		}
	}
	if link.User == nil {
		return "", nil
	}
	return link.User.UserName, nil
}

// Resolve возвращает контент владельца ссылки без аутентификации.
// Пустая коллекция — успешный результат, неизвестный hash — ErrInvalidLink.
func (s *ShareService) Resolve(ctx context.Context, hash string) ([]model.Content, error) {
	ownerID, err := s.ownerOf(ctx, hash)
	if err != nil {
		return nil, err
	}
	list, err := s.contents.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list shared content: %w", err)
	}
	return list, nil
}

func (s *ShareService) ownerOf(ctx context.Context, hash string) (int64, error) {
	if s.cache != nil {
		id, ok, err := s.cache.Get(ctx, hash)
		if err != nil {
			s.logger.Warnw("share cache read failed", "error", err)
		} else if ok {
			return id, nil
		}
	}

	link, err := s.links.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidLink
		}
		return 0, fmt.Errorf("find share link: %w", err)
	}

	if s.cache != nil {
		if err := s.fill(ctx, link); err != nil {
			return 0, err
		}
	}
	return link.UserID, nil
}

// fill кладёт ссылку в кеш и перепроверяет её в БД.
// Disable удаляет строку до очистки кеша, поэтому запись, сделанная после
// параллельного Disable, видит отсутствие строки и убирается здесь же.
func (s *ShareService) fill(ctx context.Context, link *model.ShareLink) error {
	if err := s.cache.Set(ctx, link.Hash, link.UserID); err != nil {
		s.logger.Warnw("share cache write failed", "error", err)
		return nil
	}
	_, err := s.links.FindByHash(ctx, link.Hash)
	if err == nil {
		return nil
	}
	if derr := s.cache.Delete(ctx, link.Hash); derr != nil {
		s.logger.Errorw("share cache evict failed", "error", derr)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidLink
	}
	return fmt.Errorf("recheck share link: %w", err)
}
