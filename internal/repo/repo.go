package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"LinkKeeper/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ErrDuplicate возвращается при нарушении ограничения уникальности.
var ErrDuplicate = errors.New("duplicate entity")

// InitDB открывает хранилище по DSN: postgres для postgres://… и key=value строк,
// иначе SQLite (modernc.org/sqlite, без cgo). Выполняет миграции и проверку соединения.
// Сообщения gorm идут в zl (nil — без логов).
func InitDB(ctx context.Context, dsn string, zl *zap.Logger) (*gorm.DB, error) {
	gl, err := newGormLogger(zl)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger:         gl,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if !isPostgresDSN(dsn) {
		// SQLite: один писатель, иначе "database is locked" под нагрузкой
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет схему для всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Content{}, &model.ShareLink{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// newGormLogger пишет предупреждения и ошибки gorm в zap на уровне warn.
// Промах по First (record not found) — обычный исход поиска и не логируется.
func newGormLogger(zl *zap.Logger) (logger.Interface, error) {
	if zl == nil {
		zl = zap.NewNop()
	}
	std, err := zap.NewStdLogAt(zl.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("gorm logger: %w", err)
	}
	return logger.New(std, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// mapErr приводит ошибки уникальности разных драйверов к ErrDuplicate.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc.org/sqlite не переводится gorm'ом, смотрим на текст ошибки
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
