package repo

// TokenStore описывает абстракцию хранилища сессионного токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
