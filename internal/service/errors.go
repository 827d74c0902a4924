package service

import "errors"

var (
	// ErrUserExists — имя пользователя уже занято.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь с таким именем не зарегистрирован.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials — неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidType — тип контента вне перечисления.
	ErrInvalidType = errors.New("invalid content type")
	// ErrTagResolution — не удалось найти или создать тег.
	ErrTagResolution = errors.New("tag resolution failed")
	// ErrContentNotFound — контента нет (или он чужой при включённой проверке владельца).
	ErrContentNotFound = errors.New("content not found")

	// ErrNoActiveLink — у пользователя нет публичной ссылки.
	ErrNoActiveLink = errors.New("no active share link")
	// ErrInvalidLink — публичная ссылка не существует.
	ErrInvalidLink = errors.New("invalid share link")
)
