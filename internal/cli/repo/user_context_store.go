package repo

// UserContextStore хранит имя последнего вошедшего пользователя.
type UserContextStore interface {
	SaveUserName(userName string) error
	LoadUserName() (string, error)
}
