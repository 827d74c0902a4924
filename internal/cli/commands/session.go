package commands

import (
	"LinkKeeper/internal/cli/repo"
	"LinkKeeper/internal/cli/repo/fs"
	"LinkKeeper/internal/config"
	"errors"
	"strings"
)

// ErrNotSignedIn — на клиенте нет сохранённой сессии.
var ErrNotSignedIn = errors.New("not signed in: run `lkcli signin <userName> <password>` first")

// sessionStore — локальное хранилище сессии CLI.
type sessionStore interface {
	repo.TokenStore
	repo.UserContextStore
}

func authStore(cfg *config.Config) sessionStore {
	return fs.AuthFSStore{TokenPath: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func loadToken(cfg *config.Config) (string, error) {
	tok, err := authStore(cfg).Load()
	if err != nil {
		return "", ErrNotSignedIn
	}
	return tok, nil
}
