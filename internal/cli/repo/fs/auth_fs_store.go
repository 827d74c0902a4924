package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AuthFSStore — файловое хранилище токена и имени пользователя для CLI.
// TokenPath переопределяет путь к файлу токена (флаг -token-file).
type AuthFSStore struct {
	TokenPath string
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "LinkKeeper")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.TokenPath != "" {
		if err := os.MkdirAll(filepath.Dir(s.TokenPath), 0o700); err != nil {
			return "", err
		}
		return s.TokenPath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session_token"), nil
}

func userNamePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "last_user"), nil
}

func readTrimmed(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// Save сохраняет токен в файл.
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	tok, err := readTrimmed(p)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}

// Clear удаляет файл токена. Отсутствие файла ошибкой не считается.
func (s AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (AuthFSStore) SaveUserName(userName string) error {
	if userName == "" {
		return errors.New("empty user name")
	}
	p, err := userNamePath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(userName), 0o600)
}

func (AuthFSStore) LoadUserName() (string, error) {
	p, err := userNamePath()
	if err != nil {
		return "", err
	}
	name, err := readTrimmed(p)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("no stored user name")
	}
	return name, nil
}
