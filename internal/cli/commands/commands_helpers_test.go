package commands

import (
	"LinkKeeper/internal/config"
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен и имя пользователя создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// signedInConfig возвращает конфиг с сохранённым токеном tok.
func signedInConfig(t *testing.T, serverURL, tok string) *config.Config {
	t.Helper()
	dir := withTempConfig(t)
	cfg := &config.Config{ServerURL: serverURL, TokenFile: filepath.Join(dir, "tok")}
	if err := authStore(cfg).Save(tok); err != nil {
		t.Fatalf("save token: %v", err)
	}
	return cfg
}
