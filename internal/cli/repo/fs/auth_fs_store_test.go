package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"LinkKeeper/internal/cli/repo"
)

var (
	_ repo.TokenStore       = AuthFSStore{}
	_ repo.UserContextStore = AuthFSStore{}
)

// setTempCfg перенастраивает пользовательский конфиг‑каталог в temp для изоляции тестов.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoad_Token_TrimsWhitespace(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.Save("tok-123\n\n"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	// лишние пробелы в конце файла должны обрезаться
	p, _ := st.tokenPath()
	f, _ := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token not trimmed, got %q", tok)
	}
}

func TestAuthFSStore_Load_TokenMissingOrEmpty(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for missing token file")
	}
	p, _ := st.tokenPath()
	_ = os.WriteFile(p, []byte(""), 0o600)
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for empty token file")
	}
}

func TestAuthFSStore_CustomTokenPath(t *testing.T) {
	setTempCfg(t)
	custom := filepath.Join(t.TempDir(), "nested", "tok")
	st := AuthFSStore{TokenPath: custom}

	if err := st.Save("abc"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if b, err := os.ReadFile(custom); err != nil || string(b) != "abc" {
		t.Fatalf("token must be written to custom path: %q, %v", b, err)
	}
}

func TestAuthFSStore_Clear(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	// без файла — не ошибка
	if err := st.Clear(); err != nil {
		t.Fatalf("clear on missing file: %v", err)
	}
	_ = st.Save("tok")
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("token must be gone after clear")
	}
}

func TestAuthFSStore_UserName(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveUserName(""); err == nil {
		t.Fatalf("expected error for empty user name")
	}
	if _, err := st.LoadUserName(); err == nil {
		t.Fatalf("expected error for missing user name")
	}
	if err := st.SaveUserName("bob1"); err != nil {
		t.Fatalf("save user name: %v", err)
	}
	name, err := st.LoadUserName()
	if err != nil || name != "bob1" {
		t.Fatalf("load user name: %q, %v", name, err)
	}
}
