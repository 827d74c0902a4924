package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"LinkKeeper/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieRequest(t *testing.T, value string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	return req
}

// Тест: валидный токен — user_id попадает в контекст
func TestRequireAuth_ValidCookieSetsUserID(t *testing.T) {
	tokens := token.NewManager("test-secret", 0)
	tok, err := tokens.Issue(77)
	require.NoError(t, err)

	var got int64
	h := RequireAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		got = uid
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieRequest(t, tok))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(77), got)
}

// Тест: нет cookie — 401, обработчик не вызывается
func TestRequireAuth_NoCookie(t *testing.T) {
	h := RequireAuth(token.NewManager("s", 0))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called without cookie")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Please signin first."}`, rr.Body.String())
}

// Тест: токен подписан другим секретом — 400, обработчик не вызывается
func TestRequireAuth_InvalidToken(t *testing.T) {
	tok, err := token.NewManager("secret-A", 0).Issue(5)
	require.NoError(t, err)

	h := RequireAuth(token.NewManager("secret-B", 0))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called with invalid token")
	}))

	for _, value := range []string{tok, "garbage", tok + "x"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, cookieRequest(t, value))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"you are not signed in"}`, rr.Body.String())
	}
}

func TestSetLoginCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetLoginCookie(rr, "tok", 0, false)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
	assert.Zero(t, cookies[0].MaxAge)

	rr = httptest.NewRecorder()
	SetLoginCookie(rr, "tok", time.Hour, true)
	c := rr.Result().Cookies()[0]
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.Secure)
}

func TestClearLoginCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearLoginCookie(rr, true)
	header := rr.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, CookieName+"="))
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Secure")
}
