package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// CookieName — имя cookie с сессионным токеном.
const CookieName = "uid"

type ctxKey struct{}

// TokenVerifier проверяет токен и возвращает id пользователя.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// SetLoginCookie кладёт токен в cookie. ttl == 0 — сессионная cookie.
// secure — браузер отправит cookie только по HTTPS.
func SetLoginCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		c.MaxAge = int(ttl.Seconds())
		c.Expires = time.Now().Add(ttl)
	}
	http.SetCookie(w, c)
}

// ClearLoginCookie удаляет cookie сессии.
func ClearLoginCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth пропускает запрос дальше только с валидным токеном в cookie.
// Нет cookie — 401, невалидный токен — 400. Обработчик в обоих случаях не вызывается.
func RequireAuth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || c.Value == "" {
				writeMessage(w, http.StatusUnauthorized, "Please signin first.")
				return
			}
			userID, err := tokens.Verify(c.Value)
			if err != nil {
				if logger != nil {
					logger.Debugw("session rejected", "path", r.URL.Path, "error", err)
				}
				writeMessage(w, http.StatusBadRequest, "you are not signed in")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладёт id пользователя в контекст.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// GetUserIDFromContext достаёт id пользователя, положенный RequireAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
