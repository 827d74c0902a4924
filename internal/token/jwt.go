package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — подпись не сходится, токен просрочен или полезная нагрузка битая.
var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка сессионного токена.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет подписанные HS256 токены.
// ttl == 0 — токены без срока действия.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL возвращает настроенное время жизни токена.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue выпускает токен для пользователя.
func (m *Manager) Issue(userID int64) (string, error) {
	claims := Claims{UserID: userID}
	if m.ttl > 0 {
		now := m.now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и возвращает id пользователя.
func (m *Manager) Verify(tokenStr string) (int64, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
