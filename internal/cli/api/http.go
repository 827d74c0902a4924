package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SessionCookie — имя cookie с сессионным токеном сервера.
const SessionCookie = "uid"

// ErrNoSession — в ответе нет cookie сессии.
var ErrNoSession = errors.New("no session cookie in response")

// DoJSON отправляет запрос с JSON телом (payload может быть nil).
// Если token не пустой, он передаётся в cookie uid.
func DoJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, b, nil
}

// SessionFromResponse извлекает токен из Set-Cookie uid.
func SessionFromResponse(resp *http.Response) (string, error) {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", ErrNoSession
}

// ServerError собирает сообщение сервера ({message, err|error}) в ошибку.
func ServerError(status int, body []byte) error {
	var m struct {
		Message string          `json:"message"`
		Err     json.RawMessage `json:"err"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err != nil || m.Message == "" {
		return fmt.Errorf("server status %d: %s", status, strings.TrimSpace(string(body)))
	}
	detail := firstNonEmpty(m.Err, m.Error)
	if detail == "" {
		return fmt.Errorf("server status %d: %s", status, m.Message)
	}
	return fmt.Errorf("server status %d: %s (%s)", status, m.Message, detail)
}

func firstNonEmpty(raws ...json.RawMessage) string {
	for _, r := range raws {
		if len(r) == 0 || string(r) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			return s
		}
		return string(r)
	}
	return ""
}
