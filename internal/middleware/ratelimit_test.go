package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"LinkKeeper/internal/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestWithRateLimit(t *testing.T) {
	l := ratelimit.New(0.001, 2)
	defer l.Stop()

	h := WithRateLimit(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/abc", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// другой клиент не затронут
	req := httptest.NewRequest(http.MethodGet, "/api/v1/abc", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.7:1234"
	assert.Equal(t, "192.168.1.7", clientIP(req))

	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", clientIP(req))
}
