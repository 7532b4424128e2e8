package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"daily-planner/pkg/log"
)

func newTestEngine(m Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	r.Any("/x", handlers...)
	return r
}

func TestCORS(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newTestEngine(m, m.CORS())

	t.Run("pre-flight", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != corsAllowMethods {
			t.Errorf("unexpected methods header %q", got)
		}
	})

	t.Run("simple request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("unexpected response %d %v", w.Code, w.Header())
		}
	})
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newTestEngine(m, m.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" || w.Body.String() != id {
			t.Errorf("expected id in header and context, got %q / %q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != "abc" {
			t.Errorf("expected caller id, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("burst then reject", func(t *testing.T) {
		m := New(log.NewNop(), Config{RateLimitPerMin: 20})
		r := newTestEngine(m, m.RateLimit())

		codes := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
			t.Errorf("expected burst of 2 then 429, got %v", codes)
		}
	})

	t.Run("clients are independent", func(t *testing.T) {
		m := New(log.NewNop(), Config{RateLimitPerMin: 1})
		r := newTestEngine(m, m.RateLimit())

		for _, ip := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.RemoteAddr = ip
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", ip, w.Code)
			}
		}
	})

	t.Run("disabled", func(t *testing.T) {
		m := New(log.NewNop(), Config{RateLimitPerMin: 0})
		r := newTestEngine(m, m.RateLimit())

		for range 50 {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected no limiting, got %d", w.Code)
			}
		}
	})
}
