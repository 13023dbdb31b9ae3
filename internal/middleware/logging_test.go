package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogging() (*RequestLoggingMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRequestLoggingMiddleware(slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestRequestLoggingMiddleware_LogsRequest(t *testing.T) {
	mw, buf := newTestLogging()

	req := httptest.NewRequest("GET", "/items?page=3", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req.Header.Set("User-Agent", "Mozilla/5.0 TestBrowser")
	rec := httptest.NewRecorder()

	mw.Handler(statusHandler(http.StatusOK)).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=\"/items?page=3\"")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "duration_ms=")
	assert.Contains(t, out, "ip=192.168.1.1")
	assert.Contains(t, out, "TestBrowser")
	assert.Contains(t, out, "level=INFO")
}

func TestRequestLoggingMiddleware_ServerErrorLogsAtWarn(t *testing.T) {
	mw, buf := newTestLogging()

	req := httptest.NewRequest("GET", "/items.json", nil)
	mw.Handler(statusHandler(http.StatusInternalServerError)).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "status=500")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestRequestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	mw, buf := newTestLogging()

	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	mw.Handler(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/items", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
	assert.Contains(t, buf.String(), "request_id="+id)
}

func TestRequestLoggingMiddleware_RequestIDHeader(t *testing.T) {
	incoming := uuid.NewString()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"valid uuid is reused", incoming, true},
		{"garbage is replaced", "not-a-uuid", false},
		{"missing is generated", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newTestLogging()
			req := httptest.NewRequest("GET", "/items", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Handler(statusHandler(http.StatusOK)).ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.reuse {
				assert.Equal(t, tt.header, got)
				return
			}
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestLoggingMiddleware_SkipsNoisyPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics", "/static/app.css"} {
		t.Run(path, func(t *testing.T) {
			mw, buf := newTestLogging()
			rec := httptest.NewRecorder()

			mw.Handler(statusHandler(http.StatusOK)).ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

			assert.Empty(t, buf.String())
			assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestLoggingMiddleware_PassesResponseThrough(t *testing.T) {
	mw, _ := newTestLogging()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("response body"))
	})

	rec := httptest.NewRecorder()
	mw.Handler(handler).ServeHTTP(rec, httptest.NewRequest("POST", "/items", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "value", rec.Header().Get("X-Custom"))
	assert.Equal(t, "response body", rec.Body.String())
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		rawQuery string
		want     string
	}{
		{"no query", "/items", "", "/items"},
		{"page key kept", "/items", "page=4&sort=name", "/items?page=4&sort=name"},
		{"token redacted", "/items", "page=2&token=abc123", "/items?page=2&token=[REDACTED]"},
		{"case insensitive", "/items", "API_KEY=xyz", "/items?API_KEY=[REDACTED]"},
		{"malformed pairs dropped", "/items", "flag&page=1", "/items?page=1"},
		{"nothing left", "/items", "flag", "/items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizePath(tt.path, tt.rawQuery))
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "10.0.0.1:8080", nil, "10.0.0.1"},
		{"remote addr without port", "10.0.0.1", nil, "10.0.0.1"},
		{"forwarded for first hop", "10.0.0.1:8080", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "203.0.113.195"},
		{"real ip", "10.0.0.1:8080", map[string]string{"X-Real-IP": " 198.51.100.7 "}, "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

func TestStack_Order(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Stack(tag("outer"), tag("inner"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
