package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authTestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuthMiddleware_Disabled(t *testing.T) {
	h := BearerAuthMiddleware(nil)(authTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/papers", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("empty key list should disable auth, got %d", rr.Code)
	}
}

func TestBearerAuthMiddleware(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-one", "key-two"})(authTestHandler())

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/api/papers", "", http.StatusUnauthorized},
		{"wrong scheme", "/api/papers", "Basic key-one", http.StatusUnauthorized},
		{"invalid key", "/api/papers", "Bearer nope", http.StatusUnauthorized},
		{"valid key", "/api/papers", "Bearer key-one", http.StatusOK},
		{"second valid key", "/api/papers", "Bearer key-two", http.StatusOK},
		{"health exempt", "/health", "", http.StatusOK},
		{"metrics exempt", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
