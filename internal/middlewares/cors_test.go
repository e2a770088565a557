package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quiz-arena/internal/middlewares"
)

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		preflight  bool
		wantOrigin string
		wantStatus int
	}{
		{"Wildcard", []string{"*"}, http.MethodGet, "http://a.test", false, "http://a.test", http.StatusTeapot},
		{"Listed", []string{"http://a.test", "http://b.test"}, http.MethodGet, "http://b.test", false, "http://b.test", http.StatusTeapot},
		{"NotListed", []string{"http://a.test"}, http.MethodGet, "http://evil.test", false, "", http.StatusTeapot},
		{"NoOrigin", []string{"*"}, http.MethodGet, "", false, "", http.StatusTeapot},
		{"Preflight", []string{"*"}, http.MethodOptions, "http://a.test", true, "http://a.test", http.StatusOK},
		{"PreflightNotListed", []string{"http://a.test"}, http.MethodOptions, "http://evil.test", true, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()

			middlewares.Cors(tt.allowed)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
