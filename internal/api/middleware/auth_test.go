package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "valid bearer token",
			headers:    map[string]string{"Authorization": "Bearer secret"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid header token",
			headers:    map[string]string{"X-Admin-Token": "secret"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no token",
			headers:    nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong bearer token",
			headers:    map[string]string{"Authorization": "Bearer wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authorization without bearer prefix",
			headers:    map[string]string{"Authorization": "secret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "header token ignored when authorization present",
			headers: map[string]string{
				"Authorization": "Basic something",
				"X-Admin-Token": "secret",
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := AdminAuth("secret")(next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/schedule", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
