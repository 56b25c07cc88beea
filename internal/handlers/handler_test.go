package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invoice-dashboard-backend/internal/errs"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authorizerFunc func(ctx context.Context, creds auth.Credentials) (*models.User, error)

func (f authorizerFunc) Authorize(ctx context.Context, creds auth.Credentials) (*models.User, error) {
	return f(ctx, creds)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"fetch error", errs.NewDataFetchError("FetchCustomers", "Failed to fetch all customers.", errors.New("pq: timeout")), 500, "Failed to fetch all customers."},
		{"validation", &errs.ValidationError{Fields: []errs.FieldError{{Field: "email", Error: "is required"}}}, 400, "Validation failed"},
		{"http error", errs.NewNotFoundError("invoice not found"), 404, "invoice not found"},
		{"unknown", errors.New("secret internals"), 500, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.status, body.Status)
			assert.NotContains(t, w.Body.String(), "secret internals")
			assert.NotContains(t, w.Body.String(), "pq: timeout")
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestAuthHandlerPassesCredentials(t *testing.T) {
	var got auth.Credentials
	h := NewAuthHandler(authorizerFunc(func(_ context.Context, creds auth.Credentials) (*models.User, error) {
		got = creds
		return nil, nil
	}))

	r := gin.New()
	r.POST("/authorize", h.Authorize)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/authorize", strings.NewReader(`{"email":"a@b.co","password":"123456"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, auth.Credentials{Email: "a@b.co", Password: "123456"}, got)
}
