package handler

import (
	"context"
	"net/http"

	"invoice-dashboard-backend/internal/errs"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

const msgInvalidCredentials = "Invalid credentials."

// Authorizer is implemented by *auth.Authorizer.
type Authorizer interface {
	Authorize(ctx context.Context, creds auth.Credentials) (*models.User, error)
}

type AuthHandler struct {
	authorizer Authorizer
}

func NewAuthHandler(a Authorizer) *AuthHandler {
	return &AuthHandler{authorizer: a}
}

// Authorize checks an email/password pair. Malformed and wrong credentials
// get the same 401 so callers cannot tell them apart.
func (h *AuthHandler) Authorize(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondError(c, errs.NewBadRequestError("invalid payload", nil))
		return
	}

	user, err := h.authorizer.Authorize(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, errs.NewUnauthorizedError(msgInvalidCredentials))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
