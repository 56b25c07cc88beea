// Package auth checks email and password credentials against the users
// table.
package auth

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/errs"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/validation"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const msgFetchUser = "Failed to fetch user."

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ValidateCredentials returns nil or an *errs.ValidationError.
func ValidateCredentials(c Credentials) error {
	return validation.Struct(c)
}

// State is where a credential check ended up. Every check starts Unverified
// and ends either Verified or Rejected.
type State int

const (
	StateUnverified State = iota
	StateVerified
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateVerified:
		return "verified"
	case StateRejected:
		return "rejected"
	default:
		return "unverified"
	}
}

// Reasons a check is rejected, used in logs.
const (
	reasonMalformed = "malformed credentials"
	reasonNoUser    = "no such user"
	reasonMismatch  = "password mismatch"
	reasonBadHash   = "stored hash unusable"
)

type Authorizer struct {
	store repository.Store
	log   zerolog.Logger
}

func NewAuthorizer(store repository.Store, log zerolog.Logger) *Authorizer {
	return &Authorizer{
		store: store,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// GetUser looks a user up by exact email. A nil user without error means
// there is none.
func (a *Authorizer) GetUser(ctx context.Context, email string) (*models.User, error) {
	q := repository.From("users").Eq("email", email).Limit(1)

	var users []models.User
	if _, err := a.store.Select(ctx, q, &users); err != nil {
		ev := a.log.Error().Err(err).Str("op", "GetUser")
		if details, ok := repository.Describe(err); ok {
			ev = ev.Object("db", details)
		}
		ev.Msg(msgFetchUser)
		return nil, errs.NewDataFetchError("GetUser", msgFetchUser, err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// Check runs the credential state machine. The user is only returned in
// StateVerified. An error means the user lookup failed and no decision was
// made.
func (a *Authorizer) Check(ctx context.Context, creds Credentials) (State, *models.User, error) {
	if err := ValidateCredentials(creds); err != nil {
		return a.reject(reasonMalformed, creds.Email), nil, nil
	}

	user, err := a.GetUser(ctx, creds.Email)
	if err != nil {
		return StateUnverified, nil, err
	}
	if user == nil {
		return a.reject(reasonNoUser, creds.Email), nil, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password))
	switch {
	case err == nil:
		return StateVerified, user, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return a.reject(reasonMismatch, creds.Email), nil, nil
	default:
		a.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("cannot compare password hash")
		return a.reject(reasonBadHash, creds.Email), nil, nil
	}
}

// Authorize returns the user when the credentials are valid and nil when
// they are rejected.
func (a *Authorizer) Authorize(ctx context.Context, creds Credentials) (*models.User, error) {
	_, user, err := a.Check(ctx, creds)
	return user, err
}

func (a *Authorizer) reject(reason, email string) State {
	a.log.Info().
		Str("state", StateRejected.String()).
		Str("reason", reason).
		Str("email", email).
		Msg("invalid credentials")
	return StateRejected
}
