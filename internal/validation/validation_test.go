package validation

import (
	"testing"

	"invoice-dashboard-backend/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin viewer"`
	Age      int    `validate:"omitempty,max=130"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(signup{Email: "user@nextmail.com", Password: "123456"}))

	tests := []struct {
		name  string
		in    signup
		field string
		msg   string
	}{
		{"missing email", signup{Password: "123456"}, "email", "is required"},
		{"bad email", signup{Email: "user", Password: "123456"}, "email", "must be a valid email address"},
		{"short password", signup{Email: "user@nextmail.com", Password: "123"}, "password", "must be at least 6 characters"},
		{"role", signup{Email: "user@nextmail.com", Password: "123456", Role: "root"}, "role", "must be one of: admin viewer"},
		{"untagged field name", signup{Email: "user@nextmail.com", Password: "123456", Age: 200}, "age", "must not exceed 130"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, errs.FieldError{Field: tt.field, Error: tt.msg}, validationErr.Fields[0])
		})
	}
}

func TestStructReportsEveryField(t *testing.T) {
	err := Struct(signup{})
	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
	assert.Equal(t, "validation failed: email is required, password is required", err.Error())
}
