package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Month    int    `json:"month" validate:"required,month"`
}

func TestRequiredMessage(t *testing.T) {
	cases := []struct {
		fields []string
		want   string
	}{
		{nil, ""},
		{[]string{"name"}, "name is required"},
		{[]string{"fungsi_name", "fungsi_code"}, "fungsi_name and fungsi_code are required"},
		{[]string{"email", "full_name", "username"}, "email, full_name, and username are required"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RequiredMessage(tc.fields))
	}
}

func TestValidateStructMissingFields(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Email: "a@b.co"})
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "user_id, password, and month are required", fe.Message)
}

func TestValidateStructInvalidValues(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		UserID:   "not-a-uuid",
		Email:    "a@b.co",
		Password: "x",
		Month:    13,
	})
	require.Error(t, err)

	fe := err.(*fiber.Error)
	assert.Equal(t, "user_id must be a valid UUID; month must be between 1 and 12", fe.Message)
}

func TestValidateStructOK(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleRequest{
		UserID:   "e3b0c442-98fc-4c14-9afb-f4c8996fb924",
		Email:    "a@b.co",
		Password: "x",
		Month:    12,
	}))
}
