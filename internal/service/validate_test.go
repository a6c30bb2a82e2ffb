package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/internal/domain"
)

func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	out := map[string]string{}
	for _, v := range ve.Violations {
		out[v.Field] = v.Message
	}
	return out
}

func TestValidatorCollectsEveryViolation(t *testing.T) {
	v := NewValidator()
	err := v.Struct(CreateTankInput{Width: 0, Height: -2, Length: 5})

	got := violations(t, err)
	assert.Equal(t, map[string]string{
		"name":   "name is required",
		"width":  "width must be at least 1",
		"height": "height must be at least 1",
	}, got)
}

func TestValidatorOptionalFields(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(UpdateTankInput{}))

	zero := 0
	empty := ""
	got := violations(t, v.Struct(UpdateTankInput{Width: &zero, Name: &empty}))
	assert.Equal(t, "width must be at least 1", got["width"])
	assert.Equal(t, "name must be at least 1 characters", got["name"])

	vol := 0.0
	assert.NoError(t, v.Struct(UpdateTankInput{WaterVolume: &vol}))
}

func TestValidatorEnumsAndArrays(t *testing.T) {
	v := NewValidator()
	in := validSpeciesInput()
	in.CareLevel = "Hard"
	in.Aliases = []string{"ok", ""}

	got := violations(t, v.Struct(in))
	assert.Equal(t, "careLevel must be one of: Easy, Medium, Expert", got["careLevel"])
	assert.Equal(t, "aliases[1] must be at least 1 characters", got["aliases[1]"])
}

func TestValidatorEmail(t *testing.T) {
	v := NewValidator()
	got := violations(t, v.Struct(LoginInput{Email: "not-an-email", Password: "x"}))
	assert.Equal(t, "email must be a valid email address", got["email"])
}

func TestValidatorNonStruct(t *testing.T) {
	err := NewValidator().Struct(42)
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.False(t, errors.As(err, &ve))
}
