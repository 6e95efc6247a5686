package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
)

func TestGenerateRegistrationNumber(t *testing.T) {
	number := GenerateRegistrationNumber()
	assert.Regexp(t, fmt.Sprintf(`^HB-%d-[0-9A-F]{6}$`, time.Now().Year()), number)
	assert.NotEqual(t, number, GenerateRegistrationNumber())
}

func TestGenerateTicketNumber(t *testing.T) {
	number := GenerateTicketNumber()
	assert.Regexp(t, `^HBT-[0-9A-F]{8}$`, number)
	assert.NotEqual(t, number, GenerateTicketNumber())
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("user-1", "asha@example.com", "admin", cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("user-1", "asha@example.com", "admin", cfg)
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	_, err = ValidateJWT(token, other)
	require.Error(t, err)
}
