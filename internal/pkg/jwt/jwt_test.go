package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "warden@hocman.app", "ADMIN", "secret", 15)
	assert.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "warden@hocman.app", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "warden@hocman.app", "ADMIN", "secret", 15)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(7, "warden@hocman.app", "ADMIN", "secret", -1)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-1", "refresh-secret", 7)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(token, "refresh-secret")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-id-1", claims.TokenID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	access, err := GenerateAccessToken(7, "warden@hocman.app", "ADMIN", "secret", 15)
	assert.NoError(t, err)

	// An access token signed with the access secret fails refresh validation
	_, err = ValidateRefreshToken(access, "refresh-secret")
	assert.Error(t, err)
}
