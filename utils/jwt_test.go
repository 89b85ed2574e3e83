package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-42", "Artisan", "bob", time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "Artisan", claims.Role)
	assert.Equal(t, "bob", claims.Username)
}

func TestExtractClaims_ExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-42", "Client", "alice", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestExtractClaims_MissingSubjectOrRole(t *testing.T) {
	sign := func(claims jwt.MapClaims) string {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
		require.NoError(t, err)
		return signed
	}

	_, err := ExtractClaimsFromToken(sign(jwt.MapClaims{"role": "Client"}))
	assert.Error(t, err)

	_, err = ExtractClaimsFromToken(sign(jwt.MapClaims{"sub": "user-1"}))
	assert.Error(t, err)
}
