package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name      string
		email     string
		userName  string
	}{
		{
			name:     "обычный пользователь",
			email:    "user@example.com",
			userName: "Regular User",
		},
		{
			name:     "администратор",
			email:    "admin@bistro.com",
			userName: "Admin",
		},
		{
			name:     "без имени",
			email:    "noname@example.com",
			userName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.email, tt.userName)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.userName, claims.Name)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, time.Hour)

	validToken, err := maker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "пустой токен",
			token: "",
		},
		{
			name:  "некорректный формат",
			token: "invalid.token.here",
		},
		{
			name:  "истёкший токен",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "чужой секретный ключ",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "подделанный токен",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 100*time.Millisecond)

	token, err := maker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", time.Hour)
	token, err := wrongMaker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)
	return token
}
