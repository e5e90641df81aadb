package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "guestnav-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{name: "Courier token", userID: "courier-1", role: "courier"},
		{name: "Customer token", userID: "customer-7", role: "customer"},
		{name: "Empty role still generates", userID: "courier-2", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()

			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, int64(0))

			claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, (*claims)["user_id"])
			assert.Equal(t, tt.role, (*claims)["role"])
			assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken("courier-1", "courier", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	cfg := getTestConfig()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "courier-1",
		"role":    "courier",
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", getTestConfig().JWT.Secret)
	assert.Error(t, err)
}
