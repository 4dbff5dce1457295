package jwt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaravsharma17/cloudbin/internal/pkg/config"
)

func loadTestConfig(t *testing.T, secret string) {
	t.Helper()

	cfgYAML := `
jwt:
  secret_key: ` + secret + `
  expire_hours: 1
`
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0644))

	_, err := config.Load(cfgPath)
	require.NoError(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	loadTestConfig(t, "test-secret")

	token, err := GenerateToken(42, "alice", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenIDsAreUnique(t *testing.T) {
	loadTestConfig(t, "test-secret")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		token, err := GenerateToken(1, "alice", "user")
		require.NoError(t, err)

		claims, err := ValidateToken(token)
		require.NoError(t, err)

		assert.False(t, seen[claims.ID], "token ID repeated")
		seen[claims.ID] = true
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	loadTestConfig(t, "secret-one")
	token, err := GenerateToken(1, "alice", "user")
	require.NoError(t, err)

	loadTestConfig(t, "secret-two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	loadTestConfig(t, "test-secret")

	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc123", "", true},
		{"wrong scheme", "Basic abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
