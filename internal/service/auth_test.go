package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/pkg/config"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

// setupTest loads a test configuration and opens a fresh database. The
// bootstrap path runs for real: vouchers get seeded and the admin
// account from the config is created.
func setupTest(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	cfgYAML := `
database:
  path: ` + filepath.Join(dir, "test.db") + `
jwt:
  secret_key: test-secret
  expire_hours: 1
log:
  level: error
  format: console
admin:
  username: admin
  email: admin@cloudbin.com
  password: adminpass
`
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	require.NoError(t, repository.InitDB(cfg.Database.Path))
	t.Cleanup(func() { repository.Close() })
}

func TestRegister(t *testing.T) {
	setupTest(t)

	resp, err := Register("alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, resp.Account)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleUser, resp.Account.Role)
	assert.Equal(t, 0, resp.Account.Coins)

	// Stored row matches
	account, err := repository.GetAccountByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, model.RoleUser, account.Role)
	assert.Equal(t, 0, account.Coins)
	assert.NotEqual(t, "secret", account.PasswordHash)
}

func TestRegisterDuplicates(t *testing.T) {
	setupTest(t)

	_, err := Register("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{"duplicate username", "alice", "other@example.com", ErrUsernameTaken},
		{"duplicate email", "bob", "alice@example.com", ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Register(tt.username, tt.email, "secret")
			assert.ErrorIs(t, err, tt.wantErr)

			// No row was created
			if tt.username != "alice" {
				account, err := repository.GetAccountByUsername(tt.username)
				require.NoError(t, err)
				assert.Nil(t, account)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	setupTest(t)

	_, err := Register("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantErr  error
	}{
		{"valid user login", "alice", "secret", model.RoleUser, nil},
		{"valid admin login", "admin", "adminpass", model.RoleAdmin, nil},
		{"wrong password", "alice", "wrong", model.RoleUser, ErrInvalidCredentials},
		{"unknown username", "ghost", "secret", model.RoleUser, ErrInvalidCredentials},
		{"user asserting admin", "alice", "secret", model.RoleAdmin, ErrRoleMismatch},
		{"admin asserting user", "admin", "adminpass", model.RoleUser, ErrRoleMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Login(tt.username, tt.password, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.Equal(t, tt.role, resp.Account.Role)
		})
	}
}

func TestSetPassword(t *testing.T) {
	setupTest(t)

	resp, err := Register("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, SetPassword(resp.Account.ID, "newsecret"))

	_, err = Login("alice", "secret", model.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Login("alice", "newsecret", model.RoleUser)
	assert.NoError(t, err)
}

func TestAdminBootstrapIdempotent(t *testing.T) {
	setupTest(t)

	// Re-running init against the same database must not create a
	// second admin
	cfg := config.Get()
	require.NoError(t, repository.InitDB(cfg.Database.Path))

	accounts, err := ListAccounts()
	require.NoError(t, err)

	admins := 0
	for _, a := range accounts {
		if a.Role == model.RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins)
}

func registerTestUser(t *testing.T, name string) *model.AccountInfo {
	t.Helper()
	resp, err := Register(name, fmt.Sprintf("%s@example.com", name), "secret")
	require.NoError(t, err)
	return resp.Account
}
