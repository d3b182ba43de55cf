package auth

import (
	"testing"

	"payport/internal/repositories"
	"payport/internal/utils"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) repositories.RecordRepository {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewRecordRepository(db)
}

func TestLogin_Success(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, "admin", "password123")

	token, err := svc.Login("admin", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAdminToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "admin", claims.Username)

	active, err := repo.SessionFlag()
	require.NoError(t, err)
	assert.True(t, active, "login raises the session flag")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "admin", "hunter2"},
		{"wrong username", "root", "password123"},
		{"both wrong", "root", "toor"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			svc := NewService(repo, "admin", "password123")

			_, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			active, flagErr := repo.SessionFlag()
			require.NoError(t, flagErr)
			assert.False(t, active, "failed login must not touch session state")
		})
	}
}

func TestLogout_LowersFlag(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, "admin", "password123")

	_, err := svc.Login("admin", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	active, err := svc.SessionActive()
	require.NoError(t, err)
	assert.False(t, active)
}
