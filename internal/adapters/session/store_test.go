package session

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() ports.Session {
	return ports.Session{
		Token: "tok-123",
		User: domain.User{
			ID:    7,
			Name:  "alice",
			Roles: []string{"User", "Admin"},
		},
	}
}

func TestSaveThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewStore(path)

	require.NoError(t, store.Save(context.Background(), testSession()))

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	user, err := store.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(7), user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.True(t, user.IsAdmin())
}

func TestSaveCreatesParentDirAndRestrictsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), ".adsite", "session.toml")
	store := NewStore(path)
	require.NoError(t, store.Save(context.Background(), testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewStore(path)
	require.NoError(t, store.Save(context.Background(), testSession()))

	next := testSession()
	next.Token = "tok-456"
	next.User.Name = "bob"
	next.User.Roles = []string{"User"}
	require.NoError(t, store.Save(context.Background(), next))

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)

	user, err := store.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())
}

func TestReadWithoutSessionFileIsNotLoggedIn(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.toml"))

	_, err := store.Token(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)

	_, err = store.CurrentUser(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestClearRemovesSessionAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewStore(path)
	require.NoError(t, store.Save(context.Background(), testSession()))

	require.NoError(t, store.Clear(context.Background()))
	_, err := store.Token(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)

	require.NoError(t, store.Clear(context.Background()))
}

func TestEmptyTokenCountsAsNotLoggedIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("token = \"\"\n"), 0o600))
	store := NewStore(path)

	_, err := store.Token(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}
