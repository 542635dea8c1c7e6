package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/config"
	"github.com/saketh8887/medconnect/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvLogFile, filepath.Join(t.TempDir(), "test.log"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

// signIn opens the database the way the TUI does and starts a session.
func signIn(t *testing.T, db, email string) {
	t.Helper()
	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Authenticate(context.Background(), email, catalog.DefaultPassword)
	require.NoError(t, err)
}

func TestUsersListSeedsAccounts(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	out, err := execute(t, "users", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "sarah.s@aiims.edu.in")
	assert.Contains(t, out, "admin@medconnect.edu")
}

func TestUsersAddThenStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	out, err := execute(t, "users", "add", "--db", db,
		"--name", "Ravi Kumar", "--email", "ravi@example.edu", "--password", "secret1", "--year", "MBBS Phase I")
	require.NoError(t, err)
	assert.Contains(t, out, "Created Ravi Kumar")

	out, err = execute(t, "stats", "--db", db, "--email", "ravi@example.edu")
	require.NoError(t, err)
	assert.Contains(t, out, "Study time:        0.00 h over 0 sessions")
}

func TestResetNeedsConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	_, err := execute(t, "users", "list", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "reset", "--db", db, "--yes=false")
	require.Error(t, err)
	assert.FileExists(t, db)

	out, err := execute(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
	_, err = os.Stat(db)
	assert.True(t, os.IsNotExist(err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "medconnect")
}

func TestTrackKeepsSignedInSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	_, err := execute(t, "users", "list", "--db", db)
	require.NoError(t, err)
	signIn(t, db, "sarah.s@aiims.edu.in")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out, err := executeContext(t, ctx, "track", "--db", db,
		"--email", "admin@medconnect.edu", "--password", catalog.DefaultPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking study time for")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	cur, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "u1", cur.ID)
}

func TestTrackRejectsBadPassword(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	_, err := execute(t, "track", "--db", db,
		"--email", "admin@medconnect.edu", "--password", "wrong")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestUserStudyLogCreditsItsOwnAccount(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mc.db")
	_, err := execute(t, "users", "list", "--db", db)
	require.NoError(t, err)
	signIn(t, db, "sarah.s@aiims.edu.in")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	admin, err := s.UserByEmail(ctx, "admin@medconnect.edu")
	require.NoError(t, err)
	require.NoError(t, userStudyLog{store: s, userID: admin.ID}.LogStudyTime(ctx, 1))

	adminHours, err := s.TotalStudyHours(ctx, admin.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, adminHours, 1e-9)
	studentHours, err := s.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, studentHours)
}
