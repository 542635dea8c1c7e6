package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t)
	n, err := s.Seed(context.Background(), catalog.InitialUsers())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	return s
}

func TestOpenMigratesSchema(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
	n, err := s.Client().User.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"journal_mode", "wal"},
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Seed(context.Background(), catalog.InitialUsers())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := seededStore(t)
	n, err := s.Seed(context.Background(), catalog.InitialUsers())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAuthenticate(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	_, err := s.Authenticate(ctx, "sarah.s@aiims.edu.in", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody@aiims.edu.in", catalog.DefaultPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := s.Authenticate(ctx, "  Sarah.S@AIIMS.edu.in ", catalog.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	require.NotNil(t, u.LastLogin)
	assert.True(t, now.Equal(*u.LastLogin))

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "u1", cur.ID)
}

func TestVerifyCredentialsLeavesSessionAlone(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	_, err := s.Authenticate(ctx, "sarah.s@aiims.edu.in", catalog.DefaultPassword)
	require.NoError(t, err)

	admin, err := s.VerifyCredentials(ctx, "ADMIN@medconnect.edu", catalog.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, "admin-01", admin.ID)
	assert.Nil(t, admin.LastLogin)

	_, err = s.VerifyCredentials(ctx, "admin@medconnect.edu", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "u1", cur.ID)

	require.NoError(t, s.LogStudyTime(ctx, 0.5))
	total, err := s.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, total, 1e-9)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	s := seededStore(t)
	u, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	_, err := s.Authenticate(ctx, "admin@medconnect.edu", catalog.DefaultPassword)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))

	u, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogStudyTimeAccumulates(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.LogStudyTime(ctx, 0.5), ErrNoSession)

	_, err := s.Authenticate(ctx, "sarah.s@aiims.edu.in", catalog.DefaultPassword)
	require.NoError(t, err)

	logged := []float64{65.0 / 3600, 0.25, 1.0 / 60}
	var want float64
	for _, h := range logged {
		require.NoError(t, s.LogStudyTime(ctx, h))
		want += h
	}

	total, err := s.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, want, total, 1e-9)

	sessions, err := s.StudySessions(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for i, ss := range sessions {
		assert.InDelta(t, logged[i], ss.Hours, 1e-12)
		if i > 0 {
			assert.Greater(t, ss.Sequence, sessions[i-1].Sequence)
		}
	}

	limited, err := s.StudySessions(ctx, "u1", QueryOpts{Limit: 2, After: sessions[0].Sequence})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, sessions[1].Sequence, limited[0].Sequence)

	other, err := s.TotalStudyHours(ctx, "admin-01")
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestLogStudyTimeConcurrent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	_, err := s.Authenticate(ctx, "sarah.s@aiims.edu.in", catalog.DefaultPassword)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.LogStudyTime(ctx, 0.125))
		}()
	}
	wg.Wait()

	total, err := s.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestCreateAndUpdateUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := &profile.UserProfile{
		Name:     "Dev Rao",
		Role:     profile.RoleDoctor,
		Email:    "dev@hospital.org",
		Password: "s3cret",
		Year:     "MBBS Phase I",
	}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.Password, "plaintext password is cleared")

	dup := &profile.UserProfile{ID: "x", Name: "Dup", Role: profile.RoleNurse, Email: "DEV@hospital.org", Password: "p"}
	require.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicateUser)

	got, err := s.User(ctx, u.ID)
	require.NoError(t, err)
	got.Year = "MBBS Phase II"
	got.MarkChapterComplete("s1t1c1")
	got.MarkChapterComplete("s1t1c1")
	require.NoError(t, s.UpdateUser(ctx, got))

	again, err := s.UserByEmail(ctx, "dev@hospital.org")
	require.NoError(t, err)
	assert.Equal(t, "MBBS Phase II", again.Year)
	assert.Equal(t, []string{"s1t1c1"}, again.CompletedChapterIDs.Sorted())

	other := &profile.UserProfile{Name: "Ana", Role: profile.RoleNurse, Email: "ana@hospital.org", Password: "p"}
	require.NoError(t, s.CreateUser(ctx, other))
	other.Email = "dev@hospital.org"
	require.ErrorIs(t, s.UpdateUser(ctx, other), ErrDuplicateUser)

	missing := &profile.UserProfile{ID: "ghost", Name: "Ghost", Role: profile.RoleStudent, Email: "g@x.org"}
	require.ErrorIs(t, s.UpdateUser(ctx, missing), ErrNotFound)

	_, err = s.User(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePasswordChangesCredentials(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	u, err := s.User(ctx, "u1")
	require.NoError(t, err)
	u.Password = "NewPass#1"
	require.NoError(t, s.UpdateUser(ctx, u))

	_, err = s.Authenticate(ctx, u.Email, catalog.DefaultPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, u.Email, "NewPass#1")
	require.NoError(t, err)
}

func TestDeleteUserEndsSession(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	_, err := s.Authenticate(ctx, "sarah.s@aiims.edu.in", catalog.DefaultPassword)
	require.NoError(t, err)
	require.NoError(t, s.LogStudyTime(ctx, 1))

	require.NoError(t, s.DeleteUser(ctx, "u1"))
	require.ErrorIs(t, s.DeleteUser(ctx, "u1"), ErrNotFound)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	total, err := s.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRecordQuizScoreCompletesTopic(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	cat := catalog.Default()

	topic, ok := cat.TopicOf("s2t1c1")
	require.True(t, ok)

	for i, ch := range topic.Chapters {
		u, err := s.RecordQuizScore(ctx, cat, "u1", ch.ID, 50)
		require.NoError(t, err)
		assert.True(t, u.HasCompletedChapter(ch.ID))
		last := i == len(topic.Chapters)-1
		assert.Equal(t, last, u.HasCompletedTopic(topic.ID), "after chapter %d", i+1)
	}

	u, err := s.User(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, u.HasCompletedTopic(topic.ID))
	assert.Len(t, u.QuizScores, len(topic.Chapters))
	assert.InDelta(t, 50, u.AverageScore(), 1e-9)

	_, err = s.RecordQuizScore(ctx, cat, "ghost", "s2t1c1", 100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPreferences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	v, err := s.Preference(ctx, PrefTheme)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetPreference(ctx, PrefTheme, "dark"))
	require.NoError(t, s.SetPreference(ctx, PrefTheme, "light"))

	v, err = s.Preference(ctx, PrefTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	all, err := s.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{PrefTheme: "light"}, all)
}

func TestInquiryLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.Error(t, s.CreateInquiry(ctx, &Inquiry{StudentID: "u1"}))

	first := &Inquiry{StudentID: "u1", StudentName: "Sarah Sharma", SubjectID: "s1", Question: "Why does MR cause a holosystolic murmur?"}
	require.NoError(t, s.CreateInquiry(ctx, first))
	assert.Equal(t, InquiryPending, first.Status)

	s.SetClock(func() time.Time { return time.Now().Add(time.Minute) })
	other := &Inquiry{StudentID: "u2", StudentName: "Other", SubjectID: "s2", Question: "GABA-A vs GABA-B?"}
	require.NoError(t, s.CreateInquiry(ctx, other))

	mine, err := s.ListInquiries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := s.ListInquiries(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, other.ID, all[0].ID, "newest first")

	require.Error(t, s.ResolveInquiry(ctx, first.ID, "  "))
	require.NoError(t, s.ResolveInquiry(ctx, first.ID, "Regurgitant flow through systole."))
	require.ErrorIs(t, s.ResolveInquiry(ctx, "missing", "x"), ErrNotFound)

	mine, err = s.ListInquiries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, InquiryResolved, mine[0].Status)
	assert.Equal(t, "Regurgitant flow through systole.", mine[0].Answer)
	assert.NotNil(t, mine[0].AnsweredAt)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-1", Purpose: "chat", InputTokens: 10, OutputTokens: 20, LatencyMs: 5, Success: true,
	}))
	require.NoError(t, s.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-1", Purpose: "feedback", Success: false, ErrorMessage: "boom",
		RequestBody: "[user]\nhelp", ResponseBody: "",
	}))

	events, err := s.LLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "chat", events[0].Purpose)
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
	assert.Equal(t, "boom", events[1].ErrorMessage)

	one, err := s.LLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "feedback", one.Purpose)
	assert.Equal(t, "[user]\nhelp", one.RequestBody)

	_, err = s.LLMEvent(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultDBPathHonoursEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "x.db")
	t.Setenv("MEDCONNECT_DB", p)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDCONNECT_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "medconnect", "medconnect.db"), got)
}
