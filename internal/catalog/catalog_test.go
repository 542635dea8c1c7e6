package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/profile"
)

func TestSubjectsShape(t *testing.T) {
	c := Default()
	subs := c.Subjects()
	require.Len(t, subs, 3)
	assert.Equal(t, 15, c.TopicCount())

	seen := map[string]bool{}
	for _, s := range subs {
		require.Len(t, s.Topics, 5, s.Name)
		for _, tp := range s.Topics {
			require.Len(t, tp.Chapters, 5, tp.ID)
			for _, ch := range tp.Chapters {
				assert.False(t, seen[ch.ID], "duplicate chapter id %s", ch.ID)
				seen[ch.ID] = true
				require.Len(t, ch.QuizPool, 2)
				for _, q := range ch.QuizPool {
					assert.Less(t, q.CorrectAnswer, len(q.Options))
				}
			}
		}
	}
}

func TestChapterAndTopicLookup(t *testing.T) {
	c := Default()

	ch, ok := c.Chapter("s2t4c3")
	require.True(t, ok)
	assert.Equal(t, "Diagnostic Pathways", ch.Title)
	assert.Contains(t, ch.QuizPool[0].Question, "Stroke Diagnostics")

	tp, ok := c.TopicOf("s2t4c3")
	require.True(t, ok)
	assert.Equal(t, "s2t4", tp.ID)

	_, ok = c.Chapter("nope")
	assert.False(t, ok)
	_, ok = c.TopicOf("nope")
	assert.False(t, ok)

	s, ok := c.Subject("s3")
	require.True(t, ok)
	assert.Equal(t, "Anatomy", s.Name)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	subs := c.Subjects()
	subs[0].Name = "changed"
	assert.Equal(t, "Cardiology", c.Subjects()[0].Name)

	h := c.Hostel()
	h.Roommates[0] = "changed"
	assert.Equal(t, "Ananya Iyer", c.Hostel().Roommates[0])
}

func TestCampusRecords(t *testing.T) {
	c := Default()
	assert.Len(t, c.Books(), 3)
	assert.Len(t, c.Videos(), 3)
	assert.Equal(t, []string{"Waffles", "Poori Sabzi", "Gulab Jamun"}, c.MessMenu(time.Saturday))
	assert.Equal(t, 150000, c.Fees()[0].Amount)
	assert.Equal(t, "task1", c.Performance()[0].TaskID)
	assert.Equal(t, c.Tasks()[0].ID, c.Performance()[0].TaskID)
}

func TestInitialUsersAreValid(t *testing.T) {
	users := InitialUsers()
	require.Len(t, users, 2)
	for _, u := range users {
		require.NoError(t, u.Validate())
		assert.Equal(t, DefaultPassword, u.Password)
	}
	assert.Equal(t, profile.RoleAdmin, users[0].Role)
	assert.Equal(t, "MBBS Phase III", users[1].Year)

	// Fresh copies every call.
	users[1].Name = "changed"
	assert.Equal(t, "Sarah Sharma", InitialUsers()[1].Name)
}
