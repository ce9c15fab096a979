package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/model"
)

func TestFixtureIsDeterministic(t *testing.T) {
	assert.Equal(t, Users(), Users())
	assert.Equal(t, Posts(), Posts())
	assert.Equal(t, Notifications(), Notifications())
}

func TestUniqueIDs(t *testing.T) {
	seenUsers := map[string]bool{}
	for _, u := range Users() {
		assert.False(t, seenUsers[u.ID], "duplicate user id %s", u.ID)
		seenUsers[u.ID] = true
	}

	seenPosts := map[string]bool{}
	for _, p := range Posts() {
		assert.False(t, seenPosts[p.ID], "duplicate post id %s", p.ID)
		seenPosts[p.ID] = true

		seenComments := map[string]bool{}
		for _, c := range p.Comments {
			assert.False(t, seenComments[c.ID], "duplicate comment id %s in %s", c.ID, p.ID)
			seenComments[c.ID] = true
		}
	}
}

func TestEmailsUniqueCaseInsensitively(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range Users() {
		lower := strings.ToLower(u.Email)
		assert.False(t, seen[lower], "duplicate email %s", u.Email)
		seen[lower] = true
	}
}

func TestTimestampsParse(t *testing.T) {
	for _, p := range Posts() {
		_, err := time.Parse(time.RFC3339, p.CreatedAt)
		require.NoError(t, err, "post %s", p.ID)
		for _, c := range p.Comments {
			_, err := time.Parse(time.RFC3339, c.CreatedAt)
			require.NoError(t, err, "comment %s", c.ID)
		}
	}
	for _, n := range Notifications() {
		_, err := time.Parse(time.RFC3339, n.CreatedAt)
		require.NoError(t, err, "notification %s", n.ID)
	}
}

func TestFeedIsMostRecentFirst(t *testing.T) {
	posts := Posts()
	for i := 1; i < len(posts); i++ {
		prev, _ := time.Parse(time.RFC3339, posts[i-1].CreatedAt)
		cur, _ := time.Parse(time.RFC3339, posts[i].CreatedAt)
		assert.False(t, cur.After(prev), "feed out of order at %s", posts[i].ID)
	}
}

func TestNotificationPostIDPresence(t *testing.T) {
	// PostID is set exactly for like and comment notifications.
	for _, n := range Notifications() {
		switch n.Type {
		case model.NotificationLike, model.NotificationComment:
			assert.NotNil(t, n.PostID, "notification %s", n.ID)
		case model.NotificationFollow:
			assert.Nil(t, n.PostID, "notification %s", n.ID)
		default:
			t.Errorf("notification %s has unknown type %q", n.ID, n.Type)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	posts := Posts()
	posts[0].Likes = 9999
	posts[0].Comments[0].Content = "mutated"
	*posts[0].ImageURL = "mutated"

	fresh := Posts()
	assert.Equal(t, 42, fresh[0].Likes)
	assert.NotEqual(t, "mutated", fresh[0].Comments[0].Content)
	assert.NotEqual(t, "mutated", *fresh[0].ImageURL)

	notifications := Notifications()
	*notifications[0].PostID = "mutated"
	assert.Equal(t, "post-1", *Notifications()[0].PostID)

	users := Users()
	users[0].Name = "mutated"
	assert.Equal(t, "Maria Silva", Users()[0].Name)
}
