package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/latency"
	"agora/internal/model"
	"agora/internal/seed"
)

func newPosts(t *testing.T) *Posts {
	t.Helper()
	s := NewPosts(seed.Posts, latency.None, testLogger())
	<-s.Ready()
	return s
}

func testPost(id string) model.Post {
	return model.Post{
		ID:         id,
		UserID:     "user-1",
		UserName:   "Maria Silva",
		UserAvatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
		Content:    "Uma nova publicação",
		CreatedAt:  "2025-03-14T12:00:00Z",
		Comments:   []model.Comment{},
	}
}

func testComment(id string) model.Comment {
	return model.Comment{
		ID:         id,
		UserID:     "user-2",
		UserName:   "João Oliveira",
		UserAvatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		Content:    "Um novo comentário",
		CreatedAt:  "2025-03-14T12:00:00Z",
	}
}

func TestInitialLoad(t *testing.T) {
	s := NewPosts(seed.Posts, latency.None, testLogger())
	<-s.Ready()

	assert.False(t, s.Loading())
	posts := s.All()
	require.Len(t, posts, 4)
	assert.Equal(t, "post-1", posts[0].ID)
	assert.Equal(t, "post-4", posts[3].ID)
}

func TestAddPostPrepends(t *testing.T) {
	s := newPosts(t)
	priorFirst := s.All()[0].ID

	s.AddPost(testPost("post-new"))

	posts := s.All()
	require.Len(t, posts, 5)
	assert.Equal(t, "post-new", posts[0].ID)
	assert.Equal(t, priorFirst, posts[1].ID)
}

func TestLikePost(t *testing.T) {
	s := newPosts(t)
	before, ok := s.ByID("post-1")
	require.True(t, ok)

	assert.True(t, s.LikePost("post-1"))
	assert.True(t, s.LikePost("post-1"))

	after, ok := s.ByID("post-1")
	require.True(t, ok)
	assert.Equal(t, before.Likes+2, after.Likes)
}

func TestLikePostUnknownIDIsNoOp(t *testing.T) {
	s := newPosts(t)
	before := s.All()

	assert.False(t, s.LikePost("post-does-not-exist"))
	assert.Equal(t, before, s.All())
}

func TestAddCommentAppends(t *testing.T) {
	s := newPosts(t)
	before, ok := s.ByID("post-1")
	require.True(t, ok)

	c := testComment("comment-new")
	require.True(t, s.AddComment("post-1", c))

	after, ok := s.ByID("post-1")
	require.True(t, ok)
	require.Len(t, after.Comments, len(before.Comments)+1)
	assert.Equal(t, c, after.Comments[len(after.Comments)-1])
	assert.Equal(t, before.Comments, after.Comments[:len(before.Comments)])

	// Other posts keep their comment lists.
	other, ok := s.ByID("post-3")
	require.True(t, ok)
	require.Len(t, other.Comments, 1)
	assert.Equal(t, "comment-3", other.Comments[0].ID)
}

func TestAddCommentUnknownIDIsNoOp(t *testing.T) {
	s := newPosts(t)
	before := s.All()

	assert.False(t, s.AddComment("post-does-not-exist", testComment("comment-x")))
	assert.Equal(t, before, s.All())
}

func TestAddCommentRoundTrip(t *testing.T) {
	s := newPosts(t)

	c := testComment("comment-roundtrip")
	c.Content = "Concordo plenamente!"
	require.True(t, s.AddComment("post-2", c))

	got, ok := s.ByID("post-2")
	require.True(t, ok)
	require.NotEmpty(t, got.Comments)
	last := got.Comments[len(got.Comments)-1]
	assert.Equal(t, "Concordo plenamente!", last.Content)
	assert.Equal(t, "user-2", last.UserID)
}

func TestSnapshotsAreImmutable(t *testing.T) {
	// A snapshot taken before a mutation must not change under the reader.
	s := newPosts(t)
	snap := s.All()
	likesBefore := snap[0].Likes
	commentsBefore := len(snap[0].Comments)

	s.LikePost(snap[0].ID)
	s.AddComment(snap[0].ID, testComment("comment-after-snap"))
	s.AddPost(testPost("post-after-snap"))

	assert.Equal(t, likesBefore, snap[0].Likes)
	assert.Len(t, snap[0].Comments, commentsBefore)
	require.Len(t, snap, 4)
}

func TestByUser(t *testing.T) {
	s := newPosts(t)

	posts := s.ByUser("user-1")
	require.Len(t, posts, 1)
	assert.Equal(t, "post-1", posts[0].ID)

	s.AddPost(testPost("post-by-maria"))
	posts = s.ByUser("user-1")
	require.Len(t, posts, 2)
	assert.Equal(t, "post-by-maria", posts[0].ID)

	assert.Empty(t, s.ByUser("user-unknown"))
}

func TestFeedSubscription(t *testing.T) {
	s := NewPosts(seed.Posts, latency.None, testLogger())
	<-s.Ready()

	var got []FeedSnapshot
	sub := s.Subscribe(func(snap FeedSnapshot) { got = append(got, snap) })

	s.AddPost(testPost("post-new"))
	require.Len(t, got, 1)
	assert.False(t, got[0].Loading)
	assert.Equal(t, "post-new", got[0].Posts[0].ID)

	// Misses are no-ops and must not publish.
	s.LikePost("post-does-not-exist")
	s.AddComment("post-does-not-exist", testComment("comment-x"))
	assert.Len(t, got, 1)

	s.LikePost("post-new")
	require.Len(t, got, 2)

	sub.Cancel()
	s.LikePost("post-new")
	assert.Len(t, got, 2)
	sub.Cancel()
}
