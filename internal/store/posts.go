package store

import (
	"sync"

	"github.com/sirupsen/logrus"

	"agora/internal/latency"
	"agora/internal/model"
)

// FeedSnapshot is the immutable view handed to subscribers after every
// feed mutation. Posts must not be modified by the receiver.
type FeedSnapshot struct {
	Loading bool
	Posts   []model.Post
}

// Posts is the single source of truth for the feed. The collection is
// replaced wholesale on every mutation (copy-on-write), so a snapshot
// handed out earlier is never changed under a reader.
type Posts struct {
	mu      sync.Mutex
	posts   []model.Post
	loading bool

	logger *logrus.Logger
	subs   *broadcaster[FeedSnapshot]
	ready  chan struct{}
}

// NewPosts builds the store and starts the one-shot initial load: after
// the feed-load delay the posts from load are installed, loading clears
// and Ready is closed.
func NewPosts(load func() []model.Post, delay latency.Delayer, logger *logrus.Logger) *Posts {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Posts{
		loading: true,
		logger:  logger,
		subs:    newBroadcaster[FeedSnapshot](),
		ready:   make(chan struct{}),
	}
	go func() {
		latency.Sleep(delay)
		posts := load()

		s.mu.Lock()
		s.posts = posts
		s.loading = false
		s.mu.Unlock()

		s.logger.WithField("post_count", len(posts)).Info("Feed loaded")
		s.subs.publish(s.snapshot())
		close(s.ready)
	}()
	return s
}

// Ready is closed once the initial load has completed.
func (s *Posts) Ready() <-chan struct{} { return s.ready }

// Subscribe registers fn to receive a snapshot after every mutation.
func (s *Posts) Subscribe(fn func(FeedSnapshot)) *Subscription {
	return s.subs.subscribe(fn)
}

// Loading reports whether the initial load is still pending.
func (s *Posts) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// All returns the current feed snapshot, most recent first. Callers must
// not modify it.
func (s *Posts) All() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts
}

// ByID returns a copy of the post with the given id.
func (s *Posts) ByID(id string) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			return s.posts[i], true
		}
	}
	return model.Post{}, false
}

// ByUser returns the posts authored by userID, keeping feed order.
func (s *Posts) ByUser(userID string) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Post
	for i := range s.posts {
		if s.posts[i].UserID == userID {
			out = append(out, s.posts[i])
		}
	}
	return out
}

// AddPost prepends p to the feed. The store performs no validation;
// callers are responsible for content checks before invoking it.
func (s *Posts) AddPost(p model.Post) {
	s.mu.Lock()
	next := make([]model.Post, 0, len(s.posts)+1)
	next = append(next, p)
	next = append(next, s.posts...)
	s.posts = next
	s.mu.Unlock()

	s.subs.publish(s.snapshot())
}

// AddComment appends c to the comment list of the post with the given
// id. An unknown id is a no-op: nothing fails and no other post is
// touched. The returned bool reports whether a post matched.
func (s *Posts) AddComment(postID string, c model.Comment) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.posts {
		if s.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.logger.WithField("post_id", postID).Warn("Post not found")
		return false
	}

	next := make([]model.Post, len(s.posts))
	copy(next, s.posts)
	old := next[idx].Comments
	cs := make([]model.Comment, len(old), len(old)+1)
	copy(cs, old)
	next[idx].Comments = append(cs, c)
	s.posts = next
	s.mu.Unlock()

	s.subs.publish(s.snapshot())
	return true
}

// LikePost increments the like counter of the post with the given id by
// exactly one. An unknown id is a no-op; the returned bool reports
// whether a post matched. There is no unlike path.
func (s *Posts) LikePost(postID string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.posts {
		if s.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.logger.WithField("post_id", postID).Warn("Post not found")
		return false
	}

	next := make([]model.Post, len(s.posts))
	copy(next, s.posts)
	next[idx].Likes++
	s.posts = next
	s.mu.Unlock()

	s.subs.publish(s.snapshot())
	return true
}

func (s *Posts) snapshot() FeedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FeedSnapshot{Loading: s.loading, Posts: s.posts}
}
