package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"agora/internal/latency"
	"agora/internal/model"
)

// Profile defaults handed to every signed-up user.
const (
	defaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"
	defaultBio    = "Novo membro da comunidade"
)

// AuthSnapshot is the immutable view handed to subscribers after every
// auth mutation.
type AuthSnapshot struct {
	Authenticated bool
	CurrentUser   *model.User
}

// Auth is the single source of truth for who is logged in. It owns the
// user set (seed users plus sign-ups) and at most one current user.
// Sign-in and sign-up suspend on the injected delay before resolving,
// standing in for a server round trip.
type Auth struct {
	mu            sync.Mutex
	users         []model.User
	authenticated bool
	current       *model.User

	delays latency.Profile
	logger *logrus.Logger
	subs   *broadcaster[AuthSnapshot]
	ready  chan struct{}
}

// NewAuth builds the store over the given user set and kicks off the
// one-shot session-restore probe. No session survives a process start,
// so the probe always resolves signed out; Ready is closed once it has.
func NewAuth(users []model.User, delays latency.Profile, logger *logrus.Logger) *Auth {
	if logger == nil {
		logger = logrus.New()
	}
	a := &Auth{
		users:  users,
		delays: delays,
		logger: logger,
		subs:   newBroadcaster[AuthSnapshot](),
		ready:  make(chan struct{}),
	}
	go a.restore()
	return a
}

func (a *Auth) restore() {
	latency.Sleep(a.delays.SessionRestore)
	a.logger.Info("Session restore completed, no stored session")
	a.subs.publish(a.snapshot())
	close(a.ready)
}

// Ready is closed once the startup session check has resolved.
func (a *Auth) Ready() <-chan struct{} { return a.ready }

// Subscribe registers fn to receive a snapshot after every mutation.
func (a *Auth) Subscribe(fn func(AuthSnapshot)) *Subscription {
	return a.subs.subscribe(fn)
}

// SignIn matches a user by email, case-insensitively. The password is
// accepted but never verified; no credential model exists in the mock
// backend. On a miss the store is left untouched and
// ErrInvalidCredentials is returned.
func (a *Auth) SignIn(email, password string) (model.User, error) {
	_ = password
	latency.Sleep(a.delays.SignIn)

	a.mu.Lock()
	var match *model.User
	for i := range a.users {
		if strings.EqualFold(a.users[i].Email, email) {
			match = &a.users[i]
			break
		}
	}
	if match == nil {
		a.mu.Unlock()
		a.logger.WithField("email", email).Warn("Invalid login credentials")
		return model.User{}, ErrInvalidCredentials
	}
	u := *match
	cur := u
	a.authenticated = true
	a.current = &cur
	a.mu.Unlock()

	a.logger.WithFields(logrus.Fields{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("User logged in successfully")
	a.subs.publish(a.snapshot())
	return u, nil
}

// SignUp registers a new user and signs them in. The email must not
// collide with an existing user, compared case-insensitively; the
// password is accepted but not stored.
func (a *Auth) SignUp(name, email, password string) (model.User, error) {
	_ = password
	latency.Sleep(a.delays.SignUp)

	a.mu.Lock()
	for i := range a.users {
		if strings.EqualFold(a.users[i].Email, email) {
			a.mu.Unlock()
			a.logger.WithField("email", email).Warn("The email is already taken")
			return model.User{}, ErrEmailAlreadyInUse
		}
	}
	u := model.User{
		ID:     "user-" + uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: defaultAvatar,
		Bio:    defaultBio,
	}
	a.users = append(a.users, u)
	cur := u
	a.authenticated = true
	a.current = &cur
	a.mu.Unlock()

	a.logger.WithFields(logrus.Fields{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("User registered successfully")
	a.subs.publish(a.snapshot())
	return u, nil
}

// SignOut clears the current user. Always succeeds.
func (a *Auth) SignOut() {
	a.mu.Lock()
	a.authenticated = false
	a.current = nil
	a.mu.Unlock()

	a.logger.Info("User logged out")
	a.subs.publish(a.snapshot())
}

// UpdateUser replaces the current user snapshot unconditionally. The
// backing user set is not updated, and posts keep the author fields they
// were created with.
func (a *Auth) UpdateUser(u model.User) {
	a.mu.Lock()
	cur := u
	a.current = &cur
	a.mu.Unlock()

	a.subs.publish(a.snapshot())
}

// Authenticated reports whether a user is signed in.
func (a *Auth) Authenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

// CurrentUser returns a copy of the signed-in user, if any.
func (a *Auth) CurrentUser() (model.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return model.User{}, false
	}
	return *a.current, true
}

func (a *Auth) snapshot() AuthSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := AuthSnapshot{Authenticated: a.authenticated}
	if a.current != nil {
		u := *a.current
		snap.CurrentUser = &u
	}
	return snap
}
