// Package api exposes the in-memory stores over HTTP for presentation
// consumers. Handlers do the caller-side validation the stores assume
// has already happened.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"agora/internal/model"
	"agora/internal/seed"
	"agora/internal/store"
)

const MAX_CONTENT_LENGTH = 500
const POST_NOT_FOUND = "Post not found"

const sessionName = "agora_session"

type API struct {
	auth     *store.Auth
	posts    *store.Posts
	sessions *sessions.CookieStore
	metrics  *Metrics
	registry *prometheus.Registry
	logger   *logrus.Logger
}

func New(auth *store.Auth, posts *store.Posts, sessionKey string, logger *logrus.Logger) *API {
	if logger == nil {
		logger = logrus.New()
	}
	cookies := sessions.NewCookieStore([]byte(sessionKey))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 16, // 16 hours
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	registry := prometheus.NewRegistry()
	return &API{
		auth:     auth,
		posts:    posts,
		sessions: cookies,
		metrics:  InitMetrics(registry),
		registry: registry,
		logger:   logger,
	}
}

// Router mounts every handler on a new mux router.
func (api *API) Router() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.HandlerFor(api.registry, promhttp.HandlerOpts{}))
	r.HandleFunc("/register", api.RegisterHandler).Methods("POST")
	r.HandleFunc("/login", api.LoginHandler).Methods("POST")
	r.HandleFunc("/logout", api.LogoutHandler).Methods("POST")
	r.HandleFunc("/me", api.GETMeHandler).Methods("GET")
	r.HandleFunc("/me", api.PUTMeHandler).Methods("PUT")
	r.HandleFunc("/feed", api.GETFeedHandler).Methods("GET")
	r.HandleFunc("/users/{id}/posts", api.GETUserPostsHandler).Methods("GET")
	r.HandleFunc("/posts", api.POSTPostHandler).Methods("POST")
	r.HandleFunc("/posts/{id}/comments", api.POSTCommentHandler).Methods("POST")
	r.HandleFunc("/posts/{id}/like", api.POSTLikeHandler).Methods("POST")
	r.HandleFunc("/notifications", api.GETNotificationsHandler).Methods("GET")

	return r
}

func (api *API) afterRequestLogging(start time.Time, r *http.Request) {
	// Flag requests that outlive the simulated round trip by a wide margin
	duration := time.Since(start)

	if duration > 2*time.Second {
		api.logger.WithFields(logrus.Fields{
			"method":    r.Method,
			"path":      r.URL.Path,
			"duration":  duration,
			"remote_ip": r.RemoteAddr,
		}).Warn("Slow request detected")
	} else {
		api.logger.WithFields(logrus.Fields{
			"method":    r.Method,
			"path":      r.URL.Path,
			"duration":  duration,
			"remote_ip": r.RemoteAddr,
		}).Info("Request completed quickly")
	}
}

func (api *API) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	logger := api.logger.WithFields(logrus.Fields{
		"method":    r.Method,
		"path":      r.URL.Path,
		"remote_ip": r.RemoteAddr,
	})
	logger.Info("RegisterHandler called")

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Warn("Invalid request body received")
		api.metrics.BadRequests.WithLabelValues("register").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errMsg := validateRegistration(req); errMsg != "" {
		logger.Warn(errMsg)
		api.metrics.BadRequests.WithLabelValues("register").Inc()
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	user, err := api.auth.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		logger.WithField("email", req.Email).Warn("The email is already taken")
		api.metrics.BadRequests.WithLabelValues("register").Inc()
		writeError(w, http.StatusBadRequest, "The email is already taken")
		return
	}

	api.saveSession(w, r, user.ID)
	api.metrics.SignUps.WithLabelValues("register").Inc()
	api.metrics.SuccessfulRequests.WithLabelValues("register").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (api *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	logger := api.logger.WithFields(logrus.Fields{
		"method":    r.Method,
		"path":      r.URL.Path,
		"remote_ip": r.RemoteAddr,
	})
	logger.Info("LoginHandler called")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Warn("Invalid request body received")
		api.metrics.BadRequests.WithLabelValues("login").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := api.auth.SignIn(req.Email, req.Password)
	if err != nil {
		api.metrics.BadRequests.WithLabelValues("login").Inc()
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	api.saveSession(w, r, user.ID)
	api.metrics.SignIns.WithLabelValues("login").Inc()
	api.metrics.SuccessfulRequests.WithLabelValues("login").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (api *API) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	session, _ := api.sessions.Get(r, sessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		api.logger.WithError(err).Error("Failed to drop session")
	}

	api.auth.SignOut()
	api.metrics.SuccessfulRequests.WithLabelValues("logout").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (api *API) GETMeHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	user, ok := api.sessionUser(r)
	if !ok {
		api.metrics.BadRequests.WithLabelValues("me").Inc()
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	api.metrics.SuccessfulRequests.WithLabelValues("me").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (api *API) PUTMeHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	current, ok := api.sessionUser(r)
	if !ok {
		api.metrics.BadRequests.WithLabelValues("me").Inc()
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.metrics.BadRequests.WithLabelValues("me").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Identity is fixed by the session; everything else is the caller's.
	user.ID = current.ID
	api.auth.UpdateUser(user)

	api.logger.WithField("user_id", user.ID).Info("Profile updated")
	api.metrics.SuccessfulRequests.WithLabelValues("me").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (api *API) GETFeedHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	posts := api.posts.All()
	if posts == nil {
		posts = []model.Post{}
	}

	api.metrics.SuccessfulRequests.WithLabelValues("feed").Inc()
	writeJSON(w, http.StatusOK, FeedResponse{
		Loading: api.posts.Loading(),
		Posts:   posts,
	})
}

func (api *API) GETUserPostsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	userID := mux.Vars(r)["id"]
	posts := api.posts.ByUser(userID)
	if posts == nil {
		posts = []model.Post{}
	}

	api.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"post_count": len(posts),
	}).Info("User posts retrieved successfully")
	api.metrics.SuccessfulRequests.WithLabelValues("user_posts").Inc()
	writeJSON(w, http.StatusOK, posts)
}

func (api *API) POSTPostHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	user, ok := api.sessionUser(r)
	if !ok {
		api.metrics.BadRequests.WithLabelValues("post").Inc()
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.metrics.BadRequests.WithLabelValues("post").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errMsg := validateContent(req.Content); errMsg != "" {
		api.logger.Warn(errMsg)
		api.metrics.BadRequests.WithLabelValues("post").Inc()
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	post := model.Post{
		ID:         "post-" + uuid.NewString(),
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Comments:   []model.Comment{},
	}
	api.posts.AddPost(post)

	api.logger.WithFields(logrus.Fields{
		"post_id": post.ID,
		"user_id": user.ID,
	}).Info("Post created successfully")
	api.metrics.PostsCreated.WithLabelValues("post").Inc()
	api.metrics.SuccessfulRequests.WithLabelValues("post").Inc()
	writeJSON(w, http.StatusCreated, post)
}

func (api *API) POSTCommentHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	user, ok := api.sessionUser(r)
	if !ok {
		api.metrics.BadRequests.WithLabelValues("comment").Inc()
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.metrics.BadRequests.WithLabelValues("comment").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errMsg := validateContent(req.Content); errMsg != "" {
		api.logger.Warn(errMsg)
		api.metrics.BadRequests.WithLabelValues("comment").Inc()
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	postID := mux.Vars(r)["id"]
	comment := model.Comment{
		ID:         "comment-" + uuid.NewString(),
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Content:    req.Content,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	// The store absorbs an unknown id silently; surfacing the miss as a
	// 404 is a facade-level decision.
	if !api.posts.AddComment(postID, comment) {
		api.logger.WithField("post_id", postID).Warn(POST_NOT_FOUND)
		api.metrics.BadRequests.WithLabelValues("comment").Inc()
		writeError(w, http.StatusNotFound, POST_NOT_FOUND)
		return
	}

	api.metrics.CommentsAdded.WithLabelValues("comment").Inc()
	api.metrics.SuccessfulRequests.WithLabelValues("comment").Inc()
	writeJSON(w, http.StatusCreated, comment)
}

func (api *API) POSTLikeHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	postID := mux.Vars(r)["id"]
	if !api.posts.LikePost(postID) {
		api.logger.WithField("post_id", postID).Warn(POST_NOT_FOUND)
		api.metrics.BadRequests.WithLabelValues("like").Inc()
		writeError(w, http.StatusNotFound, POST_NOT_FOUND)
		return
	}

	api.metrics.LikesRecorded.WithLabelValues("like").Inc()
	api.metrics.SuccessfulRequests.WithLabelValues("like").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (api *API) GETNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer api.afterRequestLogging(start, r)

	// Notifications come straight from the seed fixture; nothing creates
	// or marks one read.
	notifications := seed.Notifications()

	api.metrics.SuccessfulRequests.WithLabelValues("notifications").Inc()
	writeJSON(w, http.StatusOK, notifications)
}
