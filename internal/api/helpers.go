package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"agora/internal/model"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type FeedResponse struct {
	Loading bool         `json:"loading"`
	Posts   []model.Post `json:"posts"`
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateRegistration performs the form checks the stores leave to
// their callers. Returns an empty string when the input is acceptable.
func validateRegistration(req RegisterRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "You have to enter a name"
	} else if req.Email == "" || !emailRe.MatchString(req.Email) {
		return "You have to enter a valid email address"
	} else if req.Password == "" {
		return "You have to enter a password"
	} else if len(req.Password) < 6 {
		return "The password must be at least 6 characters"
	} else if req.Password2 != "" && req.Password != req.Password2 {
		return "The two passwords do not match"
	}
	return ""
}

func validateContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return "You have to enter some content"
	} else if len([]rune(content)) > MAX_CONTENT_LENGTH {
		return fmt.Sprintf("Content must be at most %d characters", MAX_CONTENT_LENGTH)
	}
	return ""
}

func (api *API) saveSession(w http.ResponseWriter, r *http.Request, userID string) {
	session, _ := api.sessions.Get(r, sessionName)
	session.Values["user_id"] = userID
	if err := session.Save(r, w); err != nil {
		api.logger.WithError(err).Error("Failed to save session")
	}
}

// sessionUser resolves the request's session to the signed-in user. The
// store holds a single current user, so the session only gates access;
// the user snapshot comes from the auth store.
func (api *API) sessionUser(r *http.Request) (model.User, bool) {
	session, err := api.sessions.Get(r, sessionName)
	if err != nil {
		return model.User{}, false
	}
	id, ok := session.Values["user_id"].(string)
	if !ok || id == "" {
		return model.User{}, false
	}
	user, ok := api.auth.CurrentUser()
	if !ok || user.ID != id {
		return model.User{}, false
	}
	return user, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Print(err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    status,
		"error_msg": msg,
	})
	if err != nil {
		fmt.Print(err.Error())
	}
}
