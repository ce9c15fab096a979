package model

// User is a member of the community. Email is unique across users,
// matched case-insensitively.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// Post carries a snapshot of the author's name and avatar taken at
// creation time. Later profile edits do not resync these fields.
type Post struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  string    `json:"created_at"`
	Likes      int       `json:"likes"`
	Comments   []Comment `json:"comments"`
}

// Comment is immutable once created and lives inside its parent post.
type Comment struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
)

// Notification references the acting user, not the recipient; PostID is
// set only for like and comment notifications.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	UserID     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	UserAvatar string           `json:"user_avatar"`
	Message    string           `json:"message"`
	PostID     *string          `json:"post_id,omitempty"`
	CreatedAt  string           `json:"created_at"`
	Read       bool             `json:"read"`
}
