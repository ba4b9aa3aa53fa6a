package domain

import "time"

const (
	DefaultPhotoCategory = "General"
	DefaultCommentAuthor = "Anonymous"

	MaxCommentTextLen   = 500
	MaxCommentAuthorLen = 50
)

// PhotoEntry is a likeable, commentable media item keyed by a caller-supplied
// photo ID. Likes never go below zero.
type PhotoEntry struct {
	ID        int64     `json:"-"`
	PhotoID   string    `json:"photo_id" validate:"required"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Likes     int64     `json:"likes"`
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoEntrySummary is the listing shape: comment bodies are replaced by a count.
type PhotoEntrySummary struct {
	PhotoID      string    `json:"photo_id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Category     string    `json:"category"`
	Likes        int64     `json:"likes"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Comment belongs to exactly one PhotoEntry and is removed with it.
type Comment struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"-"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
