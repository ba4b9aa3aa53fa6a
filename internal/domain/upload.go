package domain

import "time"

// Upload is a physical file stored on the local filesystem and served under
// the static /uploads prefix.
type Upload struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"-"`   // relative disk path
	FileURL      string    `json:"url"` // public HTTP URL
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
