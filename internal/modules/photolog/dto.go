package photolog

type InitRequest struct {
	PhotoID  string `json:"photo_id" binding:"required"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type AddCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}

// UpdateRequest carries the editable entry fields; nil means unchanged.
type UpdateRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Category *string `json:"category"`
}
