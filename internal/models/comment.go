package models

import "time"

// Comment represents a comment left on a snippet. The snippet
// association is fixed at creation and never changes.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	SnippetID uint      `gorm:"index;not null" json:"snippet_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Snippet Snippet `gorm:"foreignKey:SnippetID" json:"-"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}

// CommentResponse is the response structure for a comment
type CommentResponse struct {
	ID        uint         `json:"id"`
	User      UserResponse `json:"user"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewCommentResponse maps a comment (with its author preloaded) to its
// response view
func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		User:      NewUserResponse(&c.User),
		Message:   c.Message,
		Timestamp: c.Timestamp,
	}
}
