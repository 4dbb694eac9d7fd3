package models

import "time"

// Snippet represents a shared text snippet. UID is the public
// identifier used in URLs; the numeric primary key stays internal.
type Snippet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UID         string    `gorm:"uniqueIndex;size:150;not null" json:"uid"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"size:150" json:"name"`
	Description string    `gorm:"size:160" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Secret      bool      `gorm:"default:false" json:"secret"`
	CreatedOn   time.Time `gorm:"autoCreateTime;index" json:"created_on"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:SnippetID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Stars    []Star    `gorm:"foreignKey:SnippetID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Snippet model
func (Snippet) TableName() string {
	return "snippets"
}

// SnippetResponse is the response structure for a snippet, built for a
// specific viewer (IsStarred is always false for anonymous viewers).
type SnippetResponse struct {
	User            UserResponse      `json:"user"`
	UID             string            `json:"uid"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Content         string            `json:"content"`
	Secret          bool              `json:"secret"`
	StargazersCount int64             `json:"stargazers_count"`
	IsStarred       bool              `json:"is_starred"`
	Comments        []CommentResponse `json:"comments"`
	CreatedOn       time.Time         `json:"created_on"`
	LastUpdated     time.Time         `json:"last_updated"`
}
