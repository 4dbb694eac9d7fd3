package models

// Star is the stargazers join between users and snippets. The composite
// primary key is the uniqueness constraint that keeps concurrent star
// requests from creating duplicate membership.
type Star struct {
	SnippetID uint `gorm:"primaryKey" json:"snippet_id"`
	UserID    uint `gorm:"primaryKey" json:"user_id"`
}

// TableName specifies the table name for Star model
func (Star) TableName() string {
	return "snippet_stars"
}
