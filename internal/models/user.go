package models

import "time"

// User represents a registered user
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	ProfilePicture string    `gorm:"size:188" json:"profile_picture"`
	DateJoined     time.Time `gorm:"autoCreateTime" json:"date_joined"`

	// Relations
	Snippets []Snippet `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"snippets,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Stars    []Star    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserResponse is the public view of a user. The password hash never
// leaves the server.
type UserResponse struct {
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture"`
	DateJoined     time.Time `json:"date_joined"`
}

// NewUserResponse maps a user to its public view
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		DateJoined:     u.DateJoined,
	}
}

// ProfileResponse is the aggregated profile view: the user's public
// fields, the total stars received across their snippets, and their
// snippet list filtered by the viewer's visibility.
type ProfileResponse struct {
	ID              uint              `json:"id"`
	Username        string            `json:"username"`
	ProfilePicture  string            `json:"profile_picture"`
	StargazersCount int64             `json:"stargazers_count"`
	Snippets        []SnippetResponse `json:"snippets"`
}
