package repository

import (
	"errors"

	"github.com/snippets-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAlreadyStarred = errors.New("snippet already starred")
	ErrNotStarred     = errors.New("snippet not starred")
)

// StarRepository handles the stargazers relation between users and
// snippets
type StarRepository struct {
	db *gorm.DB
}

// NewStarRepository creates a new StarRepository
func NewStarRepository(db *gorm.DB) *StarRepository {
	return &StarRepository{db: db}
}

// Add stars a snippet for a user. This is a single conditional insert:
// the composite primary key rejects duplicates at the store, so two
// concurrent star requests cannot both succeed.
func (r *StarRepository) Add(snippetID, userID uint) error {
	star := &models.Star{SnippetID: snippetID, UserID: userID}
	err := r.db.Create(star).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyStarred
		}
		return err
	}
	return nil
}

// Remove unstars a snippet for a user. A delete that touches no rows
// means the pair was never starred.
func (r *StarRepository) Remove(snippetID, userID uint) error {
	result := r.db.
		Where("snippet_id = ? AND user_id = ?", snippetID, userID).
		Delete(&models.Star{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotStarred
	}
	return nil
}

// Exists reports whether a user has starred a snippet
func (r *StarRepository) Exists(snippetID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Star{}).
		Where("snippet_id = ? AND user_id = ?", snippetID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountBySnippet counts the stargazers of a snippet
func (r *StarRepository) CountBySnippet(snippetID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Star{}).
		Where("snippet_id = ?", snippetID).
		Count(&count).Error
	return count, err
}

// CountReceivedByUser counts the stars received across all snippets
// owned by a user
func (r *StarRepository) CountReceivedByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Star{}).
		Joins("JOIN snippets ON snippets.id = snippet_stars.snippet_id").
		Where("snippets.user_id = ?", userID).
		Count(&count).Error
	return count, err
}
