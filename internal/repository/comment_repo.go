package repository

import (
	"errors"

	"github.com/snippets-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByIDAndSnippetID retrieves a comment by id, scoped to a snippet.
// A comment id belonging to a different snippet is a not-found, which
// blocks cross-snippet mutation via guessed ids.
func (r *CommentRepository) GetByIDAndSnippetID(id, snippetID uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.
		Preload("User").
		Where("id = ? AND snippet_id = ?", id, snippetID).
		First(&comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}
	return &comment, nil
}

// Update persists changes to a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete deletes a comment
func (r *CommentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
