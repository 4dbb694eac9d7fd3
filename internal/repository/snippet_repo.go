package repository

import (
	"errors"

	"github.com/snippets-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSnippetNotFound = errors.New("snippet not found")
)

// SnippetRepository handles snippet data access
type SnippetRepository struct {
	db *gorm.DB
}

// NewSnippetRepository creates a new SnippetRepository
func NewSnippetRepository(db *gorm.DB) *SnippetRepository {
	return &SnippetRepository{db: db}
}

// Create creates a new snippet
func (r *SnippetRepository) Create(snippet *models.Snippet) error {
	return r.db.Create(snippet).Error
}

// GetByUID retrieves a snippet by its public uid, with the owner and
// comment authors preloaded
func (r *SnippetRepository) GetByUID(uid string) (*models.Snippet, error) {
	var snippet models.Snippet
	result := r.db.
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("uid = ?", uid).
		First(&snippet)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSnippetNotFound
		}
		return nil, result.Error
	}
	return &snippet, nil
}

// ListPublic retrieves all non-secret snippets, newest first
func (r *SnippetRepository) ListPublic() ([]models.Snippet, error) {
	var snippets []models.Snippet
	result := r.db.
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("secret = ?", false).
		Order("created_on DESC").
		Find(&snippets)
	if result.Error != nil {
		return nil, result.Error
	}
	return snippets, nil
}

// ListByUser retrieves a user's snippets, newest first. Secret snippets
// are included only when includeSecret is set.
func (r *SnippetRepository) ListByUser(userID uint, includeSecret bool) ([]models.Snippet, error) {
	var snippets []models.Snippet
	query := r.db.
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("user_id = ?", userID)
	if !includeSecret {
		query = query.Where("secret = ?", false)
	}
	result := query.Order("created_on DESC").Find(&snippets)
	if result.Error != nil {
		return nil, result.Error
	}
	return snippets, nil
}

// Update persists changes to a snippet
func (r *SnippetRepository) Update(snippet *models.Snippet) error {
	return r.db.Save(snippet).Error
}

// Delete deletes a snippet
func (r *SnippetRepository) Delete(snippet *models.Snippet) error {
	return r.db.Delete(snippet).Error
}
