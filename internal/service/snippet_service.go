package service

import (
	"errors"
	"fmt"

	"github.com/snippets-backend/internal/models"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/pkg/keygen"
	"gorm.io/gorm"
)

var (
	// ErrNotOwner is returned when a mutation is attempted by someone
	// other than the resource owner
	ErrNotOwner = errors.New("not the owner of this resource")
)

// uidCreateAttempts bounds retries when a generated uid collides with
// an existing one
const uidCreateAttempts = 3

// SnippetService handles snippet operations. Responses are built for a
// specific viewer: viewerID 0 means anonymous.
type SnippetService struct {
	snippetRepo *repository.SnippetRepository
	starRepo    *repository.StarRepository
}

// NewSnippetService creates a new SnippetService
func NewSnippetService(
	snippetRepo *repository.SnippetRepository,
	starRepo *repository.StarRepository,
) *SnippetService {
	return &SnippetService{
		snippetRepo: snippetRepo,
		starRepo:    starRepo,
	}
}

// CreateSnippetRequest represents the create snippet request. The uid
// and owner are server-assigned; any such fields in the payload are
// ignored because they are not bound here.
type CreateSnippetRequest struct {
	Name        string `json:"name" binding:"max=150"`
	Description string `json:"description" binding:"max=160"`
	Content     string `json:"content" binding:"required"`
	Secret      bool   `json:"secret"`
}

// UpdateSnippetRequest represents the update snippet request. Absent
// fields are left unchanged, so PUT and PATCH share the same shape.
type UpdateSnippetRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Description *string `json:"description" binding:"omitempty,max=160"`
	Content     *string `json:"content"`
	Secret      *bool   `json:"secret"`
}

// Create creates a snippet owned by the given user
func (s *SnippetService) Create(userID uint, req *CreateSnippetRequest) (*models.SnippetResponse, error) {
	var snippet *models.Snippet
	for attempt := 0; attempt < uidCreateAttempts; attempt++ {
		uid, err := keygen.GenerateSnippetUID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate uid: %w", err)
		}

		snippet = &models.Snippet{
			UID:         uid,
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
			Content:     req.Content,
			Secret:      req.Secret,
		}

		err = s.snippetRepo.Create(snippet)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < uidCreateAttempts-1 {
			continue
		}
		return nil, fmt.Errorf("failed to create snippet: %w", err)
	}

	// Reload with owner and comments for the response
	created, err := s.snippetRepo.GetByUID(snippet.UID)
	if err != nil {
		return nil, err
	}
	return s.BuildResponse(created, userID)
}

// List returns all non-secret snippets, newest first
func (s *SnippetService) List(viewerID uint) ([]models.SnippetResponse, error) {
	snippets, err := s.snippetRepo.ListPublic()
	if err != nil {
		return nil, err
	}
	return s.buildResponses(snippets, viewerID)
}

// Get retrieves a single snippet by uid. Secrecy is deliberately not
// checked here: a secret snippet is hidden from listings, not from
// anyone holding its uid.
func (s *SnippetService) Get(uid string, viewerID uint) (*models.SnippetResponse, error) {
	snippet, err := s.snippetRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	return s.BuildResponse(snippet, viewerID)
}

// Update applies a partial update to a snippet owned by userID
func (s *SnippetService) Update(userID uint, uid string, req *UpdateSnippetRequest) (*models.SnippetResponse, error) {
	snippet, err := s.snippetRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if snippet.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		snippet.Name = *req.Name
	}
	if req.Description != nil {
		snippet.Description = *req.Description
	}
	if req.Content != nil {
		snippet.Content = *req.Content
	}
	if req.Secret != nil {
		snippet.Secret = *req.Secret
	}

	if err := s.snippetRepo.Update(snippet); err != nil {
		return nil, fmt.Errorf("failed to update snippet: %w", err)
	}

	return s.BuildResponse(snippet, userID)
}

// Delete deletes a snippet owned by userID
func (s *SnippetService) Delete(userID uint, uid string) error {
	snippet, err := s.snippetRepo.GetByUID(uid)
	if err != nil {
		return err
	}
	if snippet.UserID != userID {
		return ErrNotOwner
	}
	return s.snippetRepo.Delete(snippet)
}

// Star stars a snippet for a user. Conflicts surface from the store's
// uniqueness constraint, never from a check-then-act read.
func (s *SnippetService) Star(userID uint, uid string) error {
	snippet, err := s.snippetRepo.GetByUID(uid)
	if err != nil {
		return err
	}
	return s.starRepo.Add(snippet.ID, userID)
}

// Unstar removes a user's star from a snippet
func (s *SnippetService) Unstar(userID uint, uid string) error {
	snippet, err := s.snippetRepo.GetByUID(uid)
	if err != nil {
		return err
	}
	return s.starRepo.Remove(snippet.ID, userID)
}

// BuildResponse maps a snippet (with owner and comments preloaded) to
// its response view for the given viewer
func (s *SnippetService) BuildResponse(snippet *models.Snippet, viewerID uint) (*models.SnippetResponse, error) {
	count, err := s.starRepo.CountBySnippet(snippet.ID)
	if err != nil {
		return nil, err
	}

	isStarred := false
	if viewerID != 0 {
		isStarred, err = s.starRepo.Exists(snippet.ID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	comments := make([]models.CommentResponse, len(snippet.Comments))
	for i := range snippet.Comments {
		comments[i] = models.NewCommentResponse(&snippet.Comments[i])
	}

	return &models.SnippetResponse{
		User:            models.NewUserResponse(&snippet.User),
		UID:             snippet.UID,
		Name:            snippet.Name,
		Description:     snippet.Description,
		Content:         snippet.Content,
		Secret:          snippet.Secret,
		StargazersCount: count,
		IsStarred:       isStarred,
		Comments:        comments,
		CreatedOn:       snippet.CreatedOn,
		LastUpdated:     snippet.LastUpdated,
	}, nil
}

func (s *SnippetService) buildResponses(snippets []models.Snippet, viewerID uint) ([]models.SnippetResponse, error) {
	responses := make([]models.SnippetResponse, len(snippets))
	for i := range snippets {
		resp, err := s.BuildResponse(&snippets[i], viewerID)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}
