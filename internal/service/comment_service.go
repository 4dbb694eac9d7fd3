package service

import (
	"errors"
	"fmt"

	"github.com/snippets-backend/internal/models"
	"github.com/snippets-backend/internal/repository"
)

var (
	// ErrNotAuthor is returned when a comment mutation is attempted by
	// someone other than its author
	ErrNotAuthor = errors.New("not the author of this comment")
)

// CommentService handles comment operations. The snippet a comment
// belongs to always comes from the URL path, never from the payload.
type CommentService struct {
	commentRepo *repository.CommentRepository
	snippetRepo *repository.SnippetRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo *repository.CommentRepository,
	snippetRepo *repository.SnippetRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		snippetRepo: snippetRepo,
	}
}

// CommentRequest represents the create/update comment request. Only the
// message is client-settable; author and snippet fields in the payload
// are ignored because they are not bound here.
type CommentRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create creates a comment by userID under the snippet at snippetUID
func (s *CommentService) Create(userID uint, snippetUID string, req *CommentRequest) (*models.CommentResponse, error) {
	snippet, err := s.snippetRepo.GetByUID(snippetUID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:    userID,
		SnippetID: snippet.ID,
		Message:   req.Message,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Reload with the author for the response
	created, err := s.commentRepo.GetByIDAndSnippetID(comment.ID, snippet.ID)
	if err != nil {
		return nil, err
	}

	resp := models.NewCommentResponse(created)
	return &resp, nil
}

// Update edits a comment's message. The comment must belong to the
// snippet named in the path and be authored by userID.
func (s *CommentService) Update(userID uint, snippetUID string, commentID uint, req *CommentRequest) (*models.CommentResponse, error) {
	comment, err := s.getScoped(snippetUID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotAuthor
	}

	comment.Message = req.Message
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	resp := models.NewCommentResponse(comment)
	return &resp, nil
}

// Delete deletes a comment authored by userID
func (s *CommentService) Delete(userID uint, snippetUID string, commentID uint) error {
	comment, err := s.getScoped(snippetUID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrNotAuthor
	}
	return s.commentRepo.Delete(comment)
}

// getScoped resolves a comment by id within the snippet named by uid
func (s *CommentService) getScoped(snippetUID string, commentID uint) (*models.Comment, error) {
	snippet, err := s.snippetRepo.GetByUID(snippetUID)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.GetByIDAndSnippetID(commentID, snippet.ID)
}
