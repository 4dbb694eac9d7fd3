package service

import (
	"github.com/snippets-backend/internal/models"
	"github.com/snippets-backend/internal/repository"
)

// ProfileService builds user profile views
type ProfileService struct {
	userRepo       *repository.UserRepository
	snippetRepo    *repository.SnippetRepository
	starRepo       *repository.StarRepository
	snippetService *SnippetService
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo *repository.UserRepository,
	snippetRepo *repository.SnippetRepository,
	starRepo *repository.StarRepository,
	snippetService *SnippetService,
) *ProfileService {
	return &ProfileService{
		userRepo:       userRepo,
		snippetRepo:    snippetRepo,
		starRepo:       starRepo,
		snippetService: snippetService,
	}
}

// Profile returns a user's profile with their snippet list. Owners see
// their secret snippets; everyone else sees only public ones.
func (s *ProfileService) Profile(username string, viewerID uint) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	includeSecret := viewerID != 0 && viewerID == user.ID
	snippets, err := s.snippetRepo.ListByUser(user.ID, includeSecret)
	if err != nil {
		return nil, err
	}

	snippetResponses := make([]models.SnippetResponse, len(snippets))
	for i := range snippets {
		resp, err := s.snippetService.BuildResponse(&snippets[i], viewerID)
		if err != nil {
			return nil, err
		}
		snippetResponses[i] = *resp
	}

	starsReceived, err := s.starRepo.CountReceivedByUser(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		ID:              user.ID,
		Username:        user.Username,
		ProfilePicture:  user.ProfilePicture,
		StargazersCount: starsReceived,
		Snippets:        snippetResponses,
	}, nil
}
