package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogem/linkedin-agent/generator"
	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/publisher"
	"github.com/blogem/linkedin-agent/repositories"
)

// PostService drafts a post for a stored identity and publishes it
type PostService interface {
	CreatePost(ctx context.Context, form *models.PostForm) (*models.PublishedPost, error)
}

type postService struct {
	users     repositories.UserRepository
	generator generator.Generator
	publisher publisher.Publisher
	logger    *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(users repositories.UserRepository, gen generator.Generator, pub publisher.Publisher, logger *slog.Logger) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		users:     users,
		generator: gen,
		publisher: pub,
		logger:    logger.With("component", "posts"),
	}
}

// Persona frames the generation request for the member a post is written for
func Persona(displayName string) string {
	if displayName == "" {
		displayName = "a LinkedIn member"
	}
	return fmt.Sprintf("You are a LinkedIn thought leader writing on behalf of %s. "+
		"Write one engaging LinkedIn post in the first person, under 1300 characters, "+
		"ending with 3 to 5 relevant hashtags. Reply with the post text only.", displayName)
}

// CreatePost generates text for the identity's prompt and publishes it as that identity
func (s *postService) CreatePost(ctx context.Context, form *models.PostForm) (*models.PublishedPost, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	user, err := s.users.GetByID(ctx, form.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasAccessToken() {
		return nil, fmt.Errorf("user identity %d: %w", user.ID, models.ErrMissingToken)
	}

	text, err := s.generator.Generate(ctx, form.Prompt, Persona(user.DisplayName))
	if err != nil {
		s.logger.Warn("generation failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	id, err := s.publisher.Publish(ctx, user.AccessToken, publisher.PersonURN(user.ExternalID), text)
	if err != nil {
		s.logger.Warn("publish failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("post published", "user_id", user.ID, "post_id", id)
	return &models.PublishedPost{ID: id, Text: text}, nil
}
