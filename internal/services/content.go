package services

import (
	"fmt"

	"izuran/internal/models"
)

// ContentRepository interface for podcast and blog data
type ContentRepository interface {
	ListPodcasts() ([]models.Podcast, error)
	ListPosts() ([]models.Post, error)
	GetPostBySlug(slug string) (*models.Post, error)
}

// ContentService handles podcast and knowledge-base content
type ContentService struct {
	contentRepo ContentRepository
}

// NewContentService creates a new content service
func NewContentService(contentRepo ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// ListPodcasts returns all podcast episodes
func (s *ContentService) ListPodcasts() ([]models.Podcast, error) {
	podcasts, err := s.contentRepo.ListPodcasts()
	if err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}
	return podcasts, nil
}

// ListPosts returns all blog posts
func (s *ContentService) ListPosts() ([]models.Post, error) {
	posts, err := s.contentRepo.ListPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a single blog post
func (s *ContentService) GetPost(slug string) (*models.Post, error) {
	post, err := s.contentRepo.GetPostBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}
	return post, nil
}
