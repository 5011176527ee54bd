package repositories

import (
	"fmt"
	"sort"
	"strings"

	"izuran/internal/models"
)

// ContentRepository serves podcasts and blog posts
type ContentRepository struct {
	podcasts []models.Podcast
	posts    []models.Post
}

// NewContentRepository loads podcasts.json and posts.json from the data
// directory
func NewContentRepository(dataDir string) (*ContentRepository, error) {
	repo := &ContentRepository{}

	if err := loadJSON(dataDir, "podcasts.json", &repo.podcasts); err != nil {
		return nil, fmt.Errorf("failed to load podcasts: %w", err)
	}
	if err := loadJSON(dataDir, "posts.json", &repo.posts); err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	return repo, nil
}

// ListPodcasts returns all podcast episodes, newest first
func (r *ContentRepository) ListPodcasts() ([]models.Podcast, error) {
	podcasts := make([]models.Podcast, len(r.podcasts))
	copy(podcasts, r.podcasts)

	sort.Slice(podcasts, func(i, j int) bool {
		return podcasts[i].PublishedAt.After(podcasts[j].PublishedAt)
	})

	return podcasts, nil
}

// ListPosts returns all blog posts, newest first
func (r *ContentRepository) ListPosts() ([]models.Post, error) {
	posts := make([]models.Post, len(r.posts))
	copy(posts, r.posts)

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})

	return posts, nil
}

// GetPostBySlug returns the blog post with the given slug
func (r *ContentRepository) GetPostBySlug(slug string) (*models.Post, error) {
	for i := range r.posts {
		if strings.EqualFold(r.posts[i].Slug, slug) {
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", slug, models.ErrNotFound)
}
