package repositories

import (
	"fmt"
	"strings"

	"izuran/internal/models"
)

// ArtistRepository serves the artist roster
type ArtistRepository struct {
	artists []models.Artist
}

// NewArtistRepository loads the artist roster from artists.json in the
// data directory
func NewArtistRepository(dataDir string) (*ArtistRepository, error) {
	var artists []models.Artist
	if err := loadJSON(dataDir, "artists.json", &artists); err != nil {
		return nil, fmt.Errorf("failed to load artists: %w", err)
	}

	return &ArtistRepository{artists: artists}, nil
}

// List returns all roster artists
func (r *ArtistRepository) List() ([]models.Artist, error) {
	artists := make([]models.Artist, len(r.artists))
	copy(artists, r.artists)
	return artists, nil
}

// GetBySlug returns the artist with the given slug
func (r *ArtistRepository) GetBySlug(slug string) (*models.Artist, error) {
	for i := range r.artists {
		if strings.EqualFold(r.artists[i].Slug, slug) {
			artist := r.artists[i]
			return &artist, nil
		}
	}
	return nil, fmt.Errorf("artist %q: %w", slug, models.ErrNotFound)
}
