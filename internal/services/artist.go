package services

import (
	"fmt"

	"izuran/internal/models"
)

// ArtistRepository interface for artist roster data
type ArtistRepository interface {
	List() ([]models.Artist, error)
	GetBySlug(slug string) (*models.Artist, error)
}

// ArtistService handles artist roster business logic
type ArtistService struct {
	artistRepo ArtistRepository
}

// NewArtistService creates a new artist service
func NewArtistService(artistRepo ArtistRepository) *ArtistService {
	return &ArtistService{artistRepo: artistRepo}
}

// ListArtists returns the full roster
func (s *ArtistService) ListArtists() ([]models.Artist, error) {
	artists, err := s.artistRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// GetArtistBySlug returns a single artist profile
func (s *ArtistService) GetArtistBySlug(slug string) (*models.Artist, error) {
	artist, err := s.artistRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("artist not found: %w", err)
	}
	return artist, nil
}
