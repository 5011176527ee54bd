package models

import (
	"errors"
	"regexp"
	"strings"
)

// Artist represents a roster artist on the label
type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Bio        string `json:"bio,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	Soundcloud string `json:"soundcloud,omitempty"`
	Bandcamp   string `json:"bandcamp,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Linktree   string `json:"linktree,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

var instagramPrefix = regexp.MustCompile(`^https?://(www\.)?instagram\.com/`)

// Validate validates the artist data
func (a *Artist) Validate() error {
	if err := validateArtistName(a.Name); err != nil {
		return err
	}

	if err := validateArtistSlug(a.Slug); err != nil {
		return err
	}

	return nil
}

// validateArtistName validates an artist name
func validateArtistName(name string) error {
	if name == "" {
		return errors.New("artist name is required")
	}

	if len(name) > 255 {
		return errors.New("artist name must be less than 255 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("artist name cannot be only whitespace")
	}

	return nil
}

// validateArtistSlug validates an artist slug
func validateArtistSlug(slug string) error {
	if slug == "" {
		return errors.New("artist slug is required")
	}

	if strings.ToLower(slug) != slug {
		return errors.New("artist slug must be lowercase")
	}

	if strings.ContainsAny(slug, " \t\n") {
		return errors.New("artist slug cannot contain whitespace")
	}

	return nil
}

// InstagramHandle returns the bare Instagram handle for the artist,
// stripping any instagram.com URL prefix and trailing slash. Returns an
// empty string when no Instagram link is set.
func (a *Artist) InstagramHandle() string {
	if a.Instagram == "" {
		return ""
	}

	handle := instagramPrefix.ReplaceAllString(a.Instagram, "")
	handle = strings.TrimSuffix(handle, "/")
	handle = strings.TrimPrefix(handle, "@")

	return handle
}

// HasSocialLinks returns true if the artist has at least one social link
func (a *Artist) HasSocialLinks() bool {
	return a.Instagram != "" ||
		a.Soundcloud != "" ||
		a.Bandcamp != "" ||
		a.Facebook != "" ||
		a.Linktree != ""
}

// HasImage returns true if the artist has a profile image
func (a *Artist) HasImage() bool {
	return a.ImageURL != ""
}
