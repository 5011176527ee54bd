package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"izuran/internal/services"
)

// PublicHandler serves the public content API: artists, events,
// podcasts and blog posts
type PublicHandler struct {
	artistService  *services.ArtistService
	eventService   *services.EventService
	contentService *services.ContentService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(
	artistService *services.ArtistService,
	eventService *services.EventService,
	contentService *services.ContentService,
) *PublicHandler {
	return &PublicHandler{
		artistService:  artistService,
		eventService:   eventService,
		contentService: contentService,
	}
}

// ListArtists returns the artist roster
func (h *PublicHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artistService.ListArtists()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list artists")
		return
	}

	respondJSON(w, http.StatusOK, artists)
}

// GetArtist returns a single artist profile
func (h *PublicHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	artist, err := h.artistService.GetArtistBySlug(slug)
	if err != nil {
		respondError(w, statusForError(err), "Artist not found")
		return
	}

	respondJSON(w, http.StatusOK, artist)
}

// ListEvents returns published events with their current price phase
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// GetEvent returns a single event with pricing and matched lineup
func (h *PublicHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.eventService.GetEvent(id, time.Now())
	if err != nil {
		respondError(w, statusForError(err), "Event not found")
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// ListPodcasts returns all podcast episodes
func (h *PublicHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.contentService.ListPodcasts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list podcasts")
		return
	}

	respondJSON(w, http.StatusOK, podcasts)
}

// ListPosts returns all blog posts
func (h *PublicHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.contentService.ListPosts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

// GetPost returns a single blog post
func (h *PublicHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.contentService.GetPost(slug)
	if err != nil {
		respondError(w, statusForError(err), "Post not found")
		return
	}

	respondJSON(w, http.StatusOK, post)
}
