package lineup

import (
	"regexp"
	"strings"

	"izuran/internal/models"
)

// Entry represents a single parsed performer from a lineup string
type Entry struct {
	RawName         string         `json:"raw_name"`
	Time            string         `json:"time,omitempty"`
	InstagramHandle string         `json:"instagram_handle,omitempty"`
	Matched         *models.Artist `json:"matched_artist,omitempty"`
}

var (
	timePattern   = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)?`)
	handlePattern = regexp.MustCompile(`@[\w.]+`)
)

// Parse splits a free-text lineup string into structured entries, one per
// comma-separated segment, preserving input order. Empty segments are
// dropped. Each segment may carry a set time ("22:00", "9:30 PM") and an
// Instagram handle ("@artist_name"); whatever text remains is the
// performer's display name. An empty or all-whitespace lineup yields an
// empty slice.
func Parse(text string) []Entry {
	if strings.TrimSpace(text) == "" {
		return []Entry{}
	}

	segments := strings.Split(text, ",")
	entries := make([]Entry, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		entries = append(entries, parseSegment(segment))
	}

	return entries
}

// parseSegment extracts the time token, the @handle token and the
// remaining display name from one lineup segment
func parseSegment(segment string) Entry {
	var entry Entry

	if match := timePattern.FindString(segment); match != "" {
		entry.Time = strings.TrimSpace(match)
		segment = strings.Replace(segment, match, "", 1)
	}

	if match := handlePattern.FindString(segment); match != "" {
		entry.InstagramHandle = strings.TrimPrefix(match, "@")
		segment = strings.Replace(segment, match, "", 1)
	}

	// Stray @ characters are typographic noise, not handles
	segment = strings.ReplaceAll(segment, "@", "")
	entry.RawName = strings.TrimSpace(segment)

	return entry
}

// NormalizedName returns the entry name with underscores replaced by
// spaces. Used for matching only, never for display.
func (e Entry) NormalizedName() string {
	return strings.ReplaceAll(e.RawName, "_", " ")
}
