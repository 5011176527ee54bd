package lineup

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"izuran/internal/models"
)

// matchRule reports whether an entry resolves to an artist. Rules are
// evaluated in priority order with early exit on first match.
type matchRule func(e Entry, a models.Artist) bool

// matchRules in priority order. The order is part of the contract:
// a handle match always beats a name match, an exact name match always
// beats a substring match.
var matchRules = []matchRule{
	matchByHandle,
	matchByExactName,
	matchBySubstring,
	matchBySlug,
	matchByAllCaps,
}

// MatchArtists resolves each parsed entry against the artist roster,
// setting Matched on entries that resolve. Unmatched entries are left
// untouched so callers can fall back to a generic display.
func MatchArtists(entries []Entry, artists []models.Artist) {
	for i := range entries {
		entries[i].Matched = MatchArtist(entries[i], artists)
	}
}

// MatchArtist finds the first artist matching the entry, or nil
func MatchArtist(entry Entry, artists []models.Artist) *models.Artist {
	for _, rule := range matchRules {
		for i := range artists {
			if rule(entry, artists[i]) {
				return &artists[i]
			}
		}
	}
	return nil
}

// matchByHandle matches the entry's parsed @handle against the artist's
// stored Instagram link
func matchByHandle(e Entry, a models.Artist) bool {
	if e.InstagramHandle == "" {
		return false
	}

	artistHandle := strings.ToLower(a.InstagramHandle())
	if artistHandle == "" {
		return false
	}

	handle := strings.ToLower(e.InstagramHandle)
	return artistHandle == handle || strings.Contains(artistHandle, handle)
}

// matchByExactName matches the artist's name or slug exactly against the
// raw or normalized entry name
func matchByExactName(e Entry, a models.Artist) bool {
	raw := strings.ToLower(e.RawName)
	normalized := strings.ToLower(e.NormalizedName())
	if raw == "" {
		return false
	}

	name := strings.ToLower(stripAccents(a.Name))
	slug := strings.ToLower(a.Slug)

	return name == raw || name == normalized ||
		(slug != "" && (slug == raw || slug == normalized))
}

// matchBySubstring matches when the artist's cleaned name contains, or is
// contained by, the entry name
func matchBySubstring(e Entry, a models.Artist) bool {
	raw := strings.ToLower(e.RawName)
	normalized := strings.ToLower(e.NormalizedName())
	if raw == "" {
		return false
	}

	name := strings.ToLower(stripAccents(a.Name))
	if name == "" {
		return false
	}

	return strings.Contains(name, raw) || strings.Contains(raw, name) ||
		strings.Contains(name, normalized) || strings.Contains(normalized, name)
}

// matchBySlug matches the artist's slug with dashes and underscores
// removed against the entry name with dots and underscores removed
func matchBySlug(e Entry, a models.Artist) bool {
	if a.Slug == "" || e.RawName == "" {
		return false
	}

	slug := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(a.Slug))
	name := strings.NewReplacer(".", "", "_", "").Replace(strings.ToLower(e.RawName))
	if slug == "" || name == "" {
		return false
	}

	return slug == name || strings.Contains(slug, name) || strings.Contains(name, slug)
}

// matchByAllCaps handles entries written entirely in uppercase: both
// sides are uppercased and stripped of non-alphanumerics, then tested
// for containment either direction
func matchByAllCaps(e Entry, a models.Artist) bool {
	if e.RawName == "" || e.RawName != strings.ToUpper(e.RawName) {
		return false
	}

	entryName := stripNonAlphanumeric(e.RawName)
	artistName := stripNonAlphanumeric(strings.ToUpper(stripAccents(a.Name)))
	if entryName == "" || artistName == "" {
		return false
	}

	return strings.Contains(artistName, entryName) || strings.Contains(entryName, artistName)
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripAccents removes combining marks from accented characters, so
// "Müller" matches a lineup entry written "Muller"
func stripAccents(s string) string {
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return stripped
}

// stripNonAlphanumeric removes everything but letters and digits
func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
