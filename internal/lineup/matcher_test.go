package lineup

import (
	"testing"

	"izuran/internal/models"
)

func roster() []models.Artist {
	return []models.Artist{
		{
			ID:        "a1",
			Name:      "XianZai",
			Slug:      "xianzai",
			Instagram: "https://instagram.com/xianzai_music",
		},
		{
			ID:   "a2",
			Name: "Müller",
			Slug: "mueller",
		},
		{
			ID:   "a3",
			Name: "Dark Matter",
			Slug: "dark-matter",
		},
		{
			ID:   "a4",
			Name: "Void Signal",
			Slug: "void-signal",
		},
	}
}

func TestMatchArtist_ByHandle(t *testing.T) {
	// Handle match resolves even when no name text is present
	entries := Parse("@xianzai_music")
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(entries))
	}

	matched := MatchArtist(entries[0], roster())
	if matched == nil {
		t.Fatal("MatchArtist() = nil, want XianZai")
	}
	if matched.ID != "a1" {
		t.Errorf("MatchArtist() matched %q, want a1", matched.ID)
	}
}

func TestMatchArtist_HandleBeatsName(t *testing.T) {
	// When both a handle and a name are present and point at different
	// artists, the handle wins
	entry := Entry{RawName: "Dark Matter", InstagramHandle: "xianzai_music"}

	matched := MatchArtist(entry, roster())
	if matched == nil || matched.ID != "a1" {
		t.Errorf("MatchArtist() = %v, want handle match a1", matched)
	}
}

func TestMatchArtist_ExactName(t *testing.T) {
	tests := []struct {
		name   string
		entry  Entry
		wantID string
	}{
		{
			name:   "exact name case-insensitive",
			entry:  Entry{RawName: "xianzai"},
			wantID: "a1",
		},
		{
			name:   "accented artist name matches unaccented entry",
			entry:  Entry{RawName: "muller"},
			wantID: "a2",
		},
		{
			name:   "slug match",
			entry:  Entry{RawName: "mueller"},
			wantID: "a2",
		},
		{
			name:   "underscore normalized name",
			entry:  Entry{RawName: "dark_matter"},
			wantID: "a3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := MatchArtist(tt.entry, roster())
			if matched == nil {
				t.Fatalf("MatchArtist(%+v) = nil, want %s", tt.entry, tt.wantID)
			}
			if matched.ID != tt.wantID {
				t.Errorf("MatchArtist() matched %q, want %q", matched.ID, tt.wantID)
			}
		})
	}
}

func TestMatchArtist_Substring(t *testing.T) {
	// "Dark Matter DJ set" contains the artist name
	matched := MatchArtist(Entry{RawName: "dark matter dj set"}, roster())
	if matched == nil || matched.ID != "a3" {
		t.Errorf("MatchArtist() = %v, want substring match a3", matched)
	}
}

func TestMatchArtist_SlugNormalized(t *testing.T) {
	// Entry written as a social-style handle name: dots and underscores
	// removed, matched against the slug with dashes removed
	matched := MatchArtist(Entry{RawName: "dark.matter"}, roster())
	if matched == nil || matched.ID != "a3" {
		t.Errorf("MatchArtist() = %v, want slug-normalized match a3", matched)
	}
}

func TestMatchArtist_AllCaps(t *testing.T) {
	// "VOID-SIGNAL" survives none of the earlier rules: the dash blocks
	// exact, substring and slug matching, so only the uppercase
	// alphanumeric comparison resolves it
	matched := MatchArtist(Entry{RawName: "VOID-SIGNAL"}, roster())
	if matched == nil || matched.ID != "a4" {
		t.Errorf("MatchArtist() = %v, want all-caps match a4", matched)
	}
}

func TestMatchArtist_NoMatch(t *testing.T) {
	matched := MatchArtist(Entry{RawName: "Unknown Guest"}, roster())
	if matched != nil {
		t.Errorf("MatchArtist() = %v, want nil", matched)
	}
}

func TestMatchArtist_EmptyEntry(t *testing.T) {
	// An entry with no name and no handle must never match (an empty
	// string is a substring of everything, so this guards the substring
	// rule specifically)
	matched := MatchArtist(Entry{}, roster())
	if matched != nil {
		t.Errorf("MatchArtist() = %v, want nil for empty entry", matched)
	}
}

func TestMatchArtist_MissingOptionalFields(t *testing.T) {
	// Artists without instagram or slug must not panic or false-match
	artists := []models.Artist{{ID: "b1", Name: "Bare Artist"}}

	entry := Entry{RawName: "someone else", InstagramHandle: "someone_else"}
	if matched := MatchArtist(entry, artists); matched != nil {
		t.Errorf("MatchArtist() = %v, want nil", matched)
	}

	if matched := MatchArtist(Entry{RawName: "bare artist"}, artists); matched == nil {
		t.Error("MatchArtist() = nil, want name match despite missing optional fields")
	}
}

func TestMatchArtists_SetsMatchedInPlace(t *testing.T) {
	entries := Parse("xianzai, Unknown Guest, @xianzai_music")
	MatchArtists(entries, roster())

	if entries[0].Matched == nil || entries[0].Matched.ID != "a1" {
		t.Errorf("entry 0 Matched = %v, want a1", entries[0].Matched)
	}
	if entries[1].Matched != nil {
		t.Errorf("entry 1 Matched = %v, want nil", entries[1].Matched)
	}
	if entries[2].Matched == nil || entries[2].Matched.ID != "a1" {
		t.Errorf("entry 2 Matched = %v, want a1", entries[2].Matched)
	}
}
