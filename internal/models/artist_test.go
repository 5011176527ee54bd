package models

import (
	"testing"
)

func TestArtist_Validate(t *testing.T) {
	tests := []struct {
		name    string
		artist  Artist
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid artist",
			artist: Artist{
				Name: "XianZai",
				Slug: "xianzai",
			},
			wantErr: false,
		},
		{
			name: "invalid name - empty",
			artist: Artist{
				Name: "",
				Slug: "xianzai",
			},
			wantErr: true,
			errMsg:  "artist name is required",
		},
		{
			name: "invalid name - whitespace only",
			artist: Artist{
				Name: "   ",
				Slug: "xianzai",
			},
			wantErr: true,
			errMsg:  "artist name cannot be only whitespace",
		},
		{
			name: "invalid slug - empty",
			artist: Artist{
				Name: "XianZai",
				Slug: "",
			},
			wantErr: true,
			errMsg:  "artist slug is required",
		},
		{
			name: "invalid slug - uppercase",
			artist: Artist{
				Name: "XianZai",
				Slug: "XianZai",
			},
			wantErr: true,
			errMsg:  "artist slug must be lowercase",
		},
		{
			name: "invalid slug - whitespace",
			artist: Artist{
				Name: "XianZai",
				Slug: "xian zai",
			},
			wantErr: true,
			errMsg:  "artist slug cannot contain whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.artist.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Artist.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Artist.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestArtist_InstagramHandle(t *testing.T) {
	tests := []struct {
		name      string
		instagram string
		want      string
	}{
		{
			name:      "full URL with www and trailing slash",
			instagram: "https://www.instagram.com/xianzai.wav/",
			want:      "xianzai.wav",
		},
		{
			name:      "full URL without www",
			instagram: "https://instagram.com/mthreal",
			want:      "mthreal",
		},
		{
			name:      "http URL",
			instagram: "http://instagram.com/dardisku/",
			want:      "dardisku",
		},
		{
			name:      "bare handle with at sign",
			instagram: "@xianzai.wav",
			want:      "xianzai.wav",
		},
		{
			name:      "bare handle",
			instagram: "xianzai.wav",
			want:      "xianzai.wav",
		},
		{
			name:      "not set",
			instagram: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Artist{Instagram: tt.instagram}
			if got := a.InstagramHandle(); got != tt.want {
				t.Errorf("Artist.InstagramHandle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtist_HasSocialLinks(t *testing.T) {
	a := Artist{Name: "XianZai", Slug: "xianzai"}
	if a.HasSocialLinks() {
		t.Error("Artist.HasSocialLinks() = true for artist without links")
	}

	a.Linktree = "https://linktr.ee/xianzai"
	if !a.HasSocialLinks() {
		t.Error("Artist.HasSocialLinks() = false for artist with a linktree")
	}
}
