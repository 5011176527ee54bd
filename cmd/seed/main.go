package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"izuran/internal/config"
	"izuran/internal/models"
)

// Writes a sample content catalog into the data directory so the server
// has something to serve out of the box. Existing files are overwritten.
func main() {
	fmt.Println("Seeding sample catalog")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	now := time.Now().UTC()

	artists := []models.Artist{
		{
			ID:         uuid.New().String(),
			Name:       "XianZai",
			Slug:       "xianzai",
			Bio:        "Hard-edged techno from the southern coast.",
			Instagram:  "https://www.instagram.com/xianzai.wav/",
			Soundcloud: "https://soundcloud.com/xianzai",
			Bandcamp:   "https://xianzai.bandcamp.com",
		},
		{
			ID:        uuid.New().String(),
			Name:      "Mthreal",
			Slug:      "mthreal",
			Bio:       "Live hardware sets, broken rhythms.",
			Instagram: "https://www.instagram.com/mthreal/",
			Linktree:  "https://linktr.ee/mthreal",
		},
		{
			ID:        uuid.New().String(),
			Name:      "Dar Disku",
			Slug:      "dar-disku",
			Bio:       "Selectors digging across the Gulf and beyond.",
			Instagram: "https://www.instagram.com/dardisku/",
			Facebook:  "https://facebook.com/dardisku",
		},
	}

	earlyBirdEnd := now.Add(14 * 24 * time.Hour)
	secondPhaseEnd := now.Add(30 * 24 * time.Hour)
	events := []models.Event{
		{
			ID:                 uuid.New().String(),
			Title:              "Izuran Night 009",
			Description:        "All-night session, two rooms.",
			Venue:              "Warehouse 12",
			City:               "Tunis",
			Status:             models.EventPublished,
			StartDate:          now.Add(35 * 24 * time.Hour),
			EndDate:            now.Add(35*24*time.Hour + 8*time.Hour),
			Lineup:             "22:00 XianZai @xianzai.wav, 00:00 Mthreal, 02:00 Dar Disku",
			EarlyBirdPrice:     "20",
			EarlyBirdEndDate:   &earlyBirdEnd,
			SecondPhasePrice:   "25",
			SecondPhaseEndDate: &secondPhaseEnd,
			LastPhasePrice:     "30",
		},
		{
			ID:          uuid.New().String(),
			Title:       "Label Showcase",
			Description: "Catalog artists back to back.",
			Venue:       "Le Dome",
			City:        "Tunis",
			Status:      models.EventPublished,
			StartDate:   now.Add(60 * 24 * time.Hour),
			EndDate:     now.Add(60*24*time.Hour + 6*time.Hour),
			Lineup:      "Dar Disku, XianZai",
			TicketPrice: "15",
		},
	}

	products := []models.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Izuran Logo Tee",
			Price:       "25.00",
			Currency:    "USD",
			Category:    "apparel",
			ProductType: models.ProductMerch,
		},
		{
			ID:          uuid.New().String(),
			Name:        "IZN001 12\"",
			Price:       "18.50",
			Currency:    "USD",
			Category:    "records",
			ProductType: models.ProductVinyl,
		},
		{
			ID:          uuid.New().String(),
			Name:        "IZN001 Digital",
			Price:       "8.00",
			Currency:    "USD",
			Category:    "records",
			ProductType: models.ProductDigital,
		},
	}

	podcasts := []models.Podcast{
		{
			ID:          uuid.New().String(),
			Title:       "Izuran Podcast 014 - XianZai",
			Description: "Peak-time selections recorded live.",
			ArtistSlug:  "xianzai",
			StreamURL:   "https://soundcloud.com/izuran/podcast-014",
			PublishedAt: now.Add(-7 * 24 * time.Hour),
		},
	}

	posts := []models.Post{
		{
			ID:          uuid.New().String(),
			Title:       "IZN001 out now",
			Slug:        "izn001-out-now",
			Body:        "Our first release is available on all platforms.",
			PublishedAt: now.Add(-3 * 24 * time.Hour),
		},
	}

	writeCatalog(cfg.Data.Dir, "artists.json", artists)
	writeCatalog(cfg.Data.Dir, "events.json", events)
	writeCatalog(cfg.Data.Dir, "products.json", products)
	writeCatalog(cfg.Data.Dir, "podcasts.json", podcasts)
	writeCatalog(cfg.Data.Dir, "posts.json", posts)

	fmt.Printf("Seeded %d artists, %d events, %d products into %s\n",
		len(artists), len(events), len(products), cfg.Data.Dir)
}

func writeCatalog(dir, name string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Println("  wrote", path)
}
