// Package repositories provides data access for the site's content
// catalog. Catalog content (artists, events, shop products, podcasts,
// posts) is managed in the admin back office and exported as JSON data
// files; repositories load those files at startup and serve reads from
// memory.
package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadJSON reads a catalog data file into out. A missing file is not an
// error: the catalog section is simply empty until content is published.
func loadJSON(dir, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
