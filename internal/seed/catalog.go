// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gochurch/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yml
var catalogYAML []byte

// CatalogBoard is a permanent board every deployment starts with.
type CatalogBoard struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// CatalogPost is a post template used by the sample-data generator.
type CatalogPost struct {
	Title    string `yaml:"title"`
	Contents string `yaml:"contents"`
}

// Catalog is the fixed content shipped with the binary.
type Catalog struct {
	Boards   []CatalogBoard `yaml:"boards"`
	Churches []string       `yaml:"churches"`
	Tags     []string       `yaml:"tags"`
	Posts    []CatalogPost  `yaml:"posts"`
	Comments []string       `yaml:"comments"`
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses the embedded catalog. The result is shared and must not
// be modified.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		var c Catalog
		if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
			catalogErr = fmt.Errorf("parse seed catalog: %w", err)
			return
		}
		if len(c.Boards) == 0 || len(c.Posts) == 0 || len(c.Comments) == 0 || len(c.Tags) == 0 {
			catalogErr = fmt.Errorf("seed catalog is incomplete")
			return
		}
		catalog = &c
	})
	return catalog, catalogErr
}

// Boards seeds the built-in boards. Existing boards are matched by title and
// get their description refreshed, so running it on every boot is safe.
func Boards(ctx context.Context, db *gorm.DB) ([]models.Board, error) {
	c, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	boards := make([]models.Board, 0, len(c.Boards))
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range c.Boards {
			var board models.Board
			if err := tx.Where(models.Board{Title: item.Title}).
				Assign(models.Board{Description: item.Description}).
				FirstOrCreate(&board).Error; err != nil {
				return fmt.Errorf("seed board %q: %w", item.Title, err)
			}
			boards = append(boards, board)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return boards, nil
}
