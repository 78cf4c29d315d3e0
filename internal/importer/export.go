package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// exportItem extends the import item with library metadata. Parse ignores
// the extra fields, so an export can be imported again.
type exportItem struct {
	item       `yaml:",inline"`
	ID         string `json:"id"         yaml:"id"`
	Rating     int    `json:"rating"     yaml:"rating,omitempty"`
	IsFavorite bool   `json:"isFavorite" yaml:"isFavorite,omitempty"`
	IsActive   bool   `json:"isActive"   yaml:"isActive"`
}

// Export writes prompts as a json or yaml list in the structured import
// format.
func Export(w io.Writer, format Format, prompts []domain.Prompt) error {
	items := make([]exportItem, len(prompts))
	for i, p := range prompts {
		items[i] = exportItem{
			item: item{
				Prompt:      p.Content,
				Title:       p.Title,
				Description: p.Description,
				Tags:        p.Tags,
			},
			ID:         p.ID,
			Rating:     p.Rating,
			IsFavorite: p.IsFavorite,
			IsActive:   p.IsActive,
		}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("export as %s: %w", format, ErrUnsupportedFormat)
	}
}
