package config

import (
	"fmt"
	"strings"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout must be >= 0 (got %s)", c.Database.BusyTimeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Library.validate(); err != nil {
		return fmt.Errorf("library: %w", err)
	}

	return nil
}

func (l *LibraryConfig) validate() error {
	if _, err := domain.ParseView(l.DefaultView); err != nil {
		return fmt.Errorf("default_view: %w", err)
	}
	if l.DescriptionLength <= 0 {
		return fmt.Errorf("description_length must be > 0 (got %d)", l.DescriptionLength)
	}
	if len(l.Extensions()) == 0 {
		return fmt.Errorf("import_extensions must list at least one extension")
	}
	return nil
}

// Extensions parses ImportExtensions into lower-cased, dot-prefixed values.
func (l LibraryConfig) Extensions() []string {
	var exts []string
	for _, p := range strings.Split(l.ImportExtensions, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ".") {
			p = "." + p
		}
		exts = append(exts, p)
	}
	return exts
}
