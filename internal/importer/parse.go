// Package importer turns uploaded prompt files into import candidates.
// Pure functions over readers, no database dependencies; the watcher hands
// files to a callback and leaves storage to the caller.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

// ImportedTag marks every prompt that came from a file.
const ImportedTag = "imported"

// DefaultDescriptionLength is used when Options.DescriptionLength is not set.
const DefaultDescriptionLength = 100

// ErrUnsupportedFormat is returned for files whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies how a file's content is split into prompts.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

var formatByExt = map[string]Format{
	".json":     FormatJSON,
	".yaml":     FormatYAML,
	".yml":      FormatYAML,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".txt":      FormatText,
}

// Options controls parsing.
type Options struct {
	// DescriptionLength caps the derived description, in runes.
	DescriptionLength int

	// Extensions restricts accepted file extensions (".txt", ".json", ...).
	// Empty accepts every extension with a parser.
	Extensions []string
}

// DetectFormat returns the parser format for fileName.
func (o Options) DetectFormat(fileName string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	f, ok := formatByExt[ext]
	if !ok || (len(o.Extensions) > 0 && !slices.Contains(o.Extensions, ext)) {
		return "", fmt.Errorf("%s: %w", fileName, ErrUnsupportedFormat)
	}
	return f, nil
}

// Supported reports whether fileName would be accepted by Parse.
func (o Options) Supported(fileName string) bool {
	_, err := o.DetectFormat(fileName)
	return err == nil
}

// item is one entry of a structured (json or yaml) import file.
type item struct {
	Prompt      string   `json:"prompt"      yaml:"prompt"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags"        yaml:"tags"`
}

// Parse reads r and returns one candidate per prompt found.
// Structured files (json, yaml) hold a list of items; anything else is split
// into blocks on blank lines. A structured file that is not a list is read as
// plain text instead.
// Candidates without content are kept so the caller can count them as
// skipped.
func Parse(fileName string, r io.Reader, opts Options) ([]library.Candidate, error) {
	format, err := opts.DetectFormat(fileName)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	title := titleFromFileName(fileName)

	switch format {
	case FormatJSON:
		var items []item
		if err := json.Unmarshal(data, &items); err == nil {
			return fromItems(items, title, format, opts), nil
		}
		return fromText(string(data), title, FormatText, opts), nil

	case FormatYAML:
		var items []item
		if err := yaml.Unmarshal(data, &items); err == nil {
			return fromItems(items, title, format, opts), nil
		}
		return fromText(string(data), title, FormatText, opts), nil

	default:
		return fromText(string(data), title, format, opts), nil
	}
}

func fromItems(items []item, title string, format Format, opts Options) []library.Candidate {
	out := make([]library.Candidate, 0, len(items))
	for _, it := range items {
		c := library.Candidate{
			Title:       strings.TrimSpace(it.Title),
			Description: strings.TrimSpace(it.Description),
			Content:     strings.TrimSpace(it.Prompt),
			Tags:        append([]string{ImportedTag, string(format)}, it.Tags...),
		}
		if c.Title == "" {
			c.Title = title
		}
		if c.Description == "" {
			c.Description = Describe(c.Content, opts.DescriptionLength)
		}
		out = append(out, c)
	}
	return out
}

func fromText(text, title string, format Format, opts Options) []library.Candidate {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out []library.Candidate
	for _, block := range strings.Split(text, "\n\n") {
		content := strings.TrimSpace(block)
		if content == "" {
			continue
		}
		out = append(out, library.Candidate{
			Title:       title,
			Description: Describe(content, opts.DescriptionLength),
			Content:     content,
			Tags:        []string{ImportedTag, string(format)},
		})
	}
	return out
}

// Describe returns the first n runes of content, with "..." appended when
// content is longer.
func Describe(content string, n int) string {
	if n <= 0 {
		n = DefaultDescriptionLength
	}
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	return string([]rune(content)[:n]) + "..."
}

func titleFromFileName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
