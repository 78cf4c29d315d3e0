package domain

import "strings"

// TagSeparator is the delimiter used for the stored tags column.
const TagSeparator = ","

// NormalizeTags prepares user-supplied tags for storage:
//   - every element is split on commas, so "a, b" and ["a","b"] are equivalent
//   - each tag is trimmed
//   - empty tags are dropped
//   - duplicates are dropped, keeping the first occurrence
//
// The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		for _, part := range strings.Split(raw, TagSeparator) {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// SerializeTags normalizes tags and joins them into the stored form.
func SerializeTags(tags []string) string {
	return strings.Join(NormalizeTags(tags), TagSeparator)
}

// DeserializeTags splits a stored tags column back into a list.
// Whitespace is trimmed and empty parts are dropped.
func DeserializeTags(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, part := range strings.Split(s, TagSeparator) {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
