// Package types provides type definitions for structured data used throughout the creation service.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentType selects which family of templates a creation is rendered from.
// Values outside the known set are carried through verbatim and handled by
// the generic fallback.
type ContentType string

// Known content types.
const (
	ContentStory        ContentType = "STORY"
	ContentIntroduction ContentType = "INTRODUCTION"
	ContentCraft        ContentType = "CRAFT"
	ContentCulture      ContentType = "CULTURE"
	ContentHistory      ContentType = "HISTORY"
	ContentModern       ContentType = "MODERN"
)

// DefaultContentType is used when a request does not name one.
const DefaultContentType = ContentStory

// AllContentTypes returns the known content types in display order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentStory,
		ContentIntroduction,
		ContentCraft,
		ContentCulture,
		ContentHistory,
		ContentModern,
	}
}

// IsKnown reports whether c is one of the known content types.
func (c ContentType) IsKnown() bool {
	for _, known := range AllContentTypes() {
		if c == known {
			return true
		}
	}
	return false
}

func (c ContentType) String() string {
	return string(c)
}
