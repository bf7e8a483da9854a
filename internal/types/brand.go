// Package types provides type definitions for structured data used throughout the creation service.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Brand is a heritage brand entry from the static catalog.
// Entries are loaded once at startup and never mutated.
type Brand struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	EstablishmentYear int     `json:"establishmentYear"`
	Founder           string  `json:"founder"`
	Specialty         string  `json:"specialty"`
	CulturalValue     string  `json:"culturalValue,omitempty"`
	Craftsmanship     string  `json:"craftsmanship,omitempty"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Status            string  `json:"status"`
	Rating            float64 `json:"rating"`
	StoryCount        int     `json:"storyCount"`
	FollowerCount     int     `json:"followerCount"`
}

// BrandInfo is the condensed brand view echoed back with a creation.
type BrandInfo struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CulturalValue string `json:"culturalValue"`
}

// Info returns the condensed view of the brand.
func (b *Brand) Info() BrandInfo {
	return BrandInfo{
		ID:            b.ID,
		Name:          b.Name,
		Category:      b.Category,
		CulturalValue: b.CulturalValue,
	}
}
