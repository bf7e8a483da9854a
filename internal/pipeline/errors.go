package pipeline

import "fmt"

// BrandNotFoundError is returned when a request names a brand id outside the catalog.
type BrandNotFoundError struct {
	BrandID int
}

func (e *BrandNotFoundError) Error() string {
	return fmt.Sprintf("brand not found: %d", e.BrandID)
}
