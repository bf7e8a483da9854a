package generation

import (
	"fmt"
	"strings"
)

// FormatError is returned when a template references a slot that has no value.
// The canonical templates never trigger it; it guards hand-edited catalogs.
type FormatError struct {
	Template string
	Missing  []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("template references undefined slots [%s]: %q", strings.Join(e.Missing, ", "), e.Template)
}
