// Package schemas holds the JSON Schemas that the embedded catalogs are validated against.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the raw content of the named schema file (e.g. "brands.schema.json").
func Read(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema file %s: %w", name, err)
	}
	return string(data), nil
}
