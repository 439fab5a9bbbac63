package npc

import (
	"embed"
	"fmt"
)

//go:embed bestiary/*.yaml
var bestiaryFS embed.FS

// DefaultTemplates returns the built-in bestiary in encounter order, weakest first.
//
// Postcondition: Returns 40 validated templates, or an error if the embedded
// data is corrupt.
func DefaultTemplates() ([]*Template, error) {
	templates, err := loadTemplatesFS(bestiaryFS, "bestiary")
	if err != nil {
		return nil, fmt.Errorf("loading embedded bestiary: %w", err)
	}
	return templates, nil
}
