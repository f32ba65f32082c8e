// internal/models/theme.go
package models

import (
	"strings"
	"time"
)

// Color role keys the generator prompt asks for. The pipeline itself only
// depends on the background roles; everything else is carried through opaquely.
const (
	ColorCanvasBackground = "canvasBackground"
	ColorBackground       = "background"
)

// ColorRoles is the fixed set of keys the generation prompt requires, in
// prompt order.
var ColorRoles = []string{
	"primaryHeader",
	"secondaryHeader",
	"headerText",
	"subHeaderText",
	"canvasBackground",
	"surfaceBackground",
	"primaryText",
	"secondaryText",
	"accent",
	"outlineSeparators",
	"primaryInteractive",
	"primaryInteractiveText",
	"secondaryInteractive",
	"secondaryInteractiveText",
}

// Theme is a named palette of color-role assignments plus descriptive text
// and a dark/light flag. ID is zero until the store assigns one. GroupID ties
// a light/dark pair generated from the same concept; it is empty until the
// theme is saved or takes part in an inversion.
type Theme struct {
	ID        int64             `json:"id,omitempty"`
	GroupID   string            `json:"groupId,omitempty"`
	ThemeName string            `json:"themeName"`
	Advice    string            `json:"advice"`
	IsDark    bool              `json:"isDark"`
	Colors    map[string]string `json:"colors"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

// Validate checks the minimum shape the store requires: a non-empty name and
// a usable background role. Name length and character rules are enforced only
// by the generator prompt, not here.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.ThemeName) == "" {
		return &ValidationError{Reason: "themeName is required"}
	}
	if !hasBackgroundRole(t.Colors) {
		return &ValidationError{Reason: "missing colors"}
	}
	return nil
}

func hasBackgroundRole(colors map[string]string) bool {
	return colors[ColorCanvasBackground] != "" || colors[ColorBackground] != ""
}
