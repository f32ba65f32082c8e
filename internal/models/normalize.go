// internal/models/normalize.go
package models

import (
	"regexp"

	"github.com/comalab/comatheme/internal/colorx"
)

// Inverted pairs conventionally suffix the dark variant's name; used as a
// last-resort dark hint when the background is not luminance-computable.
var darkNameSuffixRegex = regexp.MustCompile(`(?i)\((?:Night|Dark)\)\s*$`)

// Normalize converts a decoded completion object into a Theme with its
// invariants applied: isDark is always a concrete boolean afterwards. A JSON
// boolean isDark is kept as-is; any other type (string "yes", number, absent)
// falls through to inference from background luminance. Prompt revisions
// differ on whether the model supplies isDark, so both paths must unify here.
//
// Fails only when no usable background role is present, since a theme with no
// computable background is not usable downstream.
func Normalize(obj map[string]any) (*Theme, error) {
	colors := stringMap(obj["colors"])
	if !hasBackgroundRole(colors) {
		return nil, &ValidationError{Reason: "missing colors"}
	}

	theme := &Theme{
		GroupID:   asString(obj["groupId"]),
		ThemeName: asString(obj["themeName"]),
		Advice:    asString(obj["advice"]),
		Colors:    colors,
	}
	if id, ok := obj["id"].(float64); ok {
		theme.ID = int64(id)
	}

	if isDark, ok := obj["isDark"].(bool); ok {
		theme.IsDark = isDark
		return theme, nil
	}
	theme.IsDark = inferIsDark(obj, colors, theme.ThemeName)
	return theme, nil
}

// inferIsDark classifies the first present background indicator, in priority
// order canvasBackground, colors.background, then a top-level background
// value. Backgrounds that are not luminance-computable (rgba strings) fall
// back to the name-suffix convention, then to light.
func inferIsDark(obj map[string]any, colors map[string]string, name string) bool {
	bg := colors[ColorCanvasBackground]
	if bg == "" {
		bg = colors[ColorBackground]
	}
	if bg == "" {
		bg = asString(obj[ColorBackground])
	}
	if l, ok := colorx.HexToLuminance(bg); ok {
		return l < 0.5
	}
	return darkNameSuffixRegex.MatchString(name)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func stringMap(v any) map[string]string {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
