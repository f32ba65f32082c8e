// internal/genai/generator.go
package genai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/comalab/comatheme/internal/models"
)

// Completer is the opaque completion service: system prompt and user prompt
// in, raw text out. Retry and backoff against the service belong to callers,
// not to the generator.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator builds theme requests, invokes the completion service, and runs
// the raw response through extraction and normalization.
type Generator struct {
	completer Completer
}

func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// GenerateTheme produces a theme for the given user prompt. Extraction or
// normalization failures surface as a GenerationError carrying a truncated
// snippet of the raw response; a default theme is never substituted.
func (g *Generator) GenerateTheme(ctx context.Context, prompt string) (*models.Theme, error) {
	raw, err := g.completer.Complete(ctx, generateSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return themeFromResponse(raw)
}

// InvertTheme requests the opposite-mode palette for an existing theme. The
// returned record's isDark is derived from the request's intent rather than
// the service's self-reported flag, and groupId is copied from the input
// unconditionally so the pair stays linked.
func (g *Generator) InvertTheme(ctx context.Context, current *models.Theme) (*models.Theme, error) {
	targetMode := "Dark (Night)"
	if current.IsDark {
		targetMode = "Light (Day)"
	}
	systemPrompt := fmt.Sprintf(invertSystemPromptTemplate, targetMode)

	encoded, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode theme for inversion: %w", err)
	}

	raw, err := g.completer.Complete(ctx, systemPrompt, "Here is the theme to invert: "+string(encoded))
	if err != nil {
		return nil, err
	}

	theme, err := themeFromResponse(raw)
	if err != nil {
		return nil, err
	}
	theme.ID = 0
	theme.IsDark = !current.IsDark
	theme.GroupID = current.GroupID
	return theme, nil
}

func themeFromResponse(raw string) (*models.Theme, error) {
	obj, err := models.ExtractObject(raw)
	if err != nil {
		return nil, &models.GenerationError{Raw: models.TruncateRaw(raw), Err: err}
	}
	theme, err := models.Normalize(obj)
	if err != nil {
		return nil, &models.GenerationError{Raw: models.TruncateRaw(raw), Err: err}
	}
	return theme, nil
}
