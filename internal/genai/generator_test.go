package genai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/comalab/comatheme/internal/models"
)

type mockCompleter struct {
	response     string
	err          error
	systemPrompt string
	userPrompt   string
}

func (m *mockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestGenerateTheme(t *testing.T) {
	completer := &mockCompleter{
		response: "Sure, here you go! ```json\n" +
			`{"themeName":"Forest","advice":"Calm.","colors":{"canvasBackground":"#F0F8FF","accent":"#556B2F"}}` +
			"\n``` Enjoy!",
	}
	generator := NewGenerator(completer)

	theme, err := generator.GenerateTheme(context.Background(), "a serene forest at dawn")
	if err != nil {
		t.Fatalf("GenerateTheme() error = %v", err)
	}
	if theme.ThemeName != "Forest" {
		t.Fatalf("themeName = %q, want Forest", theme.ThemeName)
	}
	if theme.IsDark {
		t.Fatalf("isDark = true, want inferred light from #F0F8FF")
	}
	if completer.userPrompt != "a serene forest at dawn" {
		t.Fatalf("user prompt = %q", completer.userPrompt)
	}
	if !strings.Contains(completer.systemPrompt, "canvasBackground") {
		t.Fatalf("system prompt missing color role list")
	}
}

func TestGenerateThemeBadResponse(t *testing.T) {
	longGarbage := strings.Repeat("no json here ", 100)
	completer := &mockCompleter{response: longGarbage}
	generator := NewGenerator(completer)

	_, err := generator.GenerateTheme(context.Background(), "anything")
	var genErr *models.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("GenerateTheme() error = %v, want *GenerationError", err)
	}
	var parseErr *models.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("GenerationError should wrap the ParseError, got %v", genErr.Err)
	}
	if len(genErr.Raw) > models.RawSnippetLimit {
		t.Fatalf("raw snippet length = %d, want at most %d", len(genErr.Raw), models.RawSnippetLimit)
	}
	if !strings.HasPrefix(longGarbage, genErr.Raw) {
		t.Fatalf("raw snippet should be a prefix of the response")
	}
}

func TestGenerateThemeMissingColors(t *testing.T) {
	completer := &mockCompleter{response: `{"themeName":"Bare","colors":{}}`}
	generator := NewGenerator(completer)

	_, err := generator.GenerateTheme(context.Background(), "anything")
	var genErr *models.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("GenerateTheme() error = %v, want *GenerationError", err)
	}
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("GenerationError should wrap the ValidationError, got %v", genErr.Err)
	}
}

func TestGenerateThemeTransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	generator := NewGenerator(&mockCompleter{err: wantErr})

	_, err := generator.GenerateTheme(context.Background(), "anything")
	if !errors.Is(err, wantErr) {
		t.Fatalf("GenerateTheme() error = %v, want wrapped transport error", err)
	}
	var genErr *models.GenerationError
	if errors.As(err, &genErr) {
		t.Fatalf("transport failures must not be labeled GenerationError")
	}
}

func TestInvertThemeForcesModeAndGroup(t *testing.T) {
	// The response lies about isDark and groupId; both must be overridden.
	completer := &mockCompleter{
		response: `{"themeName":"Forest (Night)","isDark":false,"groupId":"bogus","colors":{"canvasBackground":"#0A1A0A"}}`,
	}
	generator := NewGenerator(completer)

	current := &models.Theme{
		ID:        7,
		GroupID:   "g1",
		ThemeName: "Forest",
		IsDark:    false,
		Colors:    map[string]string{"canvasBackground": "#F0F8FF"},
	}
	inverted, err := generator.InvertTheme(context.Background(), current)
	if err != nil {
		t.Fatalf("InvertTheme() error = %v", err)
	}
	if !inverted.IsDark {
		t.Fatalf("isDark = false, want negation of input")
	}
	if inverted.GroupID != "g1" {
		t.Fatalf("groupId = %q, want g1 copied from input", inverted.GroupID)
	}
	if inverted.ID != 0 {
		t.Fatalf("id = %d, want 0 for the unsaved variant", inverted.ID)
	}
	if !strings.Contains(completer.systemPrompt, "Dark (Night)") {
		t.Fatalf("system prompt should target the dark mode, got %q", completer.systemPrompt[:80])
	}
	if !strings.Contains(completer.userPrompt, `"themeName": "Forest"`) {
		t.Fatalf("user prompt should carry the original theme JSON")
	}
}

func TestInvertThemeDarkToLight(t *testing.T) {
	completer := &mockCompleter{
		response: `{"themeName":"Forest (Day)","colors":{"canvasBackground":"#F0F8FF"}}`,
	}
	generator := NewGenerator(completer)

	current := &models.Theme{
		GroupID: "g2",
		IsDark:  true,
		Colors:  map[string]string{"canvasBackground": "#0A1A0A"},
	}
	inverted, err := generator.InvertTheme(context.Background(), current)
	if err != nil {
		t.Fatalf("InvertTheme() error = %v", err)
	}
	if inverted.IsDark {
		t.Fatalf("isDark = true, want light variant")
	}
	if !strings.Contains(completer.systemPrompt, "Light (Day)") {
		t.Fatalf("system prompt should target the light mode")
	}
}
