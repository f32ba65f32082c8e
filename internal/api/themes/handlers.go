// internal/api/themes/handlers.go
package themes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/comalab/comatheme/internal/api/apiutil"
	"github.com/comalab/comatheme/internal/models"
)

const (
	themeQueryTimeout = 5 * time.Second
	generateTimeout   = 90 * time.Second
	themeIDParam      = "id"
)

// ThemeStore is the persistence resolver behind the CRUD handlers.
type ThemeStore interface {
	Save(ctx context.Context, theme *models.Theme) (*models.Theme, error)
	Overwrite(ctx context.Context, id int64, theme *models.Theme) (*models.Theme, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]models.Theme, error)
}

// ThemeGenerator produces and inverts themes via the completion service.
type ThemeGenerator interface {
	GenerateTheme(ctx context.Context, prompt string) (*models.Theme, error)
	InvertTheme(ctx context.Context, current *models.Theme) (*models.Theme, error)
}

var (
	themeStore ThemeStore
	themeGen   ThemeGenerator
	initOnce   sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(store ThemeStore, generator ThemeGenerator) {
	if store == nil && generator == nil {
		return
	}
	initOnce.Do(func() {
		themeStore = store
		themeGen = generator
	})
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type invertRequest struct {
	CurrentTheme *models.Theme `json:"currentTheme"`
}

// POST /api/v1/themes/generate
func HandleThemeGenerate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeGen == nil {
		logger.Error().Msg("Theme generator not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req generateRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "Text prompt is required.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	theme, err := themeGen.GenerateTheme(ctx, prompt)
	if err != nil {
		writeGenerationError(w, r, err, "Failed to generate theme")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, theme); err != nil {
		logger.Error().Err(err).Msg("Failed to write generated theme response")
	}
}

// POST /api/v1/themes/invert
func HandleThemeInvert(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeGen == nil {
		logger.Error().Msg("Theme generator not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req invertRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if req.CurrentTheme == nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Current theme data is required.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	inverted, err := themeGen.InvertTheme(ctx, req.CurrentTheme)
	if err != nil {
		writeGenerationError(w, r, err, "Failed to generate inverted theme")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, inverted); err != nil {
		logger.Error().Err(err).Msg("Failed to write inverted theme response")
	}
}

// POST /api/v1/themes
func HandleThemeSave(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeStore == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	theme, ok := decodeAndNormalizeTheme(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	saved, err := themeStore.Save(ctx, theme)
	if err != nil {
		writeStoreError(w, r, err, "Failed to save theme.")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, saved); err != nil {
		logger.Error().Err(err).Int64("theme_id", saved.ID).Msg("Failed to write saved theme response")
	}
}

// PUT /api/v1/themes/{id}
func HandleThemeOverwrite(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeStore == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeID, err := themeIDFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid theme ID", "")
		return
	}

	theme, ok := decodeAndNormalizeTheme(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	updated, err := themeStore.Overwrite(ctx, themeID, theme)
	if err != nil {
		writeStoreError(w, r, err, "Failed to overwrite theme.")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, updated); err != nil {
		logger.Error().Err(err).Int64("theme_id", themeID).Msg("Failed to write overwritten theme response")
	}
}

// DELETE /api/v1/themes/{id}
func HandleThemeDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeStore == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeID, err := themeIDFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid ID", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	if err := themeStore.Delete(ctx, themeID); err != nil {
		writeStoreError(w, r, err, "Failed to delete theme.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/themes
func HandleThemesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if themeStore == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	themes, err := themeStore.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list themes")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to fetch themes.", "")
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"themes": themes}); err != nil {
		logger.Error().Err(err).Msg("Failed to write themes list response")
	}
}

// decodeAndNormalizeTheme reads a loose theme object from the body and runs
// it through normalization, so saved and overwritten records carry the same
// invariants as generated ones.
func decodeAndNormalizeTheme(w http.ResponseWriter, r *http.Request) (*models.Theme, bool) {
	var obj map[string]any
	if err := apiutil.DecodeJSON(r, &obj); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body", "")
		return nil, false
	}

	theme, err := models.Normalize(obj)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return nil, false
	}
	return theme, true
}

func writeGenerationError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.Ctx(r.Context())

	var genErr *models.GenerationError
	if errors.As(err, &genErr) {
		logger.Error().Err(genErr.Err).Str("raw", genErr.Raw).Msg("AI theme parse error")
		_ = apiutil.WriteJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "Bad AI response",
			"detail": genErr.Err.Error(),
		})
		return
	}

	logger.Error().Err(err).Msg("Completion service call failed")
	apiutil.WriteError(w, http.StatusInternalServerError, fallback, "")
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.Ctx(r.Context())

	var dupErr *models.DuplicateNameError
	if errors.As(err, &dupErr) {
		apiutil.WriteError(w, http.StatusConflict, "Theme name already exists", "DUPLICATE_NAME")
		return
	}
	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		apiutil.WriteError(w, http.StatusNotFound, "Theme not found", "")
		return
	}
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		apiutil.WriteError(w, http.StatusBadRequest, validationErr.Reason, "")
		return
	}

	logger.Error().Err(err).Msg("Theme store operation failed")
	apiutil.WriteError(w, http.StatusInternalServerError, fallback, "")
}

func themeIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(themeIDParam))
	return strconv.ParseInt(raw, 10, 64)
}
