// internal/store/store.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/comalab/comatheme/internal/models"
)

// Store persists themes in SQLite and resolves name conflicts according to
// the configured duplicate policy.
type Store struct {
	db     *sql.DB
	policy DuplicatePolicy
}

// DuplicatePolicy selects the save behavior when a theme name collides with a
// stored record. The choice is explicit configuration; the two policies must
// never be mixed silently.
type DuplicatePolicy string

const (
	// PolicyReject surfaces the conflict to the caller.
	PolicyReject DuplicatePolicy = "reject"
	// PolicyRename appends " (2)", " (3)", ... and retries the insert until
	// the uniqueness constraint accepts it.
	PolicyRename DuplicatePolicy = "rename"
)

func New(db *sql.DB, policy DuplicatePolicy) *Store {
	return &Store{db: db, policy: policy}
}

// Save inserts a theme. An empty groupId means this record starts a new
// light/dark pair, so a fresh opaque identifier is minted. Name conflicts
// resolve per the configured policy; under PolicyRename each retry goes back
// to the store, so concurrent saves of the same base name may interleave
// arbitrarily but each call terminates with a uniquely named record.
func (s *Store) Save(ctx context.Context, theme *models.Theme) (*models.Theme, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	saved := *theme
	saved.ID = 0
	if saved.GroupID == "" {
		saved.GroupID = uuid.NewString()
	}

	colorsJSON, err := json.Marshal(saved.Colors)
	if err != nil {
		return nil, fmt.Errorf("encode theme colors: %w", err)
	}

	now := time.Now().UTC()
	baseName := saved.ThemeName
	for attempt := 1; ; attempt++ {
		name := baseName
		if attempt > 1 {
			name = fmt.Sprintf("%s (%d)", baseName, attempt)
		}

		res, err := s.db.ExecContext(ctx,
			`INSERT INTO themes (group_id, theme_name, advice, is_dark, colors, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			saved.GroupID, name, saved.Advice, saved.IsDark, string(colorsJSON), now, now,
		)
		if err == nil {
			id, err := res.LastInsertId()
			if err != nil {
				return nil, fmt.Errorf("read inserted theme id: %w", err)
			}
			saved.ID = id
			saved.ThemeName = name
			saved.CreatedAt = now
			saved.UpdatedAt = now
			return &saved, nil
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("insert theme: %w", err)
		}
		if s.policy == PolicyReject {
			return nil, &models.DuplicateNameError{Name: name}
		}
	}
}

// Overwrite fully replaces the record at id with the given theme's fields.
func (s *Store) Overwrite(ctx context.Context, id int64, theme *models.Theme) (*models.Theme, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	updated := *theme
	updated.ID = id
	if updated.GroupID == "" {
		updated.GroupID = uuid.NewString()
	}

	colorsJSON, err := json.Marshal(updated.Colors)
	if err != nil {
		return nil, fmt.Errorf("encode theme colors: %w", err)
	}

	updated.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE themes
		 SET group_id = ?, theme_name = ?, advice = ?, is_dark = ?, colors = ?, updated_at = ?
		 WHERE id = ?`,
		updated.GroupID, updated.ThemeName, updated.Advice, updated.IsDark, string(colorsJSON), updated.UpdatedAt, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.DuplicateNameError{Name: updated.ThemeName}
		}
		return nil, fmt.Errorf("overwrite theme: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("overwrite theme: %w", err)
	}
	if rows == 0 {
		return nil, &models.NotFoundError{ID: id}
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT created_at FROM themes WHERE id = ?`, id,
	).Scan(&updated.CreatedAt); err != nil {
		return nil, fmt.Errorf("reload overwritten theme: %w", err)
	}
	return &updated, nil
}

// Delete removes the record at id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM themes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if rows == 0 {
		return &models.NotFoundError{ID: id}
	}
	return nil
}

// ListAll returns every stored theme sorted by a normalized name key: strip
// everything that is not a letter, lower-case, and compare. Names whose
// normalized key is empty (pure emoji or punctuation) sort after all others;
// ties break on the raw name. The sort happens here, not in the store's
// natural order.
func (s *Store) ListAll(ctx context.Context) ([]models.Theme, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, theme_name, advice, is_dark, colors, created_at, updated_at FROM themes`,
	)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var themes []models.Theme
	for rows.Next() {
		var theme models.Theme
		var colorsJSON string
		if err := rows.Scan(
			&theme.ID, &theme.GroupID, &theme.ThemeName, &theme.Advice,
			&theme.IsDark, &colorsJSON, &theme.CreatedAt, &theme.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan theme row: %w", err)
		}
		if err := json.Unmarshal([]byte(colorsJSON), &theme.Colors); err != nil {
			return nil, fmt.Errorf("decode colors for theme %d: %w", theme.ID, err)
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return lessThemeName(themes[i].ThemeName, themes[j].ThemeName)
	})
	return themes, nil
}

func lessThemeName(a, b string) bool {
	keyA, keyB := sortKey(a), sortKey(b)
	if keyA == "" && keyB == "" {
		return a < b
	}
	if keyA == "" {
		return false
	}
	if keyB == "" {
		return true
	}
	if keyA != keyB {
		return keyA < keyB
	}
	return a < b
}

// sortKey strips all non-alphabetic characters and lower-cases the rest.
func sortKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
