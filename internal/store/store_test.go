package store

import (
	"context"
	"errors"
	"testing"

	"github.com/comalab/comatheme/internal/models"
	"github.com/comalab/comatheme/internal/testutil"
)

func testTheme(name string) *models.Theme {
	return &models.Theme{
		ThemeName: name,
		Advice:    "Advice for " + name,
		IsDark:    false,
		Colors: map[string]string{
			"canvasBackground": "#F0F8FF",
			"accent":           "#556B2F",
		},
	}
}

func TestSaveMintsGroupID(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)

	saved, err := store.Save(context.Background(), testTheme("Forest"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("Save() did not assign an id")
	}
	if saved.GroupID == "" {
		t.Fatalf("Save() did not mint a groupId")
	}

	withGroup := testTheme("Meadow")
	withGroup.GroupID = "g1"
	saved, err = store.Save(context.Background(), withGroup)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.GroupID != "g1" {
		t.Fatalf("Save() groupId = %q, want existing g1 kept", saved.GroupID)
	}
}

func TestSaveRejectPolicy(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	if _, err := store.Save(ctx, testTheme("Forest")); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	_, err := store.Save(ctx, testTheme("Forest"))
	var dupErr *models.DuplicateNameError
	if !errors.As(err, &dupErr) {
		t.Fatalf("second Save() error = %v, want *DuplicateNameError", err)
	}
	if dupErr.Name != "Forest" {
		t.Fatalf("DuplicateNameError.Name = %q, want Forest", dupErr.Name)
	}
}

func TestSaveRenamePolicy(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyRename)
	ctx := context.Background()

	names := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		saved, err := store.Save(ctx, testTheme("Forest"))
		if err != nil {
			t.Fatalf("Save() #%d error = %v", i+1, err)
		}
		names = append(names, saved.ThemeName)
	}

	want := []string{"Forest", "Forest (2)", "Forest (3)"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("saved names = %v, want %v", names, want)
		}
	}
}

func TestSaveRequiresNameAndBackground(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	noName := testTheme("")
	if _, err := store.Save(ctx, noName); err == nil {
		t.Fatalf("Save() with empty name should fail")
	}

	noBackground := testTheme("Bare")
	noBackground.Colors = map[string]string{"accent": "#FF0000"}
	_, err := store.Save(ctx, noBackground)
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Save() error = %v, want *ValidationError", err)
	}
}

func TestOverwrite(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	saved, err := store.Save(ctx, testTheme("Forest"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	replacement := testTheme("Forest Revised")
	replacement.IsDark = true
	replacement.GroupID = saved.GroupID
	updated, err := store.Overwrite(ctx, saved.ID, replacement)
	if err != nil {
		t.Fatalf("Overwrite() error = %v", err)
	}
	if updated.ID != saved.ID {
		t.Fatalf("Overwrite() id = %d, want %d", updated.ID, saved.ID)
	}
	if updated.ThemeName != "Forest Revised" || !updated.IsDark {
		t.Fatalf("Overwrite() did not replace fields: %+v", updated)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 || all[0].ThemeName != "Forest Revised" {
		t.Fatalf("stored records after overwrite = %+v", all)
	}
}

func TestOverwriteNotFound(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)

	_, err := store.Overwrite(context.Background(), 999, testTheme("Ghost"))
	var notFoundErr *models.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("Overwrite() error = %v, want *NotFoundError", err)
	}
}

func TestOverwriteDuplicateName(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	if _, err := store.Save(ctx, testTheme("Forest")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := store.Save(ctx, testTheme("Meadow"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	_, err = store.Overwrite(ctx, second.ID, testTheme("Forest"))
	var dupErr *models.DuplicateNameError
	if !errors.As(err, &dupErr) {
		t.Fatalf("Overwrite() error = %v, want *DuplicateNameError", err)
	}
}

func TestDelete(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	saved, err := store.Save(ctx, testTheme("Forest"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	err = store.Delete(ctx, saved.ID)
	var notFoundErr *models.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("second Delete() error = %v, want *NotFoundError", err)
	}
}

func TestListAllNormalizedSort(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	for _, name := range []string{"Zen", "🌊 Ocean", "apple", "!!!", "🎉"} {
		if _, err := store.Save(ctx, testTheme(name)); err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}

	got := make([]string, len(all))
	for i, theme := range all {
		got[i] = theme.ThemeName
	}
	// Normalized keys: apple, ocean, zen; empty-keyed names sort last by raw
	// name.
	want := []string{"apple", "🌊 Ocean", "Zen", "!!!", "🎉"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListAll() order = %v, want %v", got, want)
		}
	}
}

func TestListAllRoundTripsColors(t *testing.T) {
	store := New(testutil.NewTestDB(t), PolicyReject)
	ctx := context.Background()

	theme := testTheme("Forest")
	theme.Colors["shadowColor"] = "rgba(0, 0, 0, 0.1)"
	if _, err := store.Save(ctx, theme); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListAll() returned %d themes, want 1", len(all))
	}
	if all[0].Colors["shadowColor"] != "rgba(0, 0, 0, 0.1)" {
		t.Fatalf("colors did not round trip: %+v", all[0].Colors)
	}
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Zen", want: "zen"},
		{name: "emoji_prefix", in: "🌊 Ocean", want: "ocean"},
		{name: "digits_stripped", in: "Theme 42", want: "theme"},
		{name: "only_punctuation", in: "!!!", want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := sortKey(test.in); got != test.want {
				t.Fatalf("sortKey(%q) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}
