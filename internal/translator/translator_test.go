package translator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

func TestNew_LoadsEmbeddedMessages(t *testing.T) {
	tr := translator.Default()

	tests := []struct {
		lang     string
		id       string
		expected string
	}{
		{translator.LanguageEn, errors.CodeEmptyText, "Todo cannot be empty"},
		{translator.LanguageEn, errors.CodeMissingEndDate, "Please select an end date."},
		{translator.LanguageEn, translator.MsgNoResults, "No results found"},
		{translator.LanguageEn, translator.MsgFilteredBy, "Filtered by: "},
		{translator.LanguageFr, translator.MsgNoResults, "Aucun résultat"},
		{"fr-FR,fr;q=0.9,en;q=0.8", errors.CodeInvalidRange, "La date de fin ne peut pas précéder la date de début."},
		{"de", errors.CodeEmptyText, "Todo cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.id, func(t *testing.T) {
			if got := tr.Localize(tt.lang, tt.id, nil); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLocalize_TemplateData(t *testing.T) {
	tr := translator.Default()

	got := tr.Localize(translator.LanguageEn, translator.MsgAdjustFilters, map[string]interface{}{"Count": 2})
	if got != "Adjust Filters (2)" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestLocalize_UnknownIDFallsBackToKey(t *testing.T) {
	tr := translator.Default()

	if got := tr.Localize(translator.LanguageEn, "unknown_key", nil); got != "unknown_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestError(t *testing.T) {
	tr := translator.Default()

	tests := []struct {
		name     string
		lang     string
		err      error
		expected string
	}{
		{"nil", translator.LanguageEn, nil, ""},
		{"sentinel", translator.LanguageEn, errors.NewNoFiltersSelectedError(), "Please select at least one filter criterion (status or date) to narrow down results."},
		{"context data", translator.LanguageEn, errors.NewTextTooLongError(300, 255), "Todo text is too long (max 255 characters)"},
		{"invalid input", translator.LanguageEn, errors.NewInvalidInputError("from", "x", "expected YYYY-MM-DD"), "Invalid from: expected YYYY-MM-DD"},
		{"french", translator.LanguageFr, errors.NewEmptyTextError(), "La tâche ne peut pas être vide"},
		{"uncoded app error", translator.LanguageEn, errors.NewValidationError("bad thing", nil), "bad thing"},
		{"plain error", translator.LanguageEn, fmt.Errorf("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Error(tt.lang, tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNew_TranslationFolderOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`noResults = "Nothing here"` + "\n")
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	tr, err := translator.New(translator.Config{TranslationFolder: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tr.Localize(translator.LanguageEn, translator.MsgNoResults, nil); got != "Nothing here" {
		t.Errorf("expected override, got %q", got)
	}
}

func TestNew_InvalidFolderKeepsEmbedded(t *testing.T) {
	tr, err := translator.New(translator.Config{TranslationFolder: "/path/does/not/exist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tr.Localize(translator.LanguageEn, errors.CodeEmptyText, nil); got != "Todo cannot be empty" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := translator.Default().Languages()
	found := map[string]bool{}
	for _, l := range langs {
		found[l] = true
	}
	if !found[translator.LanguageEn] || !found[translator.LanguageFr] {
		t.Errorf("expected en and fr, got %v", langs)
	}
}
