package translator

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "ticket-slash/internal/errors"
)

//go:embed translation/*.toml
var translations embed.FS

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// Message IDs for prompts and labels. Error messages use the error code as ID.
const (
	MsgErrorTitle          = "errorTitle"
	MsgNoFiltersTitle      = "noFiltersTitle"
	MsgConfirmDeleteTitle  = "confirmDeleteTitle"
	MsgConfirmDeletePrompt = "confirmDeletePrompt"
	MsgDeleteCancelled     = "deleteCancelled"
	MsgNoResults           = "noResults"
	MsgFilteredBy          = "filteredBy"
	MsgAdjustFilters       = "adjustFilters"
	MsgSearchResults       = "searchResults"
	MsgTodosTab            = "todosTab"
	MsgCompletedTab        = "completedTab"
	MsgTaskAdded           = "taskAdded"
	MsgTaskCompleted       = "taskCompleted"
	MsgTaskReopened        = "taskReopened"
	MsgTaskDeleted         = "taskDeleted"
)

type Config struct {
	// TranslationFolder optionally points at extra or overriding TOML files.
	TranslationFolder string
	// DefaultLanguage is used when a request names no supported language.
	DefaultLanguage string
}

// Translator resolves message IDs to localized text.
type Translator struct {
	bundle   *i18n.Bundle
	fallback string
}

// New builds a bundle from the embedded translations plus cfg.TranslationFolder.
func New(cfg Config) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translations.ReadDir("translation")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded translations: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(translations, "translation/"+e.Name()); err != nil {
			return nil, fmt.Errorf("failed to load translation %s: %w", e.Name(), err)
		}
	}

	if cfg.TranslationFolder != "" {
		loadFolder(bundle, cfg.TranslationFolder)
	}

	fallback := cfg.DefaultLanguage
	if fallback == "" {
		fallback = LanguageEn
	}

	return &Translator{bundle: bundle, fallback: fallback}, nil
}

// Default returns a translator over the embedded messages only.
func Default() *Translator {
	t, err := New(Config{})
	if err != nil {
		panic(err)
	}
	return t
}

func loadFolder(bundle *i18n.Bundle, folder string) {
	lstFiles, err := os.ReadDir(folder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", folder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(folder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Languages lists the languages that have messages loaded.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

// Localize returns the message for id in lang. lang may be a bare tag or an
// Accept-Language header value. Unknown IDs come back unchanged.
func (t *Translator) Localize(lang, id string, data map[string]interface{}) string {
	l := i18n.NewLocalizer(t.bundle, lang, t.fallback)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}

// Error returns the localized user message for err.
func (t *Translator) Error(lang string, err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := apperrors.AsAppError(err)
	if !ok || !t.has(appErr.Code) {
		return apperrors.GetUserMessage(err)
	}
	return t.Localize(lang, appErr.Code, templateData(appErr.Context))
}

func (t *Translator) has(id string) bool {
	l := i18n.NewLocalizer(t.bundle, t.fallback)
	_, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
	return err == nil
}

// templateData exposes error context keys in template form: "max" becomes {{.Max}}.
func templateData(ctx map[string]interface{}) map[string]interface{} {
	caser := cases.Title(language.English)
	data := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		data[caser.String(k)] = v
	}
	return data
}
