// Package i18n provides locale detection and message catalogs using golang.org/x/text.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xvierd/prank-cli/internal/domain"
	"github.com/xvierd/prank-cli/internal/ports"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator implements ports.Translator on top of an x/text message catalog.
type Translator struct {
	mu      sync.RWMutex
	catalog *catalog.Builder
	locale  string
	printer *message.Printer
}

// Ensure Translator implements ports.Translator.
var _ ports.Translator = (*Translator)(nil)

// New creates a translator for locale. Unsupported locales fall back to DefaultLocale.
func New(locale string) *Translator {
	t := &Translator{catalog: mustBuildCatalog(messages)}
	resolved, ok := ResolveLocale(locale)
	if !ok {
		resolved = DefaultLocale
	}
	t.use(resolved)
	return t
}

// buildCatalog loads tables, keyed by locale then message key, into a catalog.
func buildCatalog(tables map[string]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.MustParse(DefaultLocale)))
	for locale, table := range tables {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog locale %q: %w", locale, err)
		}
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", locale, key, err)
			}
		}
	}
	return b, nil
}

// mustBuildCatalog is like buildCatalog but panics on error. The built-in
// tables are static, so a failure is a programming error.
func mustBuildCatalog(tables map[string]map[string]string) *catalog.Builder {
	b, err := buildCatalog(tables)
	if err != nil {
		panic(err)
	}
	return b
}

func (t *Translator) use(locale string) {
	t.locale = locale
	t.printer = message.NewPrinter(language.MustParse(locale), message.Catalog(t.catalog))
}

// Translate returns the message for key in the current locale.
func (t *Translator) Translate(key string, args ...any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.printer.Sprintf(key, args...)
}

// CurrentLocale returns the active locale identifier.
func (t *Translator) CurrentLocale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale switches the active locale. Regional variants resolve to the
// supported locale ("en-US" -> "en").
func (t *Translator) SetLocale(id string) error {
	resolved, ok := ResolveLocale(id)
	if !ok {
		return fmt.Errorf("%w %q: must be one of %s", domain.ErrUnsupportedLocale, id, strings.Join(supportedLocales, ", "))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.use(resolved)
	return nil
}

// Locales lists the supported locale identifiers.
func (t *Translator) Locales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// LocaleName returns the native display name of a supported locale.
func LocaleName(id string) string {
	if name, ok := localeNames[id]; ok {
		return name
	}
	return id
}

// ResolveLocale maps a language tag onto a supported locale. Every Chinese
// variant resolves to zh-TW; other languages resolve by base language.
func ResolveLocale(id string) (string, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", false
	}
	tag, err := language.Parse(id)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return LocaleZhTW, true
	case LocaleEn, LocaleJa:
		return base.String(), true
	}
	return "", false
}

// DetectSystemLocale reads the POSIX locale variables and returns a supported
// locale, or DefaultLocale when none matches.
func DetectSystemLocale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// en_US.UTF-8@euro -> en-US
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if resolved, ok := ResolveLocale(v); ok {
			return resolved
		}
		return DefaultLocale
	}
	return DefaultLocale
}
