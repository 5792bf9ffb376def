package ports

// Translator resolves user-facing strings for the current locale.
type Translator interface {
	// Translate returns the string for key, interpolating args in order.
	Translate(key string, args ...any) string

	// CurrentLocale returns the active locale identifier, e.g. "zh-TW".
	CurrentLocale() string

	// SetLocale switches the active locale.
	SetLocale(id string) error

	// Locales lists the supported locale identifiers.
	Locales() []string
}
