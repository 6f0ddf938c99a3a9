package i18n

// Supported language codes.
const (
	EN = "en"
	PL = "pl"
)

// Text holds the translations of a single message keyed by language code.
type Text map[string]string

// Supported checks whether the given language code is known.
func Supported(lang string) bool {
	switch lang {
	case EN, PL:
		return true
	}
	return false
}

// T picks the translation for the given language,
// falling back to english when the language or the key is missing.
func T(lang string, text Text) string {
	if s, ok := text[lang]; ok {
		return s
	}
	return text[EN]
}
