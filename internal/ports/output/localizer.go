package output

// Localizer exposes a minimal i18n contract for user-facing messages.
// Implementations are already bound to a language and provide message
// lookup + templating for it.
type Localizer interface {
	// Get renders the message identified by id.
	// data is an optional map used for template placeholders (may be nil).
	Get(id string, data map[string]any) string
}
