// Package domain holds the typed errors produced across maple and the
// capability that turns them into user-facing text.
package domain

import "maple/internal/ports/output"

// Localised is implemented by any error whose contents can be shown to
// the user in their own language. The localized form collapses technical
// detail into a fixed translated message; the full detail stays on the
// error value itself for diagnostic logging.
type Localised interface {
	Localise(loc output.Localizer) string
}
