package domain

import (
	"fmt"
	"strings"

	"maple/internal/ports/output"
)

// ResolveErrorKind enumerates dependency-resolution failures.
type ResolveErrorKind int

const (
	// ResolveLockPoisoned means a lock shared between resolver workers
	// was poisoned by an earlier failure.
	ResolveLockPoisoned ResolveErrorKind = iota
	// ResolvePoolExhausted is a failure to borrow a connection from the
	// resolver's connection pool.
	ResolvePoolExhausted
	// ResolveManifest is a failed parse of the package manifest at Path.
	ResolveManifest
	// ResolveVCS wraps a version-control failure hit during resolution.
	ResolveVCS
	// ResolveAggregate collects the errors of several failed resolutions,
	// in the order they were gathered.
	ResolveAggregate
	// ResolveMissing means Package does not exist anywhere we can see.
	ResolveMissing
	// ResolveMissingParent is ResolveMissing plus the Parent that
	// required the package.
	ResolveMissingParent
	// ResolveMalformedGraph means the dependency graph was internally
	// inconsistent.
	ResolveMalformedGraph
	// ResolveCycle means the dependency graph contains a cycle involving
	// Package.
	ResolveCycle
	// ResolveRemote wraps a package-registry failure hit during
	// resolution.
	ResolveRemote
)

var _ Localised = (*ResolveError)(nil)

// ResolveError is a failed dependency resolution. Only the fields of the
// active Kind are meaningful: Path for ResolveManifest, Package (and
// Parent) for the missing/cycle kinds, VCS/Remote/Sub for the wrapping
// kinds, Err for the manifest parse cause.
type ResolveError struct {
	Kind    ResolveErrorKind
	Path    string
	Package string
	Parent  string
	Err     error
	VCS     *VCSError
	Remote  *RemoteError
	Sub     []*ResolveError
}

func (e *ResolveError) Error() string {
	switch e.Kind {
	case ResolveLockPoisoned:
		return "resolve: poisoned lock"
	case ResolvePoolExhausted:
		return "resolve: connection pool exhausted"
	case ResolveManifest:
		return fmt.Sprintf("resolve: parsing manifest %s: %v", e.Path, e.Err)
	case ResolveVCS:
		if e.VCS != nil {
			return e.VCS.Error()
		}
		return "resolve: version-control failure"
	case ResolveAggregate:
		return fmt.Sprintf("resolve: %d nested failures", len(e.Sub))
	case ResolveMissing:
		return fmt.Sprintf("resolve: %s does not exist", e.Package)
	case ResolveMissingParent:
		return fmt.Sprintf("resolve: %s (required by %s) does not exist", e.Package, e.Parent)
	case ResolveMalformedGraph:
		return "resolve: malformed dependency graph"
	case ResolveCycle:
		return fmt.Sprintf("resolve: cyclic dependency involving %s", e.Package)
	default:
		if e.Remote != nil {
			return e.Remote.Error()
		}
		return "resolve: registry failure"
	}
}

func (e *ResolveError) Unwrap() error {
	switch e.Kind {
	case ResolveVCS:
		if e.VCS != nil {
			return e.VCS
		}
	case ResolveRemote:
		if e.Remote != nil {
			return e.Remote
		}
	case ResolveManifest:
		return e.Err
	}
	return nil
}

// Localise renders the failure for the user. Wrapped errors render as
// themselves; an aggregate renders a header followed by one bulleted line
// per sub-error, in input order, with no trailing newline.
func (e *ResolveError) Localise(loc output.Localizer) string {
	switch e.Kind {
	case ResolveLockPoisoned:
		return loc.Get("ResolveLock", nil)
	case ResolvePoolExhausted:
		return loc.Get("ResolvePool", nil)
	case ResolveManifest:
		return loc.Get("ResolveManifest", map[string]any{"File": e.Path})
	case ResolveVCS:
		if e.VCS != nil {
			return e.VCS.Localise(loc)
		}
		return loc.Get("GitIO", nil)
	case ResolveAggregate:
		lines := make([]string, 0, len(e.Sub)+1)
		lines = append(lines, loc.Get("ResolveMulti", nil))
		for _, sub := range e.Sub {
			lines = append(lines, " - "+sub.Localise(loc))
		}
		return strings.Join(lines, "\n")
	case ResolveMissing:
		return loc.Get("ResolveMissing", map[string]any{"Package": e.Package})
	case ResolveMissingParent:
		return loc.Get("ResolveMissingParent", map[string]any{
			"Package": e.Package,
			"Parent":  e.Parent,
		})
	case ResolveMalformedGraph:
		return loc.Get("ResolveGraph", nil)
	case ResolveCycle:
		return loc.Get("ResolveCycle", map[string]any{"Package": e.Package})
	default:
		if e.Remote != nil {
			return e.Remote.Localise(loc)
		}
		return loc.Get("GitIO", nil)
	}
}
