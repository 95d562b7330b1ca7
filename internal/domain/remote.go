package domain

import (
	"fmt"

	"maple/internal/ports/output"
)

// RemoteErrorKind enumerates failures while talking to the remote
// package registry.
type RemoteErrorKind int

const (
	// RemoteVCS wraps a version-control failure hit while mirroring a
	// package repository.
	RemoteVCS RemoteErrorKind = iota
	// RemoteFetch is a failed metadata fetch for Package.
	RemoteFetch
	// RemoteUnknown means Package is not known to the registry.
	RemoteUnknown
	// RemoteTooMany means the registry returned too many results for
	// Package to handle.
	RemoteTooMany
)

var _ Localised = (*RemoteError)(nil)

// RemoteError is a failure while talking to the remote package registry.
// Package is set for every kind except RemoteVCS, which carries the
// wrapped error instead.
type RemoteError struct {
	Kind    RemoteErrorKind
	Package string
	VCS     *VCSError
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case RemoteFetch:
		return fmt.Sprintf("remote: fetching %s failed", e.Package)
	case RemoteUnknown:
		return fmt.Sprintf("remote: no package named %s", e.Package)
	case RemoteTooMany:
		return fmt.Sprintf("remote: too many results for %s", e.Package)
	default:
		if e.VCS != nil {
			return e.VCS.Error()
		}
		return "remote: version-control failure"
	}
}

func (e *RemoteError) Unwrap() error {
	if e.VCS != nil {
		return e.VCS
	}
	return nil
}

// Localise renders the failure for the user. Wrapped version-control
// errors render as themselves, with no added framing.
func (e *RemoteError) Localise(loc output.Localizer) string {
	switch e.Kind {
	case RemoteFetch:
		return loc.Get("RemoteFetch", map[string]any{"Package": e.Package})
	case RemoteUnknown:
		return loc.Get("RemoteUnknown", map[string]any{"Package": e.Package})
	case RemoteTooMany:
		return loc.Get("RemoteTooMany", map[string]any{"Package": e.Package})
	default:
		if e.VCS != nil {
			return e.VCS.Localise(loc)
		}
		return loc.Get("GitIO", nil)
	}
}
