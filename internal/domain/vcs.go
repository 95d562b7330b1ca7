package domain

import (
	"fmt"

	"maple/internal/ports/output"
)

// VCSErrorKind enumerates the ways a version-control operation can fail.
type VCSErrorKind int

const (
	// VCSIO is a low-level IO failure while calling git.
	VCSIO VCSErrorKind = iota
	// VCSClone is a failed clone into the directory at Path.
	VCSClone
	// VCSPull is a failed pull of the repository at Path.
	VCSPull
	// VCSDiff is a failed diff of the file at Path.
	VCSDiff
	// VCSReadHash is a failure to read a commit hash.
	VCSReadHash
)

var _ Localised = (*VCSError)(nil)

// VCSError is a failed version-control operation. Path is set for the
// clone/pull/diff kinds; Err carries the underlying cause when one
// exists.
type VCSError struct {
	Kind VCSErrorKind
	Path string
	Err  error
}

func (e *VCSError) Error() string {
	switch e.Kind {
	case VCSClone:
		return fmt.Sprintf("git: clone failed: %s", e.Path)
	case VCSPull:
		return fmt.Sprintf("git: pull failed: %s", e.Path)
	case VCSDiff:
		return fmt.Sprintf("git: diff failed: %s", e.Path)
	case VCSReadHash:
		return fmt.Sprintf("git: reading hash: %v", e.Err)
	default:
		return fmt.Sprintf("git: io: %v", e.Err)
	}
}

func (e *VCSError) Unwrap() error {
	return e.Err
}

// Localise renders the failure for the user. The raw underlying cause is
// never part of the message; it belongs in the logs.
func (e *VCSError) Localise(loc output.Localizer) string {
	switch e.Kind {
	case VCSClone:
		return loc.Get("GitClone", map[string]any{"Dir": e.Path})
	case VCSPull:
		return loc.Get("GitPull", map[string]any{"Dir": e.Path})
	case VCSDiff:
		return loc.Get("GitDiff", map[string]any{"File": e.Path})
	case VCSReadHash:
		return loc.Get("GitHash", nil)
	default:
		return loc.Get("GitIO", nil)
	}
}
