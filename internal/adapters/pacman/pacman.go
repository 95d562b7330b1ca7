// Package pacman shells out to pacman, optionally through sudo, and maps
// its failures onto a small error taxonomy.
package pacman

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"maple/internal/domain"
	"maple/internal/ports/output"
)

// ErrorKind classifies a failed pacman invocation.
type ErrorKind int

const (
	// KindExternalCmd means pacman (or sudo) could not be spawned at all.
	KindExternalCmd ErrorKind = iota
	// KindMisc means the call ran but exited non-zero.
	KindMisc
	// KindInstallFromTarball replaces any failure of a pacman -U call.
	KindInstallFromTarball
	// KindInstallFromRepos replaces any failure of a pacman -S call.
	KindInstallFromRepos
)

var _ domain.Localised = (*Error)(nil)

// Error is a failed pacman invocation. Err is only set for
// KindExternalCmd and carries the spawn cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindExternalCmd:
		return fmt.Sprintf("pacman: spawning failed: %v", e.Err)
	case KindInstallFromTarball:
		return "pacman: -U call failed"
	case KindInstallFromRepos:
		return "pacman: -S call failed"
	default:
		return "pacman: exited non-zero"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Localise renders the failure for the user. Spawn causes stay out of the
// message; they are logged where the error is produced.
func (e *Error) Localise(loc output.Localizer) string {
	switch e.Kind {
	case KindExternalCmd:
		return loc.Get("PacmanExternal", nil)
	case KindInstallFromTarball:
		return loc.Get("PacmanInstallTarball", nil)
	case KindInstallFromRepos:
		return loc.Get("PacmanInstallRepos", nil)
	default:
		return loc.Get("PacmanMisc", nil)
	}
}

// Runner invokes pacman with inherited standard streams. Every call
// blocks until the spawned process exits; there is no timeout.
type Runner struct {
	bin  string
	sudo string
}

// New returns a Runner bound to the system pacman and sudo.
func New() *Runner {
	return &Runner{bin: "pacman", sudo: "sudo"}
}

// Run makes an unprivileged pacman call.
func (r *Runner) Run(args ...string) error {
	return r.call(r.bin, args)
}

// RunElevated makes an elevated pacman call with a fixed subcommand,
// e.g. sudo pacman -S <flags> <args>.
func (r *Runner) RunElevated(subcommand string, flags, args []string) error {
	full := make([]string, 0, 2+len(flags)+len(args))
	full = append(full, r.bin, subcommand)
	full = append(full, flags...)
	full = append(full, args...)
	return r.call(r.sudo, full)
}

// RunElevatedBatch makes an elevated pacman call, passing every argument
// through as-is.
func (r *Runner) RunElevatedBatch(args ...string) error {
	return r.call(r.sudo, append([]string{r.bin}, args...))
}

// InstallFromTarball calls sudo pacman -U. Any failure of the inner call
// is relabelled as KindInstallFromTarball.
func (r *Runner) InstallFromTarball(flags, packages []string) error {
	return relabel(r.RunElevated("-U", flags, packages), KindInstallFromTarball)
}

// InstallFromRepos calls sudo pacman -S. Any failure of the inner call is
// relabelled as KindInstallFromRepos.
func (r *Runner) InstallFromRepos(flags, packages []string) error {
	return relabel(r.RunElevated("-S", flags, packages), KindInstallFromRepos)
}

func (r *Runner) call(bin string, args []string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return &Error{Kind: KindMisc}
	}
	return &Error{Kind: KindExternalCmd, Err: err}
}

// relabel logs the full detail of err, then substitutes the coarser kind
// so the user-facing message stays stable across causes.
func relabel(err error, kind ErrorKind) error {
	if err == nil {
		return nil
	}
	slog.Error("pacman call failed", "error", err)
	return &Error{Kind: kind}
}
