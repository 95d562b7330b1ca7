package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maple/internal/domain"
	"maple/internal/infrastructure/i18n"
)

func baseLoader(t *testing.T) *i18n.Loader {
	t.Helper()
	loader, err := i18n.Load("")
	require.NoError(t, err)
	return loader
}

func TestAggregateRendersHeaderAndBullets(t *testing.T) {
	loc := baseLoader(t)
	sub := []*domain.ResolveError{
		{Kind: domain.ResolveMissing, Package: "foo"},
		{Kind: domain.ResolveCycle, Package: "bar"},
		{Kind: domain.ResolveVCS, VCS: &domain.VCSError{Kind: domain.VCSClone, Path: "/build/foo"}},
	}
	agg := &domain.ResolveError{Kind: domain.ResolveAggregate, Sub: sub}

	out := agg.Localise(loc)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(sub)+1)

	assert.Equal(t, "Multiple errors occurred during dependency resolution:", lines[0])
	for i, s := range sub {
		assert.Equal(t, " - "+s.Localise(loc), lines[i+1])
		assert.NotEmpty(t, lines[i+1])
	}
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestEmptyAggregateRendersHeaderOnly(t *testing.T) {
	agg := &domain.ResolveError{Kind: domain.ResolveAggregate}
	out := agg.Localise(baseLoader(t))

	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "\n")
}

func TestMissingWithParentBindsBothIdentifiers(t *testing.T) {
	err := &domain.ResolveError{
		Kind:    domain.ResolveMissingParent,
		Package: "foo",
		Parent:  "bar",
	}

	msg := err.Localise(baseLoader(t))
	assert.Equal(t, "The package foo, required by bar, does not exist.", msg)
}

func TestWrappingVariantsDelegateUnchanged(t *testing.T) {
	loc := baseLoader(t)
	vcs := &domain.VCSError{Kind: domain.VCSPull, Path: "/var/cache/maple/foo"}
	remote := &domain.RemoteError{Kind: domain.RemoteVCS, VCS: vcs}
	resolve := &domain.ResolveError{Kind: domain.ResolveRemote, Remote: remote}
	direct := &domain.ResolveError{Kind: domain.ResolveVCS, VCS: vcs}

	want := vcs.Localise(loc)
	assert.Equal(t, want, remote.Localise(loc))
	assert.Equal(t, want, resolve.Localise(loc))
	assert.Equal(t, want, direct.Localise(loc))
}

func TestCauseChainSurvivesWrapping(t *testing.T) {
	cause := errors.New("device offline")
	vcs := &domain.VCSError{Kind: domain.VCSIO, Err: cause}
	resolve := &domain.ResolveError{Kind: domain.ResolveVCS, VCS: vcs}

	assert.ErrorIs(t, resolve, cause)

	// The localized form never leaks the raw cause.
	msg := resolve.Localise(baseLoader(t))
	assert.NotContains(t, msg, "device offline")
}

func TestWrappingKindsWithoutPayloadStillRenderWhole(t *testing.T) {
	loc := baseLoader(t)
	fallback := loc.Get("GitIO", nil)

	for _, err := range []domain.Localised{
		&domain.ResolveError{Kind: domain.ResolveRemote},
		&domain.ResolveError{Kind: domain.ResolveVCS},
		&domain.RemoteError{Kind: domain.RemoteVCS},
	} {
		msg := err.Localise(loc)
		assert.Equal(t, fallback, msg, "%T", err)
		assert.NotContains(t, msg, "{{")
	}
}

func TestEveryKindRendersNonEmptyInEveryLanguage(t *testing.T) {
	all, err := i18n.LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	samples := []domain.Localised{
		&domain.VCSError{Kind: domain.VCSIO, Err: errors.New("io")},
		&domain.VCSError{Kind: domain.VCSClone, Path: "/p"},
		&domain.VCSError{Kind: domain.VCSPull, Path: "/p"},
		&domain.VCSError{Kind: domain.VCSDiff, Path: "/p"},
		&domain.VCSError{Kind: domain.VCSReadHash},
		&domain.RemoteError{Kind: domain.RemoteFetch, Package: "p"},
		&domain.RemoteError{Kind: domain.RemoteUnknown, Package: "p"},
		&domain.RemoteError{Kind: domain.RemoteTooMany, Package: "p"},
		&domain.ResolveError{Kind: domain.ResolveLockPoisoned},
		&domain.ResolveError{Kind: domain.ResolvePoolExhausted},
		&domain.ResolveError{Kind: domain.ResolveManifest, Path: "/p/.SRCINFO"},
		&domain.ResolveError{Kind: domain.ResolveAggregate, Sub: []*domain.ResolveError{
			{Kind: domain.ResolveMissing, Package: "p"},
		}},
		&domain.ResolveError{Kind: domain.ResolveMissing, Package: "p"},
		&domain.ResolveError{Kind: domain.ResolveMissingParent, Package: "p", Parent: "q"},
		&domain.ResolveError{Kind: domain.ResolveMalformedGraph},
		&domain.ResolveError{Kind: domain.ResolveCycle, Package: "p"},
	}

	for tag, loc := range all {
		for _, sample := range samples {
			msg := sample.Localise(loc)
			assert.NotEmpty(t, msg, "%T renders empty in %s", sample, tag)
			assert.NotContains(t, msg, "{{", "%T leaks a template in %s", sample, tag)
		}
	}
}
