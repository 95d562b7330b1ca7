package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyRequestBindsBaseLanguage(t *testing.T) {
	def, err := Load("")
	require.NoError(t, err)
	base, err := Load(BaseLanguage.String())
	require.NoError(t, err)

	assert.Equal(t, BaseLanguage, def.Tag())
	assert.Equal(t, base.Tag(), def.Tag())
	assert.Equal(t,
		base.Get("GitHash", nil),
		def.Get("GitHash", nil),
	)
}

func TestLoadUnsupportedRequestFallsBack(t *testing.T) {
	for _, requested := range []string{"pt-BR", "zu-ZA", "!!not-a-tag"} {
		loader, err := Load(requested)
		require.NoError(t, err)
		assert.Equal(t, BaseLanguage, loader.Tag(), "request %q", requested)
	}
}

func TestLoadSupportedRequestBindsExactly(t *testing.T) {
	loader, err := Load("fr-FR")
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", loader.Tag().String())
}

func TestLoadAllMatchesAvailableLanguages(t *testing.T) {
	tags, err := AvailableLanguages()
	require.NoError(t, err)
	all, err := LoadAll()
	require.NoError(t, err)

	require.Len(t, all, len(tags))
	for _, tag := range tags {
		loader, ok := all[tag]
		require.True(t, ok, "no loader for %s", tag)
		assert.Equal(t, tag, loader.Tag())
	}
}

func TestAvailableLanguagesStrictlyAscending(t *testing.T) {
	tags, err := AvailableLanguages()
	require.NoError(t, err)
	require.NotEmpty(t, tags)

	for i := 1; i < len(tags); i++ {
		assert.Less(t, tags[i-1].String(), tags[i].String())
	}
}

func TestGetInterpolatesPlaceholders(t *testing.T) {
	loader, err := Load("fr-FR")
	require.NoError(t, err)

	msg := loader.Get("ResolveMissing", map[string]any{"Package": "maple-git"})
	assert.Contains(t, msg, "maple-git")
	assert.NotContains(t, msg, "{{")
}

func TestGetFallsBackToBaseCatalog(t *testing.T) {
	// ja-JP ships a partial catalog on purpose; ids it lacks resolve
	// through en-US.
	loader, err := Load("ja-JP")
	require.NoError(t, err)

	msg := loader.Get("GitHash", nil)
	assert.Equal(t, "Failed to read a git hash.", msg)
}

func TestGetUnknownIdRendersAsItself(t *testing.T) {
	loader, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "NoSuchMessage", loader.Get("NoSuchMessage", nil))
	assert.Equal(t, "", loader.Get("", nil))
}
