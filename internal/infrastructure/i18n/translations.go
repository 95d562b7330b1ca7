package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"maple/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// BaseLanguage is the language every other catalog must be a subset of,
// and the fallback when no usable language is requested.
var BaseLanguage = language.MustParse("en-US")

// Ensure Loader implements the output.Localizer port.
var _ output.Localizer = (*Loader)(nil)

// Loader resolves message ids to formatted strings for a single language.
// Ids missing from the bound catalog resolve through the base catalog, so
// any Loader can render the full message vocabulary.
type Loader struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// catalog is one language's messages. name is the tag exactly as written
// in the entry name; tag is its parsed form, used for bundle registration
// and request matching. For unregistered tags the two can differ
// (language.Parse folds an unknown primary subtag into "und"), so name is
// the identity catalogs are keyed and reported by.
type catalog struct {
	name string
	tag  language.Tag
	msgs map[string]string
}

// store holds the parsed catalogs. It is built once and never mutated
// afterwards, so it may be shared across any number of readers.
type store struct {
	bundle   *i18n.Bundle
	catalogs []catalog // ascending by name
}

var embedded = sync.OnceValues(func() (*store, error) {
	return newStore(localeFS)
})

// newStore parses every catalog entry in fsys. Entry names follow the
// active.<tag>.toml convention; entries whose tag does not parse are
// skipped. Any malformed catalog aborts the whole load.
func newStore(fsys fs.FS) (*store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: reading embedded catalogs: %w", err)
	}

	s := &store{
		bundle: i18n.NewBundle(BaseLanguage),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		raw := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".toml")
		tag, err := language.Parse(raw)
		if err != nil {
			// Well-formed but unregistered tags (test locales) still get a
			// catalog, keyed by the raw name; anything malformed is skipped.
			var verr language.ValueError
			if !errors.As(err, &verr) {
				continue
			}
		}
		if s.findName(raw) != nil {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("i18n: reading %s: %w", name, err)
		}

		var msgs map[string]string
		if err := toml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("i18n: parsing %s: %w", name, err)
		}

		templates := make([]*i18n.Message, 0, len(msgs))
		for id, other := range msgs {
			templates = append(templates, &i18n.Message{ID: id, Other: other})
		}
		if err := s.bundle.AddMessages(tag, templates...); err != nil {
			return nil, fmt.Errorf("i18n: loading %s: %w", name, err)
		}

		s.catalogs = append(s.catalogs, catalog{name: raw, tag: tag, msgs: msgs})
	}

	sort.Slice(s.catalogs, func(i, j int) bool {
		return s.catalogs[i].name < s.catalogs[j].name
	})

	if s.findTag(BaseLanguage) == nil {
		return nil, fmt.Errorf("i18n: base catalog %s is missing", BaseLanguage)
	}

	return s, nil
}

func (s *store) findName(name string) *catalog {
	for i := range s.catalogs {
		if s.catalogs[i].name == name {
			return &s.catalogs[i]
		}
	}
	return nil
}

func (s *store) findTag(tag language.Tag) *catalog {
	for i := range s.catalogs {
		if s.catalogs[i].tag == tag {
			return &s.catalogs[i]
		}
	}
	return nil
}

func (s *store) loader(tag language.Tag) *Loader {
	return &Loader{
		tag:       tag,
		localizer: i18n.NewLocalizer(s.bundle, tag.String()),
	}
}

// resolve maps a requested language to a catalog we actually carry,
// falling back to the base language for empty, unparseable or unsupported
// requests.
func (s *store) resolve(requested string) language.Tag {
	if requested == "" {
		return BaseLanguage
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLanguage
	}
	if s.findTag(tag) == nil {
		return BaseLanguage
	}
	return tag
}

// Load builds a Loader for the requested language (e.g. "fr-FR"), or for
// the base language when the request is empty or has no catalog.
//
// Catalog parse failures surface here and are fatal: they mean the binary
// was built with broken translations.
func Load(requested string) (*Loader, error) {
	s, err := embedded()
	if err != nil {
		return nil, err
	}
	return s.loader(s.resolve(requested)), nil
}

// LoadAll builds one Loader per available language.
//
// There is no guarantee about which language ends up the default when the
// result is iterated, so this shouldn't be used for normal localization;
// call Load instead.
func LoadAll() (map[language.Tag]*Loader, error) {
	s, err := embedded()
	if err != nil {
		return nil, err
	}
	loaders := make(map[language.Tag]*Loader, len(s.catalogs))
	for _, c := range s.catalogs {
		loaders[c.tag] = s.loader(c.tag)
	}
	return loaders, nil
}

// AvailableLanguages lists the languages maple has catalogs for
// (e.g. en-US), in ascending order. The order is for deterministic
// listing only and implies no priority.
func AvailableLanguages() ([]language.Tag, error) {
	s, err := embedded()
	if err != nil {
		return nil, err
	}
	tags := make([]language.Tag, 0, len(s.catalogs))
	for _, c := range s.catalogs {
		tags = append(tags, c.tag)
	}
	return tags, nil
}

// Tag reports the language the Loader is bound to.
func (l *Loader) Tag() language.Tag {
	return l.tag
}

// Get renders the message identified by id. Ids absent from the bound
// catalog fall back to the base catalog; an id outside the known
// vocabulary renders as itself so that rendering never fails.
func (l *Loader) Get(id string, data map[string]any) string {
	if id == "" {
		return ""
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg != "" {
		// go-i18n reports base-language fallback as a not-found error while
		// still returning the rendered message; the message wins.
		return msg
	}
	if err != nil {
		slog.Warn("i18n: localize failed", "id", id, "lang", l.tag.String(), "error", err)
	}
	return id
}
