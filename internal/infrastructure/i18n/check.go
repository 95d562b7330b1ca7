package i18n

import "sort"

// Violation records a message id defined for a language but absent from
// the base catalog. Such an id could never be rendered on purpose, so it
// is either a typo or a leftover from a removed message. Lang is the tag
// exactly as written in the catalog entry name.
type Violation struct {
	Lang string
	ID   string
}

// Check verifies that every non-base catalog only defines message ids the
// base catalog also defines. A nil result means the catalogs are
// consistent. Inconsistency is a defect in the shipped translations, not
// a runtime condition.
func Check() ([]Violation, error) {
	s, err := embedded()
	if err != nil {
		return nil, err
	}
	return s.check(), nil
}

func (s *store) check() []Violation {
	base := s.findTag(BaseLanguage).msgs

	var violations []Violation
	for _, c := range s.catalogs {
		if c.tag == BaseLanguage {
			continue
		}
		var extra []string
		for id := range c.msgs {
			if _, ok := base[id]; !ok {
				extra = append(extra, id)
			}
		}
		sort.Strings(extra)
		for _, id := range extra {
			violations = append(violations, Violation{Lang: c.name, ID: id})
		}
	}
	return violations
}
