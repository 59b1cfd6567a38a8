package words

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// OtherSection collects headwords that do not start with a letter.
const OtherSection = "#"

// Section is one alphabetical group of the catalog.
type Section struct {
	Letter string
	Words  []domain.WordRecord
}

// Catalog returns saved words and the configured word list merged into one
// alphabetical list. A saved word shadows a list word with the same headword.
func (s *Service) Catalog(ctx context.Context) ([]domain.WordRecord, error) {
	saved, err := s.words.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	listed, err := s.list.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}

	all := make([]domain.WordRecord, 0, len(saved)+len(listed))
	all = append(all, saved...)
	all = append(all, listed...)

	catalog := domain.DedupeWords(all)
	sort.SliceStable(catalog, func(i, j int) bool {
		return domain.DedupKey(catalog[i].Headword) < domain.DedupKey(catalog[j].Headword)
	})
	return catalog, nil
}

// GroupByInitial splits words into sections keyed by their uppercased first
// letter, in the order the words are given. Words starting with anything
// other than a letter go to OtherSection, which comes last.
func GroupByInitial(words []domain.WordRecord) []Section {
	index := make(map[string]int)
	sections := make([]Section, 0)
	var other []domain.WordRecord

	for _, w := range words {
		letter := initial(w.Headword)
		if letter == OtherSection {
			other = append(other, w)
			continue
		}
		i, ok := index[letter]
		if !ok {
			i = len(sections)
			index[letter] = i
			sections = append(sections, Section{Letter: letter})
		}
		sections[i].Words = append(sections[i].Words, w)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Letter < sections[j].Letter
	})

	if len(other) > 0 {
		sections = append(sections, Section{Letter: OtherSection, Words: other})
	}
	return sections
}

func initial(headword string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(headword))
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return OtherSection
	}
	return string(unicode.ToUpper(r))
}
