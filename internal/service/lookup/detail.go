package lookup

import (
	"strings"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// EntryView is the display projection of one dictionary entry.
type EntryView struct {
	ID            string
	Headword      string
	PartOfSpeech  string
	Pronunciation string
	Preview       string
	Definitions   []provider.DefinitionLine
	Etymology     string
	RelatedTerms  []string
}

// Detail projects entry into an EntryView. Absent optional parts become
// empty strings or empty slices.
func Detail(entry provider.DictionaryEntry) EntryView {
	view := EntryView{
		ID:           entry.ID,
		Headword:     provider.StripMarkup(entry.Headword),
		Preview:      Preview(entry),
		Definitions:  provider.Normalize(entry),
		RelatedTerms: provider.RelatedTerms(entry),
	}
	if entry.PartOfSpeech != nil {
		view.PartOfSpeech = *entry.PartOfSpeech
	}
	if pron, ok := provider.FirstPronunciation(entry); ok {
		view.Pronunciation = pron
	}
	if ety, ok := provider.Etymology(entry); ok {
		view.Etymology = ety
	}
	return view
}

// Details projects every entry in order.
func Details(entries []provider.DictionaryEntry) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, Detail(e))
	}
	return views
}

// Preview renders the one-line list summary "(fl) - shortdef". It is empty
// unless the entry has both a part of speech and a short definition.
func Preview(entry provider.DictionaryEntry) string {
	if entry.PartOfSpeech == nil || len(entry.ShortDefinitions) == 0 {
		return ""
	}
	def := strings.ReplaceAll(entry.ShortDefinitions[0], "{bc}", "")
	return "(" + *entry.PartOfSpeech + ") - " + def
}
