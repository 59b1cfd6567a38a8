// Package provider holds the provider-neutral shapes of a dictionary lookup
// and the pure helpers that turn an entry into render-ready text.
package provider

// OutcomeKind tells which of the three lookup result shapes was returned.
type OutcomeKind int

const (
	// OutcomeNotFound means neither entries nor suggestions could be read.
	OutcomeNotFound OutcomeKind = iota
	// OutcomeEntries means the API returned at least one real entry.
	OutcomeEntries
	// OutcomeSuggestions means the API returned a flat list of spellings.
	OutcomeSuggestions
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEntries:
		return "entries"
	case OutcomeSuggestions:
		return "suggestions"
	default:
		return "not_found"
	}
}

// LookupOutcome is the classified result of one lookup. Exactly one of
// Entries or Suggestions is non-empty, or both are empty for OutcomeNotFound.
type LookupOutcome struct {
	Kind        OutcomeKind
	Entries     []DictionaryEntry
	Suggestions []string
}

// EntriesOutcome wraps a non-empty list of entries.
func EntriesOutcome(entries []DictionaryEntry) LookupOutcome {
	return LookupOutcome{Kind: OutcomeEntries, Entries: entries}
}

// SuggestionsOutcome wraps a non-empty list of spelling suggestions.
func SuggestionsOutcome(suggestions []string) LookupOutcome {
	return LookupOutcome{Kind: OutcomeSuggestions, Suggestions: suggestions}
}

// NotFoundOutcome is the empty outcome.
func NotFoundOutcome() LookupOutcome {
	return LookupOutcome{Kind: OutcomeNotFound}
}

// DictionaryEntry is one headword result from an external dictionary.
type DictionaryEntry struct {
	ID               string
	Headword         string
	PartOfSpeech     *string
	Pronunciations   []*string
	DefinitionGroups []DefinitionGroup
	ShortDefinitions []string
	Etymology        [][]string
	CrossReferences  []CrossReference
}

// IsSuggestionMarker reports whether the entry is the upstream's disguised
// "no exact match" wrapper: an empty id and no part of speech.
func (e DictionaryEntry) IsSuggestionMarker() bool {
	return e.ID == "" && e.PartOfSpeech == nil
}

// DefinitionGroup is one definition section. Sequences holds the sense
// sequences of the section; each sequence is an ordered list of items.
type DefinitionGroup struct {
	Sequences [][]SequenceItem
}

// ItemKind discriminates sequence items.
type ItemKind int

const (
	// ItemIgnored is any item whose tag is not consumed (pseq, bs, sen, ...).
	ItemIgnored ItemKind = iota
	// ItemSense is a "sense" item with a parsed Sense.
	ItemSense
)

// SequenceItem is one positional [tag, payload] element of a sense sequence.
type SequenceItem struct {
	Kind  ItemKind
	Tag   string
	Sense *Sense
}

// Sense is one numbered meaning of a headword.
type Sense struct {
	Number          *string
	DefinitionTexts []DefinitionText
}

// FirstText returns the text of the first definition pair, if present.
func (s *Sense) FirstText() (string, bool) {
	if s == nil || len(s.DefinitionTexts) == 0 || s.DefinitionTexts[0].Text == nil {
		return "", false
	}
	return *s.DefinitionTexts[0].Text, true
}

// DefinitionText is a [tag, text] pair; Text is nil when the second slot is
// missing or not a string.
type DefinitionText struct {
	Tag  string
	Text *string
}

// CrossReference points to related terms.
type CrossReference struct {
	Label   *string
	Targets []*string
}
