package provider

// DefaultSenseLabel is used for senses that carry no number.
const DefaultSenseLabel = "•"

// DefinitionLine is one render-ready definition of an entry.
type DefinitionLine struct {
	Label string
	Text  string
}

// Normalize flattens the entry's definition groups into definition lines in
// their original order. Items that are not senses, or whose first definition
// pair has no text, are skipped.
func Normalize(entry DictionaryEntry) []DefinitionLine {
	lines := make([]DefinitionLine, 0)

	for _, group := range entry.DefinitionGroups {
		for _, seq := range group.Sequences {
			for _, item := range seq {
				if item.Kind != ItemSense || item.Sense == nil {
					continue
				}
				text, ok := item.Sense.FirstText()
				if !ok {
					continue
				}

				label := DefaultSenseLabel
				if item.Sense.Number != nil {
					label = *item.Sense.Number
				}

				lines = append(lines, DefinitionLine{
					Label: label,
					Text:  StripMarkup(text),
				})
			}
		}
	}

	return lines
}

// Etymology returns the cleaned last token of the first etymology group.
func Etymology(entry DictionaryEntry) (string, bool) {
	if len(entry.Etymology) == 0 || len(entry.Etymology[0]) == 0 {
		return "", false
	}
	first := entry.Etymology[0]
	return StripMarkup(first[len(first)-1]), true
}

// FirstPronunciation returns the first present pronunciation.
func FirstPronunciation(entry DictionaryEntry) (string, bool) {
	if len(entry.Pronunciations) == 0 || entry.Pronunciations[0] == nil {
		return "", false
	}
	return *entry.Pronunciations[0], true
}

// RelatedTerms returns the first target of every cross-reference that has one.
func RelatedTerms(entry DictionaryEntry) []string {
	terms := make([]string, 0, len(entry.CrossReferences))
	for _, cx := range entry.CrossReferences {
		if len(cx.Targets) == 0 || cx.Targets[0] == nil {
			continue
		}
		terms = append(terms, *cx.Targets[0])
	}
	return terms
}
