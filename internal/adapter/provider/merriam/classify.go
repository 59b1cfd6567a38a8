package merriam

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// Classify turns a Collegiate response body into one of the three lookup
// outcomes. The entry and suggestion decodes are independent attempts: a
// failed entry decode always falls through to the suggestion decode.
//
// A body that is not JSON at all is reported as provider.ErrTransport.
func Classify(body []byte) (provider.LookupOutcome, error) {
	if !json.Valid(body) {
		return provider.NotFoundOutcome(), fmt.Errorf("%w: body is not valid JSON", provider.ErrTransport)
	}

	if entries, err := decodeEntries(body); err == nil && len(entries) > 0 {
		if !(len(entries) == 1 && entries[0].IsSuggestionMarker()) {
			return provider.EntriesOutcome(entries), nil
		}
	}

	if suggestions, ok := decodeSuggestions(body); ok && len(suggestions) > 0 {
		return provider.SuggestionsOutcome(suggestions), nil
	}

	return provider.NotFoundOutcome(), nil
}

// decodeSuggestions reads an array of plain strings. Any element that is not
// a string, null included, fails the whole attempt.
func decodeSuggestions(body []byte) ([]string, bool) {
	var elems []json.RawMessage
	if json.Unmarshal(body, &elems) != nil {
		return nil, false
	}
	out := make([]string, 0, len(elems))
	for _, el := range elems {
		s := optionalString(el)
		if s == nil {
			return nil, false
		}
		out = append(out, *s)
	}
	return out, true
}
