package merriam

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// senseTag is the only sequence item discriminant whose payload is consumed.
const senseTag = "sense"

var errMissingField = errors.New("missing required field")

// apiEntry mirrors one element of the Collegiate entry array. Every field is
// kept raw so that optional parts can fall back to absent on type mismatch
// instead of failing the whole entry.
type apiEntry struct {
	Meta     json.RawMessage `json:"meta"`
	Hwi      json.RawMessage `json:"hwi"`
	Fl       json.RawMessage `json:"fl"`
	Def      json.RawMessage `json:"def"`
	Shortdef json.RawMessage `json:"shortdef"`
	Et       json.RawMessage `json:"et"`
	Cxs      json.RawMessage `json:"cxs"`
}

type apiMeta struct {
	ID *string `json:"id"`
}

type apiHeadwordInfo struct {
	Hw  *string         `json:"hw"`
	Prs json.RawMessage `json:"prs"`
}

type apiPronunciation struct {
	Mw json.RawMessage `json:"mw"`
}

type apiDefinitionSection struct {
	Sseq json.RawMessage `json:"sseq"`
}

type apiSense struct {
	Sn json.RawMessage `json:"sn"`
	Dt json.RawMessage `json:"dt"`
}

type apiCrossReference struct {
	Cxl   json.RawMessage `json:"cxl"`
	Cxtis json.RawMessage `json:"cxtis"`
}

type apiCrossReferenceTarget struct {
	Cxt json.RawMessage `json:"cxt"`
}

// decodeEntries reads body as an entry array. It fails only when body is not
// an array of objects or when an element lacks meta.id or hwi.hw.
func decodeEntries(body []byte) ([]provider.DictionaryEntry, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("decode entry array: %w", err)
	}

	entries := make([]provider.DictionaryEntry, 0, len(raws))
	for i, raw := range raws {
		entry, err := decodeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeEntry(raw json.RawMessage) (provider.DictionaryEntry, error) {
	var e apiEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return provider.DictionaryEntry{}, err
	}

	var meta apiMeta
	if err := unmarshalPresent(e.Meta, &meta); err != nil {
		return provider.DictionaryEntry{}, fmt.Errorf("meta: %w", err)
	}
	if meta.ID == nil {
		return provider.DictionaryEntry{}, fmt.Errorf("meta.id: %w", errMissingField)
	}

	var hwi apiHeadwordInfo
	if err := unmarshalPresent(e.Hwi, &hwi); err != nil {
		return provider.DictionaryEntry{}, fmt.Errorf("hwi: %w", err)
	}
	if hwi.Hw == nil {
		return provider.DictionaryEntry{}, fmt.Errorf("hwi.hw: %w", errMissingField)
	}

	return provider.DictionaryEntry{
		ID:               *meta.ID,
		Headword:         *hwi.Hw,
		PartOfSpeech:     optionalString(e.Fl),
		Pronunciations:   decodePronunciations(hwi.Prs),
		DefinitionGroups: decodeDefinitionGroups(e.Def),
		ShortDefinitions: optionalStrings(e.Shortdef),
		Etymology:        decodeEtymology(e.Et),
		CrossReferences:  decodeCrossReferences(e.Cxs),
	}, nil
}

func decodePronunciations(raw json.RawMessage) []*string {
	elems := optionalArray(raw)
	prons := make([]*string, 0, len(elems))
	for _, el := range elems {
		var p apiPronunciation
		if json.Unmarshal(el, &p) != nil {
			prons = append(prons, nil)
			continue
		}
		prons = append(prons, optionalString(p.Mw))
	}
	return prons
}

func decodeDefinitionGroups(raw json.RawMessage) []provider.DefinitionGroup {
	elems := optionalArray(raw)
	groups := make([]provider.DefinitionGroup, 0, len(elems))
	for _, el := range elems {
		var section apiDefinitionSection
		if json.Unmarshal(el, &section) != nil {
			groups = append(groups, provider.DefinitionGroup{})
			continue
		}

		sequences := optionalArray(section.Sseq)
		group := provider.DefinitionGroup{Sequences: make([][]provider.SequenceItem, 0, len(sequences))}
		for _, seq := range sequences {
			rawItems := optionalArray(seq)
			items := make([]provider.SequenceItem, 0, len(rawItems))
			for _, item := range rawItems {
				items = append(items, decodeSequenceItem(item))
			}
			group.Sequences = append(group.Sequences, items)
		}
		groups = append(groups, group)
	}
	return groups
}

// decodeSequenceItem reads a positional [tag, payload] element. Slot 0 is the
// discriminant; only "sense" payloads are parsed, every other shape becomes an
// ignored item.
func decodeSequenceItem(raw json.RawMessage) provider.SequenceItem {
	slots := optionalArray(raw)
	if len(slots) == 0 {
		return provider.SequenceItem{Kind: provider.ItemIgnored}
	}

	tag := optionalString(slots[0])
	if tag == nil {
		return provider.SequenceItem{Kind: provider.ItemIgnored}
	}
	if *tag != senseTag {
		return provider.SequenceItem{Kind: provider.ItemIgnored, Tag: *tag}
	}

	item := provider.SequenceItem{Kind: provider.ItemSense, Tag: *tag}
	if len(slots) > 1 {
		item.Sense = decodeSense(slots[1])
	}
	return item
}

func decodeSense(raw json.RawMessage) *provider.Sense {
	var s apiSense
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}

	pairs := optionalArray(s.Dt)
	sense := &provider.Sense{
		Number:          optionalString(s.Sn),
		DefinitionTexts: make([]provider.DefinitionText, 0, len(pairs)),
	}
	for _, p := range pairs {
		sense.DefinitionTexts = append(sense.DefinitionTexts, decodeDefinitionText(p))
	}
	return sense
}

func decodeDefinitionText(raw json.RawMessage) provider.DefinitionText {
	slots := optionalArray(raw)
	var dt provider.DefinitionText
	if len(slots) == 0 {
		return dt
	}
	if tag := optionalString(slots[0]); tag != nil {
		dt.Tag = *tag
	}
	if len(slots) > 1 {
		dt.Text = optionalString(slots[1])
	}
	return dt
}

func decodeEtymology(raw json.RawMessage) [][]string {
	elems := optionalArray(raw)
	groups := make([][]string, 0, len(elems))
	for _, el := range elems {
		if optionalArray(el) == nil {
			continue
		}
		groups = append(groups, optionalStrings(el))
	}
	return groups
}

func decodeCrossReferences(raw json.RawMessage) []provider.CrossReference {
	elems := optionalArray(raw)
	refs := make([]provider.CrossReference, 0, len(elems))
	for _, el := range elems {
		var cx apiCrossReference
		if json.Unmarshal(el, &cx) != nil {
			refs = append(refs, provider.CrossReference{})
			continue
		}

		ref := provider.CrossReference{Label: optionalString(cx.Cxl)}
		for _, t := range optionalArray(cx.Cxtis) {
			var target apiCrossReferenceTarget
			if json.Unmarshal(t, &target) != nil {
				ref.Targets = append(ref.Targets, nil)
				continue
			}
			ref.Targets = append(ref.Targets, optionalString(target.Cxt))
		}
		refs = append(refs, ref)
	}
	return refs
}

// unmarshalPresent decodes a required object, treating absence and JSON null
// as a missing field.
func unmarshalPresent(raw json.RawMessage, v any) error {
	if isAbsent(raw) {
		return errMissingField
	}
	return json.Unmarshal(raw, v)
}

// optionalString returns nil for an absent, null, or non-string value.
func optionalString(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

// optionalArray returns the elements of raw, or nil when raw is not an array.
func optionalArray(raw json.RawMessage) []json.RawMessage {
	if isAbsent(raw) {
		return nil
	}
	var elems []json.RawMessage
	if json.Unmarshal(raw, &elems) != nil {
		return nil
	}
	return elems
}

// optionalStrings returns the string elements of raw in order; non-string
// elements are dropped.
func optionalStrings(raw json.RawMessage) []string {
	elems := optionalArray(raw)
	out := make([]string, 0, len(elems))
	for _, el := range elems {
		if s := optionalString(el); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
