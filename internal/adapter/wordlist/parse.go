// Package wordlist loads vocabulary word lists from the bundled data file,
// a local file, or the remote word list endpoint.
package wordlist

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

//go:embed data/words.json
var bundled []byte

// rawWord is one element of a word list file. Both the app's camelCase keys
// and the server's snake_case keys are accepted.
type rawWord struct {
	Word         *string         `json:"word"`
	Meaning      *string         `json:"meaning"`
	Sentence     *string         `json:"sentence"`
	Source       json.RawMessage `json:"source"`
	IsLearned    json.RawMessage `json:"isLearned"`
	CreationDate json.RawMessage `json:"creationDate"`
	CreatedAt    json.RawMessage `json:"creation_date"`
	CustomID     json.RawMessage `json:"customID"`
	ID           json.RawMessage `json:"id"`
}

// Parse decodes a word list. word, meaning, and sentence are required on
// every element; a missing one fails the whole list. Optional fields that are
// absent or malformed take their defaults: source "Default Source", creation
// time now, a fresh identifier.
func Parse(data []byte, now func() time.Time) ([]domain.WordRecord, error) {
	if now == nil {
		now = time.Now
	}

	var raws []rawWord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("wordlist: decode: %w", err)
	}

	records := make([]domain.WordRecord, 0, len(raws))
	for i, r := range raws {
		rec, err := r.toRecord(now)
		if err != nil {
			return nil, fmt.Errorf("wordlist: element %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r rawWord) toRecord(now func() time.Time) (domain.WordRecord, error) {
	switch {
	case r.Word == nil:
		return domain.WordRecord{}, fmt.Errorf("word is required")
	case r.Meaning == nil:
		return domain.WordRecord{}, fmt.Errorf("meaning is required")
	case r.Sentence == nil:
		return domain.WordRecord{}, fmt.Errorf("sentence is required")
	}

	source := domain.DefaultWordSource
	if s, ok := decodeString(r.Source); ok {
		source = s
	}

	created, ok := decodeTime(r.CreationDate)
	if !ok {
		created, ok = decodeTime(r.CreatedAt)
	}
	if !ok {
		created = now()
	}
	created = created.UTC()

	id, ok := decodeID(r.CustomID)
	if !ok {
		id, ok = decodeID(r.ID)
	}
	if !ok {
		id = uuid.New()
	}

	// anything but a JSON boolean reads as not learned
	learned, _ := decodeBool(r.IsLearned)

	return domain.WordRecord{
		ID:              id,
		Headword:        strings.TrimSpace(*r.Word),
		Meaning:         strings.TrimSpace(*r.Meaning),
		ExampleSentence: strings.TrimSpace(*r.Sentence),
		Source:          &source,
		IsLearned:       learned,
		CreatedAt:       created,
		UpdatedAt:       created,
	}, nil
}

// Bundled returns the word list shipped with the binary.
func Bundled() ([]domain.WordRecord, error) {
	return Parse(bundled, time.Now)
}

// LoadFile parses the word list at path.
func LoadFile(path string) ([]domain.WordRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}
	return Parse(data, time.Now)
}

// Load returns the word list at path, or the bundled list when path is empty.
func Load(path string) ([]domain.WordRecord, error) {
	if path == "" {
		return Bundled()
	}
	return LoadFile(path)
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

func decodeBool(raw json.RawMessage) (bool, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return false, false
	}
	var b bool
	if json.Unmarshal(raw, &b) != nil {
		return false, false
	}
	return b, true
}

// decodeTime accepts RFC 3339 strings and Apple reference-date seconds.
func decodeTime(raw json.RawMessage) (time.Time, bool) {
	if s, ok := decodeString(raw); ok {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	var secs float64
	if len(raw) == 0 || string(raw) == "null" || json.Unmarshal(raw, &secs) != nil {
		return time.Time{}, false
	}
	if math.Abs(secs) > maxReferenceSeconds {
		return time.Time{}, false
	}
	return appleEpoch.Add(time.Duration(secs * float64(time.Second))), true
}

// appleEpoch is the reference date of numeric creationDate values.
var appleEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// maxReferenceSeconds is the largest offset from appleEpoch a time.Duration
// can hold, roughly 292 years.
const maxReferenceSeconds = float64(math.MaxInt64 / int64(time.Second))

// decodeID parses a UUID. Other non-empty strings map to a name-based UUID so
// that the same server identifier always yields the same record ID.
func decodeID(raw json.RawMessage) (uuid.UUID, bool) {
	s, ok := decodeString(raw)
	s = strings.TrimSpace(s)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	if id, err := uuid.Parse(s); err == nil {
		return id, true
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("lexicology:word:"+s)), true
}
