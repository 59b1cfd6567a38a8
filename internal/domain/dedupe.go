package domain

// DedupeWords drops every record whose headword (compared case-insensitively)
// was already seen earlier in records. Survivors keep their relative order and
// the first occurrence is kept intact.
func DedupeWords(records []WordRecord) []WordRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]WordRecord, 0, len(records))

	for _, r := range records {
		key := DedupKey(r.Headword)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	return out
}
