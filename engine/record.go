package engine

import (
	"sort"
	"strings"

	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

// Upstream collections disagree about key casing and naming (the same invoice
// number arrives as REFERANCE, INVOICE_NO or ref_no depending on the feed).
// Record folds every key to upper case once at ingestion so every later
// lookup is a plain map access instead of a per-call case-insensitive scan.
//
// Records are read-only after construction. Values are stored trimmed;
// whitespace-only values count as absent for resolution purposes.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord normalizes one raw row. Raw keys are visited in sorted order so a
// fold collision (two raw keys differing only in case) resolves the same way
// on every run; upstream rows are not expected to contain such collisions.
func NewRecord(raw map[string]interface{}) Record {
	rawKeys := make([]string, 0, len(raw))
	for k := range raw {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	r := Record{values: make(map[string]string, len(raw))}
	for _, k := range rawKeys {
		folded := FoldKey(k)
		if folded == "" {
			continue
		}
		if _, seen := r.values[folded]; seen {
			continue
		}
		r.keys = append(r.keys, folded)
		r.values[folded] = utils.ScalarToString(raw[k])
	}
	return r
}

// NewRecordFromStrings is a convenience for already-stringly rows (tests,
// cached snapshots).
func NewRecordFromStrings(raw map[string]string) Record {
	m := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		m[k] = v
	}
	return NewRecord(m)
}

// FoldKey is the single normalization applied to every record key and every
// candidate key before comparison.
func FoldKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// Get returns the stored value for a key, matched case-insensitively.
// Present-but-empty values report ok=true; callers that need "present and
// non-empty" use First.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[FoldKey(key)]
	return v, ok
}

// First returns the value of the first candidate key that is present with a
// non-empty value. Candidates are tried strictly in order; empty and
// whitespace-only values are skipped and the scan continues.
func (r Record) First(candidates []string) (string, bool) {
	for _, c := range candidates {
		if v, ok := r.values[FoldKey(c)]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Keys returns the folded keys in first-seen order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int {
	return len(r.keys)
}

func (r Record) IsZero() bool {
	return len(r.keys) == 0
}

// Map returns a plain copy of the folded key/value pairs.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
