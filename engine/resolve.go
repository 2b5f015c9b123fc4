package engine

import (
	"strings"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
)

// ResolvedValue is the resolver's answer for one form field: a
// source-derived value, or an explicit unresolved marker when no candidate
// matched. SourceKey names the record key the value came from, for the
// caller's "what changed" feedback.
type ResolvedValue struct {
	Value     string `json:"value"`
	SourceKey string `json:"source_key,omitempty"`
	Resolved  bool   `json:"resolved"`
}

// ResolveReport is the output of one resolution pass. Values holds an entry
// for every considered field. Changed lists, in form order, the fields whose
// resolved value differs from what the form currently shows; Filled counts
// every resolved field.
type ResolveReport struct {
	Values  map[string]ResolvedValue `json:"values"`
	Changed []string                 `json:"changed"`
	Filled  int                      `json:"filled"`
}

// ResolveFields resolves every field of the profile from the composite
// record via the candidate table. The reference input field itself is
// skipped so auto-fill never overwrites the token the user just typed.
//
// Resolution is additive: a field with no candidate match keeps whatever
// value the form currently holds (current is read, never written). Two
// passes over the same composite yield identical reports.
func ResolveFields(table CandidateTable, profile schema.Profile, composite Record, current map[string]string) ResolveReport {
	report := ResolveReport{Values: make(map[string]ResolvedValue, len(profile.Fields))}

	for _, field := range profile.Fields {
		if field.Key == profile.ReferenceKey {
			continue
		}

		candidates := table.Lookup(profile.Type, field.Key)
		value, sourceKey, ok := resolveFromRecord(composite, candidates)
		if !ok {
			report.Values[field.Key] = ResolvedValue{Resolved: false}
			continue
		}

		report.Values[field.Key] = ResolvedValue{Value: value, SourceKey: sourceKey, Resolved: true}
		report.Filled++
		if strings.TrimSpace(current[field.Key]) != value {
			report.Changed = append(report.Changed, field.Key)
		}
	}

	return report
}

// resolveFromRecord walks the candidate list in order and returns the first
// present-and-non-empty match along with the folded key it was found under.
func resolveFromRecord(rec Record, candidates []string) (value string, sourceKey string, ok bool) {
	for _, c := range candidates {
		folded := FoldKey(c)
		if v, present := rec.values[folded]; present && v != "" {
			return v, folded, true
		}
	}
	return "", "", false
}

// ApplyReport merges a resolve report over the form's current values,
// producing the value set the renderer should display. Unresolved fields
// keep their current values.
func ApplyReport(current map[string]string, report ResolveReport) map[string]string {
	out := make(map[string]string, len(current)+len(report.Values))
	for k, v := range current {
		out[k] = v
	}
	for k, rv := range report.Values {
		if rv.Resolved {
			out[k] = rv.Value
		}
	}
	return out
}
