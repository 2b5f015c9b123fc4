// Package engine implements the field mapping and aggregation core of the
// document center: locating a shipment by free-text reference, merging its
// linked item and client rows into a composite record, resolving every form
// field through the candidate-key table, and validating the resulting value
// set.
//
// The engine is synchronous and allocation-scoped: every call works on
// caller-supplied collections and returns caller-owned results, so
// concurrent invocations cannot interfere. Nothing here performs I/O and
// nothing is an error in the exceptional sense — not-found, unresolved and
// invalid are ordinary results.
package engine

import (
	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

// Dataset is the in-memory view of the three upstream collections, in
// stable insertion order. The persistence layer owns loading and caching;
// the engine only reads.
type Dataset struct {
	Shipments []Record `json:"shipments"`
	Items     []Record `json:"items"`
	Clients   []Record `json:"clients"`
}

// AutofillResult is the outcome of one end-to-end auto-fill. Found=false
// means the reference matched no shipment; the zero report accompanies it.
type AutofillResult struct {
	Found  bool          `json:"found"`
	Report ResolveReport `json:"report"`
}

// Engine binds the static configuration (schema registry, candidate table)
// with the validator. One instance serves all requests.
type Engine struct {
	registry  *schema.Registry
	table     CandidateTable
	validator *Validator
}

func New(registry *schema.Registry, table CandidateTable) *Engine {
	return &Engine{
		registry:  registry,
		table:     table,
		validator: NewValidator(),
	}
}

func (e *Engine) Registry() *schema.Registry {
	return e.registry
}

func (e *Engine) Table() CandidateTable {
	return e.table
}

// Autofill runs locate → aggregate → resolve for one reference token.
// current carries the form's present values so resolution stays additive.
// The only error is an unknown document type; a missing shipment is a
// normal Found=false result.
func (e *Engine) Autofill(docType string, referenceToken string, current map[string]string, ds Dataset) (AutofillResult, error) {
	profile, ok := e.registry.Get(docType)
	if !ok {
		return AutofillResult{}, utils.ErrorUnknownDocumentType
	}

	primary, found := Locate(referenceToken, ds.Shipments)
	if !found {
		return AutofillResult{Found: false}, nil
	}

	composite := Aggregate(primary, ds.Items, ds.Clients)
	report := ResolveFields(e.table, profile, composite, current)
	return AutofillResult{Found: true, Report: report}, nil
}

// CheckField validates a single field value for real-time feedback.
func (e *Engine) CheckField(docType string, fieldKey string, value string) (FieldResult, error) {
	profile, ok := e.registry.Get(docType)
	if !ok {
		return FieldResult{}, utils.ErrorUnknownDocumentType
	}
	return e.validator.CheckField(profile, fieldKey, value), nil
}

// CheckDocument validates a full value set against the document's profile.
func (e *Engine) CheckDocument(docType string, values map[string]string) (DocumentResult, error) {
	profile, ok := e.registry.Get(docType)
	if !ok {
		return DocumentResult{}, utils.ErrorUnknownDocumentType
	}
	return e.validator.CheckDocument(profile, values), nil
}
