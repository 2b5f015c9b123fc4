package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
)

func TestLookupDocumentScopeFirst(t *testing.T) {
	table := DefaultCandidateTable()

	candidates := table.Lookup("commercial_invoice", "invoice_no")
	require.NotEmpty(t, candidates)
	assert.NotContains(t, candidates, "REFERANCE",
		"commercial invoice must not take its invoice number from the shipment reference")

	// other documents fall back to the common entry
	common := table.Lookup("packing_list", "invoice_no")
	assert.Contains(t, common, "REFERANCE")
}

func TestLookupUnknownFieldReturnsEmpty(t *testing.T) {
	table := DefaultCandidateTable()
	assert.Empty(t, table.Lookup("commercial_invoice", "no_such_field"))
	assert.Empty(t, table.Lookup("no_such_document", "no_such_field"))
}

func TestLookupUnknownDocumentFallsBackToCommon(t *testing.T) {
	table := DefaultCandidateTable()
	assert.NotEmpty(t, table.Lookup("no_such_document", "consignee_name"))
}

func TestDefaultTableCoversDefaultRegistry(t *testing.T) {
	// Every field the default schema declares (apart from the reference
	// input) must have at least one candidate; a gap means a form field
	// that silently never auto-fills.
	table := DefaultCandidateTable()
	gaps := table.UnmappedFields(schema.Default())
	assert.Empty(t, gaps)
}

func TestUnmappedFieldsReportsGaps(t *testing.T) {
	table := CandidateTable{Common: map[string][]string{"invoice_no": {"INVOICE_NO"}}}
	reg := schema.NewRegistry([]schema.Profile{{
		Type:         "delivery_note",
		ReferenceKey: "reference",
		Fields: []schema.Field{
			{Key: "reference"},
			{Key: "invoice_no"},
			{Key: "consignee_name"},
		},
	}})

	gaps := table.UnmappedFields(reg)
	require.Len(t, gaps, 1)
	assert.Equal(t, []string{"consignee_name"}, gaps["delivery_note"])
}
