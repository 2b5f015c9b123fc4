package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

func testDataset() Dataset {
	return Dataset{
		Shipments: []Record{
			NewRecordFromStrings(map[string]string{
				"REFERANCE":      "SHP-1001",
				"AWB_NUMBER":     "157-12345675",
				"SHIPPER_NAME":   "Golden Lotus Trading",
				"CONSIGNEE_NAME": "Hamburg Imports GmbH",
				"CLIENT_CODE":    "HAM01",
				"CURRENCY":       "USD",
				"INVOICE_TOTAL":  "15400.50",
				"INVOICE_NO":     "INV-2024-0042",
				"INVOICE_DATE":   "2024-03-18",
			}),
		},
		Items: []Record{
			NewRecordFromStrings(map[string]string{
				"SHIPMENT_REF": "SHP-1001",
				"DESCRIPTION":  "Teak garden furniture",
				"HS_CODE":      "940360",
			}),
		},
		Clients: []Record{
			NewRecordFromStrings(map[string]string{
				"CODE":             "HAM01",
				"RECEIVER_ADDRESS": "Speicherstadt 12, Hamburg",
			}),
		},
	}
}

func TestAutofillEndToEnd(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())

	result, err := e.Autofill("commercial_invoice", "shp-1001", nil, testDataset())
	require.NoError(t, err)
	require.True(t, result.Found)

	values := result.Report.Values
	assert.Equal(t, "INV-2024-0042", values["invoice_no"].Value)
	assert.Equal(t, "Golden Lotus Trading", values["exporter_name"].Value)
	assert.Equal(t, "Hamburg Imports GmbH", values["consignee_name"].Value)
	// from the item overlay
	assert.Equal(t, "Teak garden furniture", values["goods_description"].Value)
	assert.Equal(t, "940360", values["hs_code"].Value)
	// from the client overlay
	assert.Equal(t, "Speicherstadt 12, Hamburg", values["consignee_address"].Value)
	assert.True(t, result.Report.Filled >= 8)
}

func TestAutofillByTrackingNumber(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())

	result, err := e.Autofill("air_waybill", "157-12345675", nil, testDataset())
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "157-12345675", result.Report.Values["awb_no"].Value)
}

func TestAutofillNotFound(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())

	result, err := e.Autofill("commercial_invoice", "NOPE123", nil, Dataset{})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Zero(t, result.Report.Filled)
}

func TestAutofillUnknownDocumentType(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())

	_, err := e.Autofill("tax_return", "SHP-1001", nil, testDataset())
	assert.ErrorIs(t, err, utils.ErrorUnknownDocumentType)
}

func TestAutofillIdempotentAcrossCalls(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())
	current := map[string]string{"goods_description": "old text"}

	first, err := e.Autofill("commercial_invoice", "SHP-1001", current, testDataset())
	require.NoError(t, err)
	second, err := e.Autofill("commercial_invoice", "SHP-1001", current, testDataset())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngineCheckDocument(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())

	res, err := e.CheckDocument("commercial_invoice", map[string]string{
		"invoice_no":        "INV-2024-0042",
		"invoice_date":      "2024-03-18",
		"exporter_name":     "Golden Lotus Trading",
		"consignee_name":    "Hamburg Imports GmbH",
		"currency":          "USD",
		"total_amount":      "15400.50",
		"goods_description": "Teak garden furniture",
	})
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	res, err = e.CheckDocument("commercial_invoice", map[string]string{
		"invoice_date": "2024-03-18",
	})
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.False(t, res.Fields["invoice_no"].IsValid)
}

func TestEngineCheckFieldUnknownDocumentType(t *testing.T) {
	e := New(schema.Default(), DefaultCandidateTable())
	_, err := e.CheckField("tax_return", "invoice_no", "x")
	assert.ErrorIs(t, err, utils.ErrorUnknownDocumentType)
}
