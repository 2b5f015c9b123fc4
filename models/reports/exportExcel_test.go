package reports

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
)

func TestWriteDocumentExcel(t *testing.T) {
	profile := schema.Profile{
		Type: "commercial_invoice",
		Name: "Commercial Invoice",
		Fields: []schema.Field{
			{Key: "invoice_no", Label: "Invoice No"},
			{Key: "consignee_name", Label: "Consignee"},
		},
	}
	values := map[string]string{
		"invoice_no":     "INV-2024-0042",
		"consignee_name": "Hamburg Imports GmbH",
	}

	var buf bytes.Buffer
	if err := WriteDocumentExcel(&buf, profile, values); err != nil {
		t.Fatalf("WriteDocumentExcel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "Commercial Invoice",
		"A3": "Invoice No",
		"B3": "INV-2024-0042",
		"A4": "Consignee",
		"B4": "Hamburg Imports GmbH",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("GetCellValue %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
