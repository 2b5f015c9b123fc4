package reports

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
)

// WriteDocumentExcel renders the confirmed value set of one document as a
// two-column worksheet (label, value) in the document's field order. This
// is the spreadsheet hand-off for back-office archiving; the print/PDF path
// is a separate system.
func WriteDocumentExcel(w io.Writer, profile schema.Profile, values map[string]string) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	_, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", profile.Name)
	f.SetCellValue(sheetName, "A2", "Field")
	f.SetCellValue(sheetName, "B2", "Value")

	row := 3
	for _, field := range profile.Fields {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), field.Label)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), values[field.Key])
		row++
	}

	return f.Write(w)
}

// ExportDocumentExcel writes the workbook to an HTTP response with download
// headers.
func ExportDocumentExcel(w http.ResponseWriter, profile schema.Profile, values map[string]string) error {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+profile.Type+".xlsx")
	return WriteDocumentExcel(w, profile, values)
}
