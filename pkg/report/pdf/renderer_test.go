package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritech/pkg/report"
)

func testRenderer() *Renderer {
	r := New(Letterhead{
		Province:     "Province of Misamis Oriental",
		Municipality: "Municipality of Jasaan",
		Office:       "DEPARTMENT OF AGRICULTURE",
	})
	r.now = func() time.Time { return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC) }
	return r
}

func testDocument() report.Document {
	return report.Document{
		Title:       "DATA REQUEST REPORT",
		ReportType:  report.TypeDetail,
		RequestText: "This report is issued upon the request of the Municipal Agriculture Office.",
		Tables: []report.Table{{
			Columns: []string{"RSBSA No.", "Name", "Barangay", "Registry Type"},
			Rows: [][]string{
				{"06-30-08-001", "Dela Cruz, Juan S.", "Aplaya", "farmer"},
				{"06-30-08-002", "Reyes, Maria", "Bobontugan", "fisherfolk"},
			},
		}},
		Certification: "Certified true and correct.",
		Signers: []report.Signer{
			{Name: "Ana Santos", Title: "Agricultural Technician"},
			{Name: "Jose Garcia", Title: "Municipal Agriculturist"},
		},
	}
}

func TestFilename(t *testing.T) {
	r := testRenderer()
	assert.Equal(t, "AgriTech_Detailed_Report_2025-06-15.pdf", r.Filename(report.TypeDetail))
	assert.Equal(t, "AgriTech_Summary_Report_2025-06-15.pdf", r.Filename(report.TypeSummary))
}

func TestOutputProducesPDF(t *testing.T) {
	data, filename, err := testRenderer().Output(testDocument())
	require.NoError(t, err)
	assert.Equal(t, "AgriTech_Detailed_Report_2025-06-15.pdf", filename)
	require.True(t, len(data) > 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptyTable(t *testing.T) {
	doc := testDocument()
	doc.Tables = []report.Table{{
		Title:   "1. Registrants by Location",
		Columns: []string{"Location (Purok/Barangay)", "Farmers", "Fisherfolk"},
	}}
	_, _, err := testRenderer().Output(doc)
	assert.NoError(t, err)
}

func TestRenderManyRowsPaginates(t *testing.T) {
	doc := testDocument()
	rows := make([][]string, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, []string{"06-30-08-001", "Dela Cruz, Juan S.", "Aplaya", "farmer"})
	}
	doc.Tables[0].Rows = rows

	pdf, err := testRenderer().Render(doc)
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestMissingLogoDoesNotFail(t *testing.T) {
	r := New(Letterhead{
		Province:     "Province of Misamis Oriental",
		Municipality: "Municipality of Jasaan",
		Office:       "DEPARTMENT OF AGRICULTURE",
		LogoPath:     "testdata/does_not_exist.png",
	})
	_, _, err := r.Output(testDocument())
	assert.NoError(t, err)
}
