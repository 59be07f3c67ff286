// Package pdf lays report documents out as paginated A4 PDFs.
package pdf

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"agritech/pkg/report"
)

// Letterhead is the fixed office identity printed on page one.
type Letterhead struct {
	Province     string
	Municipality string
	Office       string
	LogoPath     string
}

type Renderer struct {
	head Letterhead
	now  func() time.Time
}

func New(head Letterhead) *Renderer {
	return &Renderer{head: head, now: time.Now}
}

const (
	margin  = 20.0
	lineH   = 5.0
	footerH = 15.0
)

// Filename encodes the report type and generation date:
// AgriTech_<Summary|Detailed>_Report_<YYYY-MM-DD>.pdf
func (r *Renderer) Filename(reportType string) string {
	kind := "Detailed"
	if reportType == report.TypeSummary {
		kind = "Summary"
	}
	return fmt.Sprintf("AgriTech_%s_Report_%s.pdf", kind, r.now().Format("2006-01-02"))
}

// Render builds the document. The returned Fpdf has not been closed; use
// Output for bytes or OutputFileAndClose to save.
func (r *Renderer) Render(doc report.Document) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*margin

	generated := r.now()
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerH)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d of {nb} | Generated on %s", pdf.PageNo(), generated.Format("1/2/2006, 3:04:05 PM")),
			"", 0, "C", false, 0, "")
	})

	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, footerH)
	pdf.AddPage()

	r.drawLetterhead(pdf, pageW)
	pdf.SetTextColor(0, 0, 0)

	// Title and long-form date
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, generated.Format("January 2, 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Request body, word-wrapped to the content width
	if doc.RequestText != "" {
		pdf.MultiCell(contentW, lineH, doc.RequestText, "", "L", false)
		pdf.Ln(6)
	}

	for _, t := range doc.Tables {
		r.drawTable(pdf, t, contentW, pageH)
		pdf.Ln(8)
	}

	// Certification paragraph
	r.ensureSpace(pdf, 40, pageH)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentW, lineH, doc.Certification, "", "L", false)
	pdf.Ln(12)

	r.drawSigners(pdf, doc.Signers, contentW, pageH)

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// Output renders to an in-memory buffer (preview mode) and reports the
// conventional filename alongside.
func (r *Renderer) Output(doc report.Document) ([]byte, string, error) {
	pdf, err := r.Render(doc)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), r.Filename(doc.ReportType), nil
}

func (r *Renderer) drawLetterhead(pdf *gofpdf.Fpdf, pageW float64) {
	// The logo is decorative; a missing or unreadable file must not abort
	// the report run.
	if r.head.LogoPath != "" {
		if _, err := os.Stat(r.head.LogoPath); err == nil {
			pdf.ImageOptions(r.head.LogoPath, margin, margin-5, 25, 25, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			if pdf.Err() {
				log.Printf("[pdf] letterhead logo skipped: %v", pdf.Error())
				pdf.ClearError()
			}
		} else {
			log.Printf("[pdf] letterhead logo not found: %s", r.head.LogoPath)
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Republic of the Philippines", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, r.head.Province, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, r.head.Municipality, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(0, 7, r.head.Office, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	y := pdf.GetY() + 2
	pdf.Line(margin, y, pageW-margin, y)
	pdf.SetY(y + 6)
}

func (r *Renderer) ensureSpace(pdf *gofpdf.Fpdf, need, pageH float64) {
	if pdf.GetY()+need > pageH-margin-footerH {
		pdf.AddPage()
	}
}

func tableWidths(t report.Table, contentW float64) []float64 {
	n := len(t.Columns)
	w := make([]float64, n)
	switch {
	case n == 2:
		w[0], w[1] = contentW*0.7, contentW*0.3
	case t.Title == "" && n > 2:
		// Detail table: narrow RSBSA column, remainder split evenly.
		w[0] = 25
		rest := (contentW - 25) / float64(n-1)
		for i := 1; i < n; i++ {
			w[i] = rest
		}
	default:
		w[0] = contentW * 0.5
		rest := contentW * 0.5 / float64(n-1)
		for i := 1; i < n; i++ {
			w[i] = rest
		}
	}
	return w
}

func (r *Renderer) drawTable(pdf *gofpdf.Fpdf, t report.Table, contentW, pageH float64) {
	widths := tableWidths(t, contentW)

	headerFill := func() {
		if t.Title == "" {
			pdf.SetFillColor(46, 125, 50) // detail table green
		} else {
			pdf.SetFillColor(40, 40, 40)
		}
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(180, 180, 180)
	}
	bodyFill := func() {
		pdf.SetFillColor(255, 255, 255)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(180, 180, 180)
	}

	drawHeader := func() {
		if t.Title != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 6, t.Title, "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}
		headerFill()
		pdf.SetFont("Helvetica", "B", 9)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		bodyFill()
		pdf.SetFont("Helvetica", "", 8)
	}

	r.ensureSpace(pdf, 30, pageH)
	drawHeader()

	if len(t.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 7, "No data available", "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range t.Rows {
		// Wrap every cell first so the row height is known before the
		// page-break check.
		lines := make([][]string, len(row))
		maxLines := 1
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			ls := pdf.SplitText(cell, widths[i]-3)
			if len(ls) == 0 {
				ls = []string{""}
			}
			lines[i] = ls
			if len(ls) > maxLines {
				maxLines = len(ls)
			}
		}
		rowH := float64(maxLines)*4.5 + 2

		if pdf.GetY()+rowH > pageH-margin-footerH {
			pdf.AddPage()
			drawHeader()
		}

		x := margin
		y := pdf.GetY()
		for i := range lines {
			pdf.Rect(x, y, widths[i], rowH, "D")
			ty := y + 4
			for _, ln := range lines[i] {
				pdf.Text(x+1.5, ty, ln)
				ty += 4.5
			}
			x += widths[i]
		}
		pdf.SetY(y + rowH)
	}
}

func (r *Renderer) drawSigners(pdf *gofpdf.Fpdf, signers []report.Signer, contentW, pageH float64) {
	if len(signers) == 0 {
		return
	}
	perRow := len(signers)
	if perRow > 3 {
		perRow = 3
	}
	colW := contentW / float64(perRow)

	startY := pdf.GetY()
	for i, s := range signers {
		if i > 0 && i%3 == 0 {
			startY += 40
			if startY+30 > pageH-margin-footerH {
				pdf.AddPage()
				startY = margin
			}
		}
		label := "Noted by:"
		switch {
		case i == 0:
			label = "Prepared by:"
		case i == len(signers)-1:
			label = "Approved by:"
		}

		x := margin + float64(i%3)*colW
		centerX := x + colW/2

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(x, startY, label)

		nameY := startY + 20
		pdf.SetFont("Helvetica", "B", 11)
		name := strings.ToUpper(s.Name)
		pdf.Text(centerX-pdf.GetStringWidth(name)/2, nameY, name)
		pdf.SetLineWidth(0.5)
		pdf.Line(centerX-30, nameY+2, centerX+30, nameY+2)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(centerX-pdf.GetStringWidth(s.Title)/2, nameY+7, s.Title)
	}
}
