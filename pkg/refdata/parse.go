// Package refdata ingests the municipal barangay roster from published
// PSGC reference pages.
package refdata

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"agritech/entities"
)

// ParseBarangays extracts barangay rows from a PSGC-style HTML page. It
// scans every table and keeps rows whose first cell looks like a name and
// whose second cell (when present) is a PSGC code. Duplicate names keep
// the first occurrence.
func ParseBarangays(r io.Reader) ([]entities.Barangay, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	seen := map[string]bool{}
	var out []entities.Barangay
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		b := entities.Barangay{Name: name}
		if cells.Length() > 1 {
			code := strings.TrimSpace(cells.Eq(1).Text())
			if !isPSGC(code) {
				return
			}
			b.PSGCCode = code
		}
		if cells.Length() > 2 {
			b.District = strings.TrimSpace(cells.Eq(2).Text())
		}
		seen[strings.ToLower(name)] = true
		out = append(out, b)
	})

	if len(out) == 0 {
		return nil, fmt.Errorf("no barangay rows found")
	}
	return out, nil
}

// isPSGC accepts the 9 and 10 digit PSGC code formats.
func isPSGC(s string) bool {
	if len(s) != 9 && len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
