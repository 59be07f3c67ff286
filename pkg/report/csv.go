package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"agritech/entities"
)

// CSVOptions control the flat export. Columns is an ordered subset of
// ColumnKeys; empty means every column. Registry/Crop are optional filters.
type CSVOptions struct {
	Columns  []string `json:"columns,omitempty"`
	Registry string   `json:"registry,omitempty"` // farmer|fisherfolk|...
	Crop     string   `json:"crop,omitempty"`     // single crop name
}

type csvColumn struct {
	Key    string
	Header string
	Value  func(r *entities.Registrant) string
}

// enUSDate mirrors the browser export's en-US locale dates.
const enUSDate = "1/2/2006"

var csvColumns = []csvColumn{
	{"reference_no", "RSBSA No.", func(r *entities.Registrant) string { return r.ReferenceNo }},
	{"name", "Name", func(r *entities.Registrant) string { return FormatName(r.Surname, r.FirstName, r.MiddleName) }},
	{"sex", "Sex", func(r *entities.Registrant) string { return r.Sex }},
	{"birth_date", "Birth Date", func(r *entities.Registrant) string {
		if r.BirthDate == nil {
			return ""
		}
		return r.BirthDate.Format(enUSDate)
	}},
	{"civil_status", "Civil Status", func(r *entities.Registrant) string { return r.CivilStatus }},
	{"contact_no", "Contact No.", func(r *entities.Registrant) string { return r.ContactNo }},
	{"registry", "Registry Type", func(r *entities.Registrant) string { return r.Registry }},
	{"barangay", "Barangay", func(r *entities.Registrant) string {
		if len(r.Addresses) > 0 {
			return r.Addresses[0].Barangay
		}
		return ""
	}},
	{"purok", "Purok", func(r *entities.Registrant) string {
		if len(r.Addresses) > 0 {
			return r.Addresses[0].Purok
		}
		return ""
	}},
	{"crops", "Crops", func(r *entities.Registrant) string { return joinCropNames(r) }},
	{"livestock", "Livestock", func(r *entities.Registrant) string { return joinAnimalNames(r) }},
	{"poultry", "Poultry", func(r *entities.Registrant) string { return joinBirdNames(r) }},
	{"farm_area", "Total Farm Area (ha)", func(r *entities.Registrant) string { return totalFarmArea(r) }},
	{"registered", "Registered On", func(r *entities.Registrant) string { return r.CreatedAt.Format(enUSDate) }},
}

// ColumnKeys lists every exportable column key in output order.
func ColumnKeys() []string {
	keys := make([]string, len(csvColumns))
	for i, c := range csvColumns {
		keys[i] = c.Key
	}
	return keys
}

// WriteCSV streams the uppercased flat export. encoding/csv supplies the
// quoting rules (embedded commas/quotes/newlines quoted, quotes doubled).
func WriteCSV(w io.Writer, rs []entities.Registrant, opt CSVOptions) error {
	cols := selectColumns(opt.Columns)

	cw := csv.NewWriter(w)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = strings.ToUpper(c.Header)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range rs {
		r := &rs[i]
		if r.DeletedAt.Valid {
			continue
		}
		if opt.Registry != "" && r.Registry != opt.Registry {
			continue
		}
		if opt.Crop != "" && !hasCrop(r, opt.Crop) {
			continue
		}
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = strings.ToUpper(c.Value(r))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func selectColumns(keys []string) []csvColumn {
	if len(keys) == 0 {
		return csvColumns
	}
	byKey := make(map[string]csvColumn, len(csvColumns))
	for _, c := range csvColumns {
		byKey[c.Key] = c
	}
	out := make([]csvColumn, 0, len(keys))
	for _, k := range keys {
		if c, ok := byKey[strings.TrimSpace(k)]; ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return csvColumns
	}
	return out
}

func hasCrop(r *entities.Registrant, name string) bool {
	for _, c := range r.Crops {
		if !c.DeletedAt.Valid && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func joinCropNames(r *entities.Registrant) string {
	var names []string
	for _, c := range r.Crops {
		if !c.DeletedAt.Valid {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ", ")
}

func joinAnimalNames(r *entities.Registrant) string {
	var names []string
	for _, l := range r.Livestock {
		if !l.DeletedAt.Valid {
			names = append(names, l.Animal)
		}
	}
	return strings.Join(names, ", ")
}

func joinBirdNames(r *entities.Registrant) string {
	var names []string
	for _, p := range r.Poultry {
		if !p.DeletedAt.Valid {
			names = append(names, p.Bird)
		}
	}
	return strings.Join(names, ", ")
}

func totalFarmArea(r *entities.Registrant) string {
	sum := 0.0
	found := false
	for _, p := range r.FarmParcels {
		if p.TotalFarmAreaHa != nil {
			sum += *p.TotalFarmAreaHa
			found = true
		}
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("%.2f", sum)
}
