package report

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"agritech/entities"
	"agritech/pkg/stats"
)

// Builder turns a registrant snapshot plus a Config into a renderable
// Document. All rollups come from the shared stats engine so the dashboard
// and the printable report can never disagree.
type Builder struct {
	engine stats.Engine
}

func NewBuilder(e stats.Engine) *Builder { return &Builder{engine: e} }

func (b *Builder) Build(rs []entities.Registrant, cfg Config) Document {
	filtered := filterRegistry(rs, cfg.RegistryType)

	doc := Document{
		Title:         "DATA REQUEST REPORT",
		ReportType:    cfg.ReportType,
		RequestText:   cfg.RequestText,
		Certification: certificationText,
		Signers:       cfg.Signers,
		GeneratedAt:   time.Now(),
	}

	if cfg.ReportType == TypeSummary {
		doc.Tables = b.summaryTables(filtered, cfg)
	} else {
		doc.Tables = []Table{b.detailTable(filtered, cfg)}
	}
	return doc
}

func filterRegistry(rs []entities.Registrant, registry string) []entities.Registrant {
	out := make([]entities.Registrant, 0, len(rs))
	for i := range rs {
		if rs[i].DeletedAt.Valid {
			continue
		}
		switch registry {
		case entities.RegistryFarmer, entities.RegistryFisherfolk:
			if rs[i].Registry != registry {
				continue
			}
		}
		out = append(out, rs[i])
	}
	return out
}

// --- detail mode ---

func (b *Builder) detailTable(rs []entities.Registrant, cfg Config) Table {
	cols := []string{"RSBSA No.", "Name", "Barangay", "Registry Type"}
	if cfg.Crops.Enabled() {
		cols = append(cols, "Crops")
	}
	if cfg.Livestock.Enabled() {
		cols = append(cols, "Livestock")
	}
	if cfg.Poultry.Enabled() {
		cols = append(cols, "Poultry")
	}

	rows := make([][]string, 0, len(rs))
	for i := range rs {
		r := &rs[i]
		row := []string{
			orNA(r.ReferenceNo),
			FormatName(r.Surname, r.FirstName, r.MiddleName),
			orNA(primaryBarangay(r)),
			orNA(r.Registry),
		}
		if cfg.Crops.Enabled() {
			row = append(row, orDash(matchingCrops(r, cfg.Crops)))
		}
		if cfg.Livestock.Enabled() {
			row = append(row, orDash(matchingLivestock(r, cfg.Livestock)))
		}
		if cfg.Poultry.Enabled() {
			row = append(row, orDash(matchingPoultry(r, cfg.Poultry)))
		}
		rows = append(rows, row)
	}
	return Table{Columns: cols, Rows: rows}
}

// FormatName renders "Surname, First M." with the middle initial dropped
// when there is no middle name.
func FormatName(surname, first, middle string) string {
	name := surname + ", " + first
	if middle != "" {
		name += " " + string([]rune(middle)[0]) + "."
	}
	return strings.TrimSpace(name)
}

func primaryBarangay(r *entities.Registrant) string {
	if len(r.Addresses) > 0 {
		return r.Addresses[0].Barangay
	}
	return ""
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// orDash keeps enabled-but-empty commodity cells visible as "-", never "".
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// matchCrop is a case-insensitive exact name match: the single rule used on
// both the detail columns and the summary rollups.
func matchCrop(f CategoryFilter, name string) bool {
	if f.Mode == ModeAll {
		return true
	}
	for _, sel := range f.Names {
		if strings.EqualFold(sel, name) {
			return true
		}
	}
	return false
}

// matchAnimal tolerates naming variants ("Cattle" vs "Cow Cattle") by
// case-insensitive containment in either direction. Fuzzier than the crop
// rule on purpose; see DESIGN.md before tightening it.
func matchAnimal(f CategoryFilter, name string) bool {
	if f.Mode == ModeAll {
		return true
	}
	// An empty name would trivially be contained in every selection.
	if name == "" {
		return false
	}
	lname := strings.ToLower(name)
	for _, sel := range f.Names {
		lsel := strings.ToLower(sel)
		if strings.Contains(lsel, lname) || strings.Contains(lname, lsel) {
			return true
		}
	}
	return false
}

func matchingCrops(r *entities.Registrant, f CategoryFilter) string {
	var names []string
	for _, c := range r.Crops {
		if !c.DeletedAt.Valid && matchCrop(f, c.Name) {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ", ")
}

func matchingLivestock(r *entities.Registrant, f CategoryFilter) string {
	var names []string
	for _, l := range r.Livestock {
		if !l.DeletedAt.Valid && matchAnimal(f, l.Animal) {
			names = append(names, l.Animal)
		}
	}
	return strings.Join(names, ", ")
}

func matchingPoultry(r *entities.Registrant, f CategoryFilter) string {
	var names []string
	for _, p := range r.Poultry {
		if !p.DeletedAt.Valid && matchAnimal(f, p.Bird) {
			names = append(names, p.Bird)
		}
	}
	return strings.Join(names, ", ")
}

// --- summary mode ---

func (b *Builder) summaryTables(rs []entities.Registrant, cfg Config) []Table {
	var tables []Table

	// Section numbers are fixed; a disabled section keeps the others'
	// numbering, matching the issued report layout.
	if cfg.RegistryType != RegistryNone {
		tables = append(tables, b.locationTable(rs))
	}
	if cfg.Crops.Enabled() {
		if t, ok := b.commodityTable("2. Crops Summary", b.cropCounts(rs, cfg.Crops)); ok {
			tables = append(tables, t)
		}
	}
	if cfg.Livestock.Enabled() {
		totals := b.engine.CommodityTotals(rs)
		if t, ok := b.commodityTable("3. Livestock Summary", filterAnimalCounts(totals.Livestock, cfg.Livestock)); ok {
			tables = append(tables, t)
		}
	}
	if cfg.Poultry.Enabled() {
		totals := b.engine.CommodityTotals(rs)
		if t, ok := b.commodityTable("4. Poultry Summary", filterAnimalCounts(totals.Poultry, cfg.Poultry)); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

func (b *Builder) locationTable(rs []entities.Registrant) Table {
	statsByLoc := b.engine.LocationStats(rs)
	keys := make([]string, 0, len(statsByLoc))
	for k := range statsByLoc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		c := statsByLoc[k]
		rows = append(rows, []string{k, dashIfZero(c.Farmers), dashIfZero(c.Fisherfolks)})
	}
	return Table{
		Title:   "1. Registrants by Location",
		Columns: []string{"Location (Purok/Barangay)", "Farmers", "Fisherfolk"},
		Rows:    rows,
	}
}

func (b *Builder) cropCounts(rs []entities.Registrant, f CategoryFilter) map[string]int {
	totals := b.engine.CommodityTotals(rs)
	out := map[string]int{}
	for name, n := range totals.Crops {
		if matchCrop(f, name) {
			out[name] += n
		}
	}
	return out
}

func filterAnimalCounts(totals map[string]int, f CategoryFilter) map[string]int {
	out := map[string]int{}
	for name, n := range totals {
		if matchAnimal(f, name) {
			out[titleCase(name)] += n
		}
	}
	return out
}

func (b *Builder) commodityTable(title string, counts map[string]int) (Table, bool) {
	if len(counts) == 0 {
		return Table{}, false
	}
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n, strconv.Itoa(counts[n])})
	}
	return Table{
		Title:   title,
		Columns: []string{"Commodity", "Total Count/Value"},
		Rows:    rows,
	}, true
}

func dashIfZero(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
