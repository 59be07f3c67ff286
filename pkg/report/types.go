package report

import "time"

// Report types.
const (
	TypeDetail  = "detail"
	TypeSummary = "summary"
)

// Registry filter values. "none" keeps every row but drops the
// registrants-by-location section from summary output.
const (
	RegistryAll  = "all"
	RegistryNone = "none"
)

// Mode of a commodity category filter. The tagged variant replaces the
// legacy {enabled, all, selected} blob so a half-filled filter cannot be
// misread as "show everything".
type Mode string

const (
	ModeDisabled Mode = "disabled"
	ModeAll      Mode = "all"
	ModeSubset   Mode = "subset"
)

type CategoryFilter struct {
	Mode  Mode     `json:"mode"`
	Names []string `json:"names,omitempty"`
}

func Disabled() CategoryFilter { return CategoryFilter{Mode: ModeDisabled} }
func All() CategoryFilter      { return CategoryFilter{Mode: ModeAll} }

func Subset(names ...string) CategoryFilter {
	return CategoryFilter{Mode: ModeSubset, Names: names}
}

func (f CategoryFilter) Enabled() bool { return f.Mode == ModeAll || f.Mode == ModeSubset }

type Signer struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Config fully determines the column set and row set of a report; the
// builder never falls back to "show everything" on an ambiguous filter.
type Config struct {
	ReportType   string         `json:"report_type"`   // detail|summary
	RegistryType string         `json:"registry_type"` // all|farmer|fisherfolk|none
	Crops        CategoryFilter `json:"crops"`
	Livestock    CategoryFilter `json:"livestock"`
	Poultry      CategoryFilter `json:"poultry"`
	RequestText  string         `json:"request_text"`
	Signers      []Signer       `json:"signers"`
}

// Table is one renderable section. An empty Rows slice is valid; the
// renderer emits a "No data available" placeholder row for it.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Document is the paginated-report input: everything the renderer needs,
// nothing it has to compute.
type Document struct {
	Title         string
	ReportType    string
	RequestText   string
	Tables        []Table
	Certification string
	Signers       []Signer
	GeneratedAt   time.Time
}

const certificationText = "This data is generated from the AgriTech System and is certified " +
	"to be true and correct based on the available records. This report is valid for official use only."
