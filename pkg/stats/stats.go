package stats

// Derived aggregation structures consumed by the dashboard and the report
// builder. Everything here is computed fresh per call and never persisted.

// Totals are the ungrouped headline numbers. Registrants missing an address
// still count here even though location-keyed aggregates skip them.
type Totals struct {
	TotalFarmers      int `json:"totalFarmers"`
	TotalFisherfolks  int `json:"totalFisherfolks"`
	TotalCrops        int `json:"totalCrops"`
	TotalAnimals      int `json:"totalAnimals"`
	MaleFarmers       int `json:"maleFarmers"`
	FemaleFarmers     int `json:"femaleFarmers"`
	MaleFisherfolks   int `json:"maleFisherfolks"`
	FemaleFisherfolks int `json:"femaleFisherfolks"`
}

// MonthlySeries holds one calendar year of new registrations,
// index 0 = January.
type MonthlySeries struct {
	Farmers     [12]int `json:"farmers"`
	Fisherfolks [12]int `json:"fisherfolks"`
}

// AreaCounts is the per-barangay event tally: crops count occurrences,
// animals count livestock/poultry entries (not head count).
type AreaCounts struct {
	Crops   int `json:"crops"`
	Animals int `json:"animals"`
}

// BarangayProduction is the drill-down behind the production-by-area cards:
// commodity name -> purok -> count (crops +1 per occurrence, animals +head).
type BarangayProduction struct {
	Crops   map[string]map[string]int `json:"crops"`
	Animals map[string]map[string]int `json:"animals"`
}

// DetailedProduction is keyed by barangay.
type DetailedProduction map[string]*BarangayProduction

type PurokCount struct {
	Name  string `json:"name"` // "{purok} ({barangay})"
	Count int    `json:"count"`
}

type CropDensity struct {
	CropCount int     `json:"cropCount"`
	TotalArea float64 `json:"totalArea"`
	Density   float64 `json:"density"` // crops per hectare, 2dp
}

// CropBucket is one cell of the production summary. Production is the
// yield estimate Area x yield factor.
type CropBucket struct {
	Count      int     `json:"count"`
	Area       float64 `json:"area"`
	Density    float64 `json:"density,omitempty"`
	Production float64 `json:"production,omitempty"`
}

type RiceSummary struct {
	Irrigated CropBucket `json:"irrigated"`
	Rainfed   CropBucket `json:"rainfed"`
}

type CornSummary struct {
	Yellow CropBucket `json:"yellow"`
	White  CropBucket `json:"white"`
}

// BarangaySummary is the printable production rollup for one barangay.
// Invariant: Rice+Corn+Others counts equal the barangay's classified crop
// events; TotalArea includes parcels whose farm kind matched neither
// irrigation keyword, so it can exceed the sum of bucket areas before the
// remaining-area allocation runs.
type BarangaySummary struct {
	Rice      RiceSummary    `json:"rice"`
	Corn      CornSummary    `json:"corn"`
	Others    CropBucket     `json:"others"`
	Livestock map[string]int `json:"livestock"`
	Poultry   map[string]int `json:"poultry"`
	TotalArea float64        `json:"totalArea"`
}

// RegistryCounts backs the "Registrants by Location" report section.
type RegistryCounts struct {
	Farmers     int `json:"farmers"`
	Fisherfolks int `json:"fisherfolks"`
}

// CommodityTotals are flat commodity rollups over one registrant set:
// crops count occurrences, livestock and poultry sum head counts.
type CommodityTotals struct {
	Crops     map[string]int `json:"crops"`
	Livestock map[string]int `json:"livestock"`
	Poultry   map[string]int `json:"poultry"`
}

const unknownLocation = "Unknown"

type location struct {
	Barangay string
	Purok    string
}
