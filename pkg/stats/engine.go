package stats

import (
	"math"
	"sort"
	"strings"

	"agritech/entities"
)

// Engine computes the dashboard and report aggregations over an in-memory
// registrant snapshot. Every method builds fresh accumulators, so calls are
// idempotent and safe to run concurrently against different snapshots.
type Engine interface {
	Totals(rs []entities.Registrant) Totals
	MonthlySeries(rs []entities.Registrant, year int) MonthlySeries
	ProductionByArea(rs []entities.Registrant) (map[string]AreaCounts, DetailedProduction)
	TopPuroks(rs []entities.Registrant, year, limit int) []PurokCount
	CropsByPurok(rs []entities.Registrant) map[string]map[string]int
	AnimalsByPurok(rs []entities.Registrant) map[string]map[string]int
	CropDensityByArea(rs []entities.Registrant) map[string]CropDensity
	ProductionSummary(rs []entities.Registrant, infos map[uint]entities.ParcelInfo) map[string]*BarangaySummary
	LocationStats(rs []entities.Registrant) map[string]RegistryCounts
	CommodityTotals(rs []entities.Registrant) CommodityTotals
}

type Option func(*engine)

// WithYieldFactor overrides the assumed tons-per-hectare multiplier used for
// production estimates (default 4.0).
func WithYieldFactor(f float64) Option {
	return func(e *engine) {
		if f > 0 {
			e.yieldFactor = f
		}
	}
}

type engine struct {
	yieldFactor float64
}

func New(opts ...Option) Engine {
	e := &engine{yieldFactor: 4.0}
	for _, o := range opts {
		o(e)
	}
	return e
}

func active(r *entities.Registrant) bool { return !r.DeletedAt.Valid }

// indexLocations builds the id -> primary barangay/purok lookup once per
// aggregation run; everything after is O(1) per item.
func indexLocations(rs []entities.Registrant) map[uint]location {
	idx := make(map[uint]location, len(rs))
	for i := range rs {
		loc := location{Barangay: unknownLocation, Purok: unknownLocation}
		if len(rs[i].Addresses) > 0 {
			a := rs[i].Addresses[0]
			if a.Barangay != "" {
				loc.Barangay = a.Barangay
			}
			if a.Purok != "" {
				loc.Purok = a.Purok
			}
		}
		idx[rs[i].ID] = loc
	}
	return idx
}

func head(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func (e *engine) Totals(rs []entities.Registrant) Totals {
	var t Totals
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		sex := strings.ToLower(r.Sex)
		switch r.Registry {
		case entities.RegistryFarmer:
			t.TotalFarmers++
			if sex == "male" {
				t.MaleFarmers++
			} else if sex == "female" {
				t.FemaleFarmers++
			}
		case entities.RegistryFisherfolk:
			t.TotalFisherfolks++
			if sex == "male" {
				t.MaleFisherfolks++
			} else if sex == "female" {
				t.FemaleFisherfolks++
			}
		}
		for _, c := range r.Crops {
			if !c.DeletedAt.Valid {
				t.TotalCrops++
			}
		}
		// Head counts default to zero here; only the location-keyed
		// aggregates substitute 1 for missing counts.
		for _, l := range r.Livestock {
			if !l.DeletedAt.Valid {
				t.TotalAnimals += l.HeadCount
			}
		}
		for _, p := range r.Poultry {
			if !p.DeletedAt.Valid {
				t.TotalAnimals += p.HeadCount
			}
		}
	}
	return t
}

func (e *engine) MonthlySeries(rs []entities.Registrant, year int) MonthlySeries {
	var s MonthlySeries
	for i := range rs {
		r := &rs[i]
		if !active(r) || r.CreatedAt.Year() != year {
			continue
		}
		m := int(r.CreatedAt.Month()) - 1
		switch r.Registry {
		case entities.RegistryFarmer:
			s.Farmers[m]++
		case entities.RegistryFisherfolk:
			s.Fisherfolks[m]++
		}
	}
	return s
}

func (e *engine) ProductionByArea(rs []entities.Registrant) (map[string]AreaCounts, DetailedProduction) {
	idx := indexLocations(rs)
	byArea := map[string]AreaCounts{}
	detailed := DetailedProduction{}

	bump := func(barangay string) *BarangayProduction {
		bp, ok := detailed[barangay]
		if !ok {
			bp = &BarangayProduction{Crops: map[string]map[string]int{}, Animals: map[string]map[string]int{}}
			detailed[barangay] = bp
		}
		return bp
	}

	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		loc := idx[r.ID]
		for _, c := range r.Crops {
			if c.DeletedAt.Valid {
				continue
			}
			name := c.Name
			if name == "" {
				name = "Other"
			}
			bp := bump(loc.Barangay)
			if bp.Crops[name] == nil {
				bp.Crops[name] = map[string]int{}
			}
			bp.Crops[name][loc.Purok]++
			ac := byArea[loc.Barangay]
			ac.Crops++
			byArea[loc.Barangay] = ac
		}
		addAnimal := func(name string, count int) {
			if name == "" {
				name = "Other"
			}
			bp := bump(loc.Barangay)
			if bp.Animals[name] == nil {
				bp.Animals[name] = map[string]int{}
			}
			bp.Animals[name][loc.Purok] += head(count)
			ac := byArea[loc.Barangay]
			ac.Animals++
			byArea[loc.Barangay] = ac
		}
		for _, l := range r.Livestock {
			if !l.DeletedAt.Valid {
				addAnimal(l.Animal, l.HeadCount)
			}
		}
		for _, p := range r.Poultry {
			if !p.DeletedAt.Valid {
				addAnimal(p.Bird, p.HeadCount)
			}
		}
	}
	return byArea, detailed
}

func (e *engine) TopPuroks(rs []entities.Registrant, year, limit int) []PurokCount {
	counts := map[string]int{}
	order := []string{} // first-encountered order for stable ties
	for i := range rs {
		r := &rs[i]
		if !active(r) || r.CreatedAt.Year() != year {
			continue
		}
		if len(r.Addresses) == 0 {
			continue
		}
		a := r.Addresses[0]
		barangay, purok := a.Barangay, a.Purok
		if barangay == "" {
			barangay = unknownLocation
		}
		if purok == "" {
			purok = unknownLocation
		}
		key := purok + " (" + barangay + ")"
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]PurokCount, 0, len(order))
	for _, k := range order {
		out = append(out, PurokCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (e *engine) CropsByPurok(rs []entities.Registrant) map[string]map[string]int {
	idx := indexLocations(rs)
	out := map[string]map[string]int{}
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		purok := idx[r.ID].Purok
		for _, c := range r.Crops {
			if c.DeletedAt.Valid {
				continue
			}
			name := c.Name
			if name == "" {
				name = "Other"
			}
			if out[name] == nil {
				out[name] = map[string]int{}
			}
			out[name][purok]++
		}
	}
	return out
}

func (e *engine) AnimalsByPurok(rs []entities.Registrant) map[string]map[string]int {
	idx := indexLocations(rs)
	out := map[string]map[string]int{}
	add := func(purok, name string, count int) {
		if name == "" {
			name = "Other"
		}
		if out[name] == nil {
			out[name] = map[string]int{}
		}
		out[name][purok] += head(count)
	}
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		purok := idx[r.ID].Purok
		for _, l := range r.Livestock {
			if !l.DeletedAt.Valid {
				add(purok, l.Animal, l.HeadCount)
			}
		}
		for _, p := range r.Poultry {
			if !p.DeletedAt.Valid {
				add(purok, p.Bird, p.HeadCount)
			}
		}
	}
	return out
}

func (e *engine) CropDensityByArea(rs []entities.Registrant) map[string]CropDensity {
	byArea, _ := e.ProductionByArea(rs)

	// Total farm area per barangay, from parcels of registrants that have an
	// address on file. Parcels without an area are skipped, not errors.
	areaByBarangay := map[string]float64{}
	for i := range rs {
		r := &rs[i]
		if !active(r) || len(r.Addresses) == 0 {
			continue
		}
		barangay := r.Addresses[0].Barangay
		if barangay == "" {
			barangay = unknownLocation
		}
		for _, p := range r.FarmParcels {
			if p.TotalFarmAreaHa != nil {
				areaByBarangay[barangay] += *p.TotalFarmAreaHa
			}
		}
	}

	out := map[string]CropDensity{}
	for barangay, counts := range byArea {
		area := areaByBarangay[barangay]
		if area <= 0 {
			continue
		}
		out[barangay] = CropDensity{
			CropCount: counts.Crops,
			TotalArea: round2(area),
			Density:   round2(float64(counts.Crops) / area),
		}
	}
	return out
}

func (e *engine) ProductionSummary(rs []entities.Registrant, infos map[uint]entities.ParcelInfo) map[string]*BarangaySummary {
	idx := indexLocations(rs)
	out := map[string]*BarangaySummary{}

	get := func(barangay string) *BarangaySummary {
		s, ok := out[barangay]
		if !ok {
			s = &BarangaySummary{Livestock: map[string]int{}, Poultry: map[string]int{}}
			out[barangay] = s
		}
		return s
	}

	// Crop event classification. Rice counts land in rainfed by default:
	// irrigation is a property of the parcel, not of the crop row, so the
	// crop level has nothing to route on.
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		s := get(idx[r.ID].Barangay)
		for _, c := range r.Crops {
			if c.DeletedAt.Valid {
				continue
			}
			name := strings.ToLower(c.Name)
			switch {
			case strings.Contains(name, "rice"):
				s.Rice.Rainfed.Count++
			case strings.Contains(name, "corn"):
				if strings.EqualFold(c.CornType, "white") {
					s.Corn.White.Count++
				} else {
					s.Corn.Yellow.Count++
				}
			default:
				s.Others.Count++
			}
		}
		for _, l := range r.Livestock {
			if l.DeletedAt.Valid {
				continue
			}
			name := l.Animal
			if name == "" {
				name = "Others"
			}
			s.Livestock[name] += head(l.HeadCount)
		}
		for _, p := range r.Poultry {
			if p.DeletedAt.Valid {
				continue
			}
			name := p.Bird
			if name == "" {
				name = "Others"
			}
			s.Poultry[name] += head(p.HeadCount)
		}
	}

	// Parcel areas. Every measured parcel adds to the barangay total; only
	// parcels whose farm kind names an irrigation class also add to the rice
	// buckets. A parcel matching neither keyword stays in the total alone.
	for i := range rs {
		r := &rs[i]
		if !active(r) || len(r.FarmParcels) == 0 || len(r.Addresses) == 0 {
			continue
		}
		barangay := r.Addresses[0].Barangay
		if barangay == "" {
			barangay = unknownLocation
		}
		s := get(barangay)
		for _, p := range r.FarmParcels {
			if p.TotalFarmAreaHa == nil {
				continue
			}
			area := *p.TotalFarmAreaHa
			s.TotalArea += area
			info, ok := infos[p.ID]
			if !ok {
				continue
			}
			kind := strings.ToLower(info.FarmKind)
			if strings.Contains(kind, "irrigated") {
				s.Rice.Irrigated.Area += area
			} else if strings.Contains(kind, "rainfed") {
				s.Rice.Rainfed.Area += area
			}
		}
	}

	// Distribute the non-rice remainder across corn and others proportional
	// to event counts. This assumes uniform parcel size across crop types;
	// isolated here so it can be swapped for a measured-area allocation.
	for _, s := range out {
		allocateRemainingArea(s)
		finishBucket(&s.Rice.Irrigated, e.yieldFactor)
		finishBucket(&s.Rice.Rainfed, e.yieldFactor)
		finishBucket(&s.Corn.Yellow, e.yieldFactor)
		finishBucket(&s.Corn.White, e.yieldFactor)
		finishBucket(&s.Others, e.yieldFactor)
	}
	return out
}

// LocationStats counts farmers and fisherfolk per "{purok} ({barangay})"
// key. Keeps the report's legacy placeholder labels for missing fields.
func (e *engine) LocationStats(rs []entities.Registrant) map[string]RegistryCounts {
	out := map[string]RegistryCounts{}
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		purok, barangay := "Unknown Purok", "Unknown Brgy"
		if len(r.Addresses) > 0 {
			if a := r.Addresses[0]; a.Purok != "" {
				purok = a.Purok
			}
			if a := r.Addresses[0]; a.Barangay != "" {
				barangay = a.Barangay
			}
		}
		key := purok + " (" + barangay + ")"
		c := out[key]
		switch r.Registry {
		case entities.RegistryFarmer:
			c.Farmers++
		case entities.RegistryFisherfolk:
			c.Fisherfolks++
		}
		out[key] = c
	}
	return out
}

func (e *engine) CommodityTotals(rs []entities.Registrant) CommodityTotals {
	t := CommodityTotals{
		Crops:     map[string]int{},
		Livestock: map[string]int{},
		Poultry:   map[string]int{},
	}
	for i := range rs {
		r := &rs[i]
		if !active(r) {
			continue
		}
		for _, c := range r.Crops {
			if c.DeletedAt.Valid {
				continue
			}
			name := c.Name
			if name == "" {
				name = "Other"
			}
			t.Crops[name]++
		}
		for _, l := range r.Livestock {
			if l.DeletedAt.Valid {
				continue
			}
			name := l.Animal
			if name == "" {
				name = "Other"
			}
			t.Livestock[name] += head(l.HeadCount)
		}
		for _, p := range r.Poultry {
			if p.DeletedAt.Valid {
				continue
			}
			name := p.Bird
			if name == "" {
				name = "Other"
			}
			t.Poultry[name] += head(p.HeadCount)
		}
	}
	return t
}

func allocateRemainingArea(s *BarangaySummary) {
	riceArea := s.Rice.Irrigated.Area + s.Rice.Rainfed.Area
	remaining := s.TotalArea - riceArea
	if remaining <= 0 {
		return
	}
	total := s.Corn.Yellow.Count + s.Corn.White.Count + s.Others.Count
	if total == 0 {
		return
	}
	s.Corn.Yellow.Area = remaining * float64(s.Corn.Yellow.Count) / float64(total)
	s.Corn.White.Area = remaining * float64(s.Corn.White.Count) / float64(total)
	s.Others.Area = remaining * float64(s.Others.Count) / float64(total)
}

func finishBucket(b *CropBucket, yieldFactor float64) {
	if b.Area <= 0 {
		return
	}
	b.Density = round2(float64(b.Count) / b.Area)
	b.Production = round2(b.Area * yieldFactor)
}
