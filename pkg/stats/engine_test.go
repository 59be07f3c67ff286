package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agritech/entities"
)

func ptr(f float64) *float64 { return &f }

func registrant(id uint, registry, sex, barangay, purok string) entities.Registrant {
	r := entities.Registrant{
		ID:        id,
		Registry:  registry,
		Sex:       sex,
		CreatedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if barangay != "" || purok != "" {
		r.Addresses = []entities.Address{{Barangay: barangay, Purok: purok}}
	}
	return r
}

func deleted(r entities.Registrant) entities.Registrant {
	r.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return r
}

func TestTotals(t *testing.T) {
	rs := []entities.Registrant{
		registrant(1, entities.RegistryFarmer, "Male", "Aplaya", "1"),
		registrant(2, entities.RegistryFarmer, "FEMALE", "Aplaya", "2"),
		registrant(3, entities.RegistryFisherfolk, "male", "Bobontugan", "1"),
		deleted(registrant(4, entities.RegistryFarmer, "Male", "Aplaya", "1")),
	}
	rs[0].Crops = []entities.Crop{{Name: "Rice"}, {Name: "Corn"}}
	rs[0].Livestock = []entities.Livestock{{Animal: "Carabao", HeadCount: 3}}
	rs[2].Poultry = []entities.Poultry{{Bird: "Chicken", HeadCount: 12}}
	// Zero head count contributes nothing to the headline number.
	rs[1].Livestock = []entities.Livestock{{Animal: "Goat", HeadCount: 0}}

	got := New().Totals(rs)
	assert.Equal(t, 2, got.TotalFarmers)
	assert.Equal(t, 1, got.TotalFisherfolks)
	assert.Equal(t, 1, got.MaleFarmers)
	assert.Equal(t, 1, got.FemaleFarmers)
	assert.Equal(t, 1, got.MaleFisherfolks)
	assert.Equal(t, 0, got.FemaleFisherfolks)
	assert.Equal(t, 2, got.TotalCrops)
	assert.Equal(t, 15, got.TotalAnimals)
}

func TestTotalsSkipsDeletedChildren(t *testing.T) {
	r := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "1")
	r.Crops = []entities.Crop{
		{Name: "Rice"},
		{Name: "Corn", DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true}},
	}
	got := New().Totals([]entities.Registrant{r})
	assert.Equal(t, 1, got.TotalCrops)
}

func TestMonthlySeries(t *testing.T) {
	jan := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "1")
	jan.CreatedAt = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	dec := registrant(2, entities.RegistryFisherfolk, "female", "Aplaya", "1")
	dec.CreatedAt = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	otherYear := registrant(3, entities.RegistryFarmer, "male", "Aplaya", "1")
	otherYear.CreatedAt = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	s := New().MonthlySeries([]entities.Registrant{jan, dec, otherYear}, 2025)
	assert.Equal(t, 1, s.Farmers[0])
	assert.Equal(t, 1, s.Fisherfolks[11])
	assert.Equal(t, 0, s.Farmers[1])
}

func TestProductionByArea(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{{Name: "Rice"}, {Name: "Rice"}}
	a.Livestock = []entities.Livestock{{Animal: "Carabao", HeadCount: 2}}
	b := registrant(2, entities.RegistryFarmer, "male", "", "")
	b.Crops = []entities.Crop{{Name: "Corn"}}

	byArea, detailed := New().ProductionByArea([]entities.Registrant{a, b})

	assert.Equal(t, 2, byArea["Aplaya"].Crops)
	assert.Equal(t, 1, byArea["Aplaya"].Animals)
	// No address lands under the Unknown bucket rather than disappearing.
	assert.Equal(t, 1, byArea["Unknown"].Crops)

	require.Contains(t, detailed, "Aplaya")
	assert.Equal(t, 2, detailed["Aplaya"].Crops["Rice"]["Purok 1"])
	assert.Equal(t, 2, detailed["Aplaya"].Animals["Carabao"]["Purok 1"])
}

func TestProductionByAreaHeadFloor(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Poultry = []entities.Poultry{{Bird: "Duck", HeadCount: 0}}
	_, detailed := New().ProductionByArea([]entities.Registrant{a})
	assert.Equal(t, 1, detailed["Aplaya"].Animals["Duck"]["Purok 1"])
}

func TestTopPuroks(t *testing.T) {
	rs := []entities.Registrant{
		registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1"),
		registrant(2, entities.RegistryFarmer, "male", "Aplaya", "Purok 1"),
		registrant(3, entities.RegistryFarmer, "male", "Aplaya", "Purok 2"),
		registrant(4, entities.RegistryFisherfolk, "male", "Bobontugan", "Purok 1"),
	}
	noAddr := registrant(5, entities.RegistryFarmer, "male", "", "")
	noAddr.Addresses = nil
	rs = append(rs, noAddr)

	got := New().TopPuroks(rs, 2025, 10)
	require.Len(t, got, 3)
	assert.Equal(t, PurokCount{Name: "Purok 1 (Aplaya)", Count: 2}, got[0])

	limited := New().TopPuroks(rs, 2025, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, "Purok 1 (Aplaya)", limited[0].Name)

	assert.Empty(t, New().TopPuroks(rs, 2020, 10))
}

func TestTopPuroksStableTies(t *testing.T) {
	rs := []entities.Registrant{
		registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 9"),
		registrant(2, entities.RegistryFarmer, "male", "Aplaya", "Purok 3"),
	}
	got := New().TopPuroks(rs, 2025, 10)
	require.Len(t, got, 2)
	// Equal counts keep first-encounter order.
	assert.Equal(t, "Purok 9 (Aplaya)", got[0].Name)
	assert.Equal(t, "Purok 3 (Aplaya)", got[1].Name)
}

func TestCropsAndAnimalsByPurok(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{{Name: "Rice"}}
	a.Livestock = []entities.Livestock{{Animal: "Goat", HeadCount: 4}}

	e := New()
	crops := e.CropsByPurok([]entities.Registrant{a})
	assert.Equal(t, 1, crops["Rice"]["Purok 1"])

	animals := e.AnimalsByPurok([]entities.Registrant{a})
	assert.Equal(t, 4, animals["Goat"]["Purok 1"])
}

func TestCropDensityByArea(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{{Name: "Rice"}, {Name: "Corn"}, {Name: "Banana"}}
	a.FarmParcels = []entities.FarmParcel{{TotalFarmAreaHa: ptr(1.5)}, {TotalFarmAreaHa: ptr(0.5)}}

	noArea := registrant(2, entities.RegistryFarmer, "male", "Bobontugan", "Purok 1")
	noArea.Crops = []entities.Crop{{Name: "Rice"}}

	got := New().CropDensityByArea([]entities.Registrant{a, noArea})
	require.Contains(t, got, "Aplaya")
	assert.Equal(t, CropDensity{CropCount: 3, TotalArea: 2, Density: 1.5}, got["Aplaya"])
	// Barangays with no measured area are omitted, not divided by zero.
	assert.NotContains(t, got, "Bobontugan")
}

func TestProductionSummary(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{
		{Name: "Rice"},
		{Name: "Corn", CornType: "white"},
		{Name: "Corn"}, // missing corn type defaults to yellow
		{Name: "Banana"},
	}
	a.Livestock = []entities.Livestock{{Animal: "Carabao", HeadCount: 2}}
	a.Poultry = []entities.Poultry{{Bird: "Chicken", HeadCount: 10}}
	a.FarmParcels = []entities.FarmParcel{
		{ID: 101, TotalFarmAreaHa: ptr(2.0)},
		{ID: 102, TotalFarmAreaHa: ptr(3.0)},
	}
	infos := map[uint]entities.ParcelInfo{
		101: {ParcelID: 101, FarmKind: "Irrigated palay"},
	}

	got := New().ProductionSummary([]entities.Registrant{a}, infos)
	require.Contains(t, got, "Aplaya")
	s := got["Aplaya"]

	assert.Equal(t, 1, s.Rice.Rainfed.Count)
	assert.Equal(t, 1, s.Corn.White.Count)
	assert.Equal(t, 1, s.Corn.Yellow.Count)
	assert.Equal(t, 1, s.Others.Count)
	assert.Equal(t, 2, s.Livestock["Carabao"])
	assert.Equal(t, 10, s.Poultry["Chicken"])
	assert.Equal(t, 5.0, s.TotalArea)
	assert.Equal(t, 2.0, s.Rice.Irrigated.Area)

	// Remaining 3 ha split evenly across the three non-rice buckets.
	assert.InDelta(t, 1.0, s.Corn.White.Area, 1e-9)
	assert.InDelta(t, 1.0, s.Corn.Yellow.Area, 1e-9)
	assert.InDelta(t, 1.0, s.Others.Area, 1e-9)

	// Density and production are filled after allocation.
	assert.Equal(t, 1.0, s.Corn.White.Density)
	assert.Equal(t, 4.0, s.Corn.White.Production)
	assert.Equal(t, 8.0, s.Rice.Irrigated.Production)
}

func TestProductionSummaryYieldFactor(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{{Name: "Rice"}}
	a.FarmParcels = []entities.FarmParcel{{ID: 7, TotalFarmAreaHa: ptr(2.0)}}
	infos := map[uint]entities.ParcelInfo{7: {ParcelID: 7, FarmKind: "rainfed"}}

	got := New(WithYieldFactor(2.5)).ProductionSummary([]entities.Registrant{a}, infos)
	assert.Equal(t, 5.0, got["Aplaya"].Rice.Rainfed.Production)
}

func TestLocationStats(t *testing.T) {
	rs := []entities.Registrant{
		registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1"),
		registrant(2, entities.RegistryFisherfolk, "female", "Aplaya", "Purok 1"),
	}
	noAddr := registrant(3, entities.RegistryFarmer, "male", "", "")
	noAddr.Addresses = nil
	rs = append(rs, noAddr)

	got := New().LocationStats(rs)
	assert.Equal(t, RegistryCounts{Farmers: 1, Fisherfolks: 1}, got["Purok 1 (Aplaya)"])
	assert.Equal(t, RegistryCounts{Farmers: 1}, got["Unknown Purok (Unknown Brgy)"])
}

func TestCommodityTotals(t *testing.T) {
	a := registrant(1, entities.RegistryFarmer, "male", "Aplaya", "Purok 1")
	a.Crops = []entities.Crop{{Name: "Rice"}, {Name: "Rice"}, {Name: ""}}
	a.Livestock = []entities.Livestock{{Animal: "Goat", HeadCount: 3}, {Animal: "Goat", HeadCount: 0}}
	a.Poultry = []entities.Poultry{{Bird: "Chicken", HeadCount: 5}}

	got := New().CommodityTotals([]entities.Registrant{a})
	assert.Equal(t, 2, got.Crops["Rice"])
	assert.Equal(t, 1, got.Crops["Other"])
	assert.Equal(t, 4, got.Livestock["Goat"]) // zero head floors to one
	assert.Equal(t, 5, got.Poultry["Chicken"])
}
