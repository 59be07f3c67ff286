package service

import "agritech/pkg/stats"

// Payload is the full dashboard response, shaped the way the frontend
// charts consume it.
type Payload struct {
	stats.Totals

	MonthlyData        stats.MonthlySeries               `json:"monthlyData"`
	ProductionByArea   map[string]stats.AreaCounts       `json:"productionByArea"`
	DetailedProduction stats.DetailedProduction          `json:"detailedProductionData"`
	TopPuroks          []stats.PurokCount                `json:"topPuroks"`
	CropsByPurok       map[string]map[string]int         `json:"cropsDataByPurok"`
	AnimalsByPurok     map[string]map[string]int         `json:"animalsDataByPurok"`
	CropDensityByArea  map[string]stats.CropDensity      `json:"cropDensityByArea"`
	ProductionSummary  map[string]*stats.BarangaySummary `json:"productionSummary"`
	Year               int                               `json:"year"`
}

type DashboardService interface {
	Build(year int) (*Payload, error)
}
