package serviceImp

import (
	"agritech/pkg/dashboard/service"
	"agritech/pkg/registrant/repository"
	"agritech/pkg/stats"
)

const topPurokLimit = 5

type dashboardSvc struct {
	repo   repository.RegistrantRepository
	engine stats.Engine
}

func New(repo repository.RegistrantRepository, engine stats.Engine) service.DashboardService {
	return &dashboardSvc{repo: repo, engine: engine}
}

// Build loads the registrant snapshot once and runs every aggregation over
// it, so all the charts on one dashboard load agree with each other.
func (s *dashboardSvc) Build(year int) (*service.Payload, error) {
	rs, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	infos, err := s.repo.ParcelInfos()
	if err != nil {
		return nil, err
	}

	byArea, detailed := s.engine.ProductionByArea(rs)
	p := &service.Payload{
		Totals:             s.engine.Totals(rs),
		MonthlyData:        s.engine.MonthlySeries(rs, year),
		ProductionByArea:   byArea,
		DetailedProduction: detailed,
		TopPuroks:          s.engine.TopPuroks(rs, year, topPurokLimit),
		CropsByPurok:       s.engine.CropsByPurok(rs),
		AnimalsByPurok:     s.engine.AnimalsByPurok(rs),
		CropDensityByArea:  s.engine.CropDensityByArea(rs),
		ProductionSummary:  s.engine.ProductionSummary(rs, infos),
		Year:               year,
	}
	return p, nil
}
