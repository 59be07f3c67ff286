package serviceImp

import (
	"fmt"
	"log"
	"strings"

	"agritech/entities"
	histrepo "agritech/pkg/history/repository"
	"agritech/pkg/registrant/repository"
	"agritech/pkg/registrant/service"
)

var validRegistries = map[string]bool{
	entities.RegistryFarmer:     true,
	entities.RegistryFisherfolk: true,
	entities.RegistryAgriYouth:  true,
	entities.RegistryFarmWorker: true,
}

type registrantSvc struct {
	repo repository.RegistrantRepository
	hist histrepo.HistoryRepository
}

func New(repo repository.RegistrantRepository, hist histrepo.HistoryRepository) service.RegistrantService {
	return &registrantSvc{repo: repo, hist: hist}
}

func validate(r *entities.Registrant) error {
	if strings.TrimSpace(r.ReferenceNo) == "" {
		return fmt.Errorf("reference number is required")
	}
	if strings.TrimSpace(r.Surname) == "" || strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("surname and first name are required")
	}
	if !validRegistries[r.Registry] {
		return fmt.Errorf("unknown registry type %q", r.Registry)
	}
	return nil
}

func (s *registrantSvc) log(by service.Actor, action string, r *entities.Registrant) {
	target := r.ReferenceNo
	if target == "" {
		target = fmt.Sprintf("#%d", r.ID)
	}
	e := &entities.ActivityLog{UserName: by.Name, Action: action, Target: target, IPAddress: by.IP}
	if err := s.hist.Log(e); err != nil {
		// The log row is best effort; the mutation itself already
		// succeeded, so only complain.
		log.Printf("[registrant] activity log failed: %v", err)
	}
}

func (s *registrantSvc) List() ([]entities.Registrant, error) { return s.repo.ListActive() }

func (s *registrantSvc) Get(id uint) (*entities.Registrant, error) { return s.repo.FindByID(id) }

func (s *registrantSvc) Deleted() ([]entities.Registrant, error) { return s.repo.ListDeleted() }

func (s *registrantSvc) Create(r *entities.Registrant, by service.Actor) (*entities.Registrant, error) {
	if err := validate(r); err != nil {
		return nil, err
	}
	if err := s.repo.Create(r); err != nil {
		return nil, err
	}
	s.log(by, "created registrant", r)
	return r, nil
}

func (s *registrantSvc) Update(id uint, r *entities.Registrant, by service.Actor) (*entities.Registrant, error) {
	if err := validate(r); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(r); err != nil {
		return nil, err
	}
	s.log(by, "updated registrant", r)
	return r, nil
}

func (s *registrantSvc) Archive(id uint, by service.Actor) error {
	r, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return err
	}
	s.log(by, "archived registrant", r)
	return nil
}

func (s *registrantSvc) Restore(id uint, by service.Actor) error {
	if err := s.repo.Restore(id); err != nil {
		return err
	}
	r, err := s.repo.FindByID(id)
	if err == nil {
		s.log(by, "restored registrant", r)
	}
	return nil
}

func (s *registrantSvc) Purge(id uint, by service.Actor) error {
	ref := fmt.Sprintf("#%d", id)
	if err := s.repo.Purge(id); err != nil {
		return err
	}
	s.log(by, "permanently deleted registrant", &entities.Registrant{ReferenceNo: ref})
	return nil
}
