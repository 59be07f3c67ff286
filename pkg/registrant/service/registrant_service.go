package service

import "agritech/entities"

// Actor identifies who performed a change, for the activity log.
type Actor struct {
	Name string
	IP   string
}

type RegistrantService interface {
	List() ([]entities.Registrant, error)
	Get(id uint) (*entities.Registrant, error)
	Create(r *entities.Registrant, by Actor) (*entities.Registrant, error)
	Update(id uint, r *entities.Registrant, by Actor) (*entities.Registrant, error)
	Archive(id uint, by Actor) error
	Restore(id uint, by Actor) error
	Purge(id uint, by Actor) error
	Deleted() ([]entities.Registrant, error)
}
