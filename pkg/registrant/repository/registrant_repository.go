package repository

import "agritech/entities"

type RegistrantRepository interface {
	Create(r *entities.Registrant) error
	// Update saves the registrant and replaces its child collections with
	// the ones on r.
	Update(r *entities.Registrant) error
	FindByID(id uint) (*entities.Registrant, error)
	// ListActive returns non-deleted registrants with every child
	// collection preloaded, newest first.
	ListActive() ([]entities.Registrant, error)
	// ListDeleted returns soft-deleted registrants only.
	ListDeleted() ([]entities.Registrant, error)
	SoftDelete(id uint) error
	Restore(id uint) error
	// Purge permanently removes the registrant and its children.
	Purge(id uint) error
	// ParcelInfos returns the farm-kind lookup keyed by parcel id.
	ParcelInfos() (map[uint]entities.ParcelInfo, error)
}
