package repository

import "agritech/entities"

type BarangayRepository interface {
	// Upsert inserts new barangays and refreshes existing ones by name.
	Upsert(bs []entities.Barangay) (int, error)
	List() ([]entities.Barangay, error)
}
