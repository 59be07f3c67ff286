package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agritech/entities"
	"agritech/pkg/refdata/repository"
)

type barangayRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BarangayRepository { return &barangayRepo{db} }

func (r *barangayRepo) Upsert(bs []entities.Barangay) (int, error) {
	n := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range bs {
			var existing entities.Barangay
			res := tx.Where("name = ?", bs[i].Name).First(&existing)
			switch {
			case errors.Is(res.Error, gorm.ErrRecordNotFound):
				if err := tx.Create(&bs[i]).Error; err != nil {
					return err
				}
				n++
			case res.Error != nil:
				return res.Error
			default:
				existing.PSGCCode = bs[i].PSGCCode
				existing.District = bs[i].District
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return n, err
}

func (r *barangayRepo) List() ([]entities.Barangay, error) {
	var out []entities.Barangay
	return out, r.db.Order("name ASC").Find(&out).Error
}
