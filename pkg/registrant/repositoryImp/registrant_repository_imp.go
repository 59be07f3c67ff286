package repositoryImp

import (
	"gorm.io/gorm"

	"agritech/entities"
	"agritech/pkg/registrant/repository"
)

type registrantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RegistrantRepository { return &registrantRepo{db} }

func (r *registrantRepo) preload() *gorm.DB {
	return r.db.
		Preload("Addresses").
		Preload("Crops").
		Preload("Livestock").
		Preload("Poultry").
		Preload("FarmParcels").
		Preload("FinancialInfos")
}

func (r *registrantRepo) Create(reg *entities.Registrant) error { return r.db.Create(reg).Error }

// Update replaces the registrant and its child collections wholesale. The
// request carries the full desired state, so existing child rows are dropped
// before the save; reusing Save alone would insert the zero-ID children next
// to the old ones.
func (r *registrantRepo) Update(reg *entities.Registrant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{
			&entities.Address{}, &entities.Crop{}, &entities.Livestock{},
			&entities.Poultry{}, &entities.FarmParcel{}, &entities.FinancialInfo{},
		} {
			if err := tx.Unscoped().Where("registrant_id = ?", reg.ID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Save(reg).Error
	})
}

func (r *registrantRepo) FindByID(id uint) (*entities.Registrant, error) {
	var reg entities.Registrant
	if err := r.preload().First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrantRepo) ListActive() ([]entities.Registrant, error) {
	var out []entities.Registrant
	return out, r.preload().Order("created_at DESC").Find(&out).Error
}

func (r *registrantRepo) ListDeleted() ([]entities.Registrant, error) {
	var out []entities.Registrant
	return out, r.db.Unscoped().
		Preload("Addresses").
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&out).Error
}

func (r *registrantRepo) SoftDelete(id uint) error {
	return r.db.Delete(&entities.Registrant{}, id).Error
}

func (r *registrantRepo) Restore(id uint) error {
	return r.db.Unscoped().Model(&entities.Registrant{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *registrantRepo) Purge(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{
			&entities.Address{}, &entities.Crop{}, &entities.Livestock{},
			&entities.Poultry{}, &entities.FarmParcel{}, &entities.FinancialInfo{},
		} {
			if err := tx.Unscoped().Where("registrant_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&entities.Registrant{}, id).Error
	})
}

func (r *registrantRepo) ParcelInfos() (map[uint]entities.ParcelInfo, error) {
	var infos []entities.ParcelInfo
	if err := r.db.Find(&infos).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.ParcelInfo, len(infos))
	for i := range infos {
		m[infos[i].ParcelID] = infos[i]
	}
	return m, nil
}
