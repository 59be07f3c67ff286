package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agritech/entities"
	histRepoImp "agritech/pkg/history/repositoryImp"
	regRepoImp "agritech/pkg/registrant/repositoryImp"
	"agritech/pkg/registrant/service"
)

func testSvc(t *testing.T) (service.RegistrantService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Registrant{}, &entities.Address{}, &entities.Crop{},
		&entities.Livestock{}, &entities.Poultry{}, &entities.FarmParcel{},
		&entities.ParcelInfo{}, &entities.FinancialInfo{}, &entities.ActivityLog{},
	))
	return New(regRepoImp.New(db), histRepoImp.New(db)), db
}

var clerk = service.Actor{Name: "Ana", IP: "10.0.0.5"}

func valid() *entities.Registrant {
	return &entities.Registrant{
		ReferenceNo: "06-30-08-001",
		Registry:    entities.RegistryFarmer,
		Surname:     "Dela Cruz",
		FirstName:   "Juan",
	}
}

func TestCreateLogsActivity(t *testing.T) {
	svc, db := testSvc(t)
	r, err := svc.Create(valid(), clerk)
	require.NoError(t, err)
	assert.NotZero(t, r.ID)

	var logs []entities.ActivityLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "Ana", logs[0].UserName)
	assert.Equal(t, "created registrant", logs[0].Action)
	assert.Equal(t, "06-30-08-001", logs[0].Target)
	assert.Equal(t, "10.0.0.5", logs[0].IPAddress)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := testSvc(t)

	r := valid()
	r.ReferenceNo = "  "
	_, err := svc.Create(r, clerk)
	assert.Error(t, err)

	r = valid()
	r.Registry = "vendor"
	_, err = svc.Create(r, clerk)
	assert.ErrorContains(t, err, "registry")

	r = valid()
	r.Surname = ""
	_, err = svc.Create(r, clerk)
	assert.Error(t, err)
}

func TestUpdateKeepsIdentity(t *testing.T) {
	svc, _ := testSvc(t)
	created, err := svc.Create(valid(), clerk)
	require.NoError(t, err)

	upd := valid()
	upd.FirstName = "Juanito"
	got, err := svc.Update(created.ID, upd, clerk)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Juanito", got.FirstName)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestUpdateReplacesChildren(t *testing.T) {
	svc, db := testSvc(t)

	withChildren := func() *entities.Registrant {
		r := valid()
		r.Addresses = []entities.Address{{Barangay: "Aplaya", Purok: "Purok 1"}}
		r.Crops = []entities.Crop{{Name: "Rice"}, {Name: "Corn"}}
		r.Livestock = []entities.Livestock{{Animal: "Carabao", HeadCount: 2}}
		return r
	}
	created, err := svc.Create(withChildren(), clerk)
	require.NoError(t, err)

	// Re-submitting the same payload must not grow the child collections.
	_, err = svc.Update(created.ID, withChildren(), clerk)
	require.NoError(t, err)

	var crops, addresses, livestock int64
	require.NoError(t, db.Model(&entities.Crop{}).Where("registrant_id = ?", created.ID).Count(&crops).Error)
	require.NoError(t, db.Model(&entities.Address{}).Where("registrant_id = ?", created.ID).Count(&addresses).Error)
	require.NoError(t, db.Model(&entities.Livestock{}).Where("registrant_id = ?", created.ID).Count(&livestock).Error)
	assert.EqualValues(t, 2, crops)
	assert.EqualValues(t, 1, addresses)
	assert.EqualValues(t, 1, livestock)

	// Dropping a crop from the payload removes it.
	smaller := withChildren()
	smaller.Crops = smaller.Crops[:1]
	_, err = svc.Update(created.ID, smaller, clerk)
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, got.Crops, 1)
	assert.Equal(t, "Rice", got.Crops[0].Name)
	require.Len(t, got.Addresses, 1)
}

func TestArchiveRestorePurge(t *testing.T) {
	svc, db := testSvc(t)
	created, err := svc.Create(valid(), clerk)
	require.NoError(t, err)

	require.NoError(t, svc.Archive(created.ID, clerk))
	deleted, err := svc.Deleted()
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	require.NoError(t, svc.Restore(created.ID, clerk))
	active, err := svc.List()
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, svc.Archive(created.ID, clerk))
	require.NoError(t, svc.Purge(created.ID, clerk))
	deleted, err = svc.Deleted()
	require.NoError(t, err)
	assert.Empty(t, deleted)

	var logs []entities.ActivityLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 5)
	assert.Equal(t, "permanently deleted registrant", logs[4].Action)
}
