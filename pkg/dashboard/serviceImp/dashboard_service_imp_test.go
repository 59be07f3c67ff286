package serviceImp

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agritech/entities"
	regRepoImp "agritech/pkg/registrant/repositoryImp"
	"agritech/pkg/stats"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Registrant{}, &entities.Address{}, &entities.Crop{},
		&entities.Livestock{}, &entities.Poultry{}, &entities.FarmParcel{},
		&entities.ParcelInfo{}, &entities.FinancialInfo{},
	))
	return db
}

func TestBuildCapsTopPuroks(t *testing.T) {
	db := testDB(t)
	year := time.Now().Year()
	for i := 0; i < 7; i++ {
		r := entities.Registrant{
			ReferenceNo: fmt.Sprintf("06-30-08-%03d", i),
			Registry:    entities.RegistryFarmer,
			Surname:     "Dela Cruz",
			FirstName:   "Juan",
			Addresses:   []entities.Address{{Barangay: "Aplaya", Purok: fmt.Sprintf("Purok %d", i)}},
		}
		require.NoError(t, db.Create(&r).Error)
	}

	svc := New(regRepoImp.New(db), stats.New())
	p, err := svc.Build(year)
	require.NoError(t, err)

	// The dashboard shows the top five puroks only.
	assert.Len(t, p.TopPuroks, 5)
	assert.Equal(t, 7, p.TotalFarmers)
	assert.Equal(t, year, p.Year)
}
