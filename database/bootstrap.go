// database/bootstrap.go
package database

import (
	"errors"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agritech/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Rename the legacy rsbsa_no column BEFORE AutoMigrate so GORM doesn't
	// add a second, empty reference_no column next to it.
	if err := migrateRegistrantsRenameRef(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Registrant{},
		&entities.Address{},
		&entities.Crop{},
		&entities.Livestock{},
		&entities.Poultry{},
		&entities.FarmParcel{},
		&entities.ParcelInfo{},
		&entities.FinancialInfo{},
		&entities.User{},
		&entities.ActivityLog{},
		&entities.Barangay{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateRegistrantsRenameRef handles databases created before the RSBSA
// column was renamed from rsbsa_no to reference_no.
func migrateRegistrantsRenameRef(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='registrants'`).Scan(&tbl).Error; err != nil {
		return err
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(registrants)`).Scan(&cols).Error; err != nil {
		return err
	}
	hasOld, hasNew := false, false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "rsbsa_no":
			hasOld = true
		case "reference_no":
			hasNew = true
		}
	}
	if !hasOld || hasNew {
		return nil
	}
	return db.Exec(`ALTER TABLE registrants RENAME COLUMN rsbsa_no TO reference_no`).Error
}

// SeedAdmin creates the first admin account when the users table is empty.
// Mirrors the office's setup script: no password in env means no seed.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var existing entities.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("[db] admin already exists: %s", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := entities.User{Email: email, PasswordHash: string(hash), Role: "admin", Name: "Administrator"}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	log.Printf("[db] seeded admin: %s id=%d", email, u.ID)
	return nil
}
