package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/models"
)

var conn *gorm.DB

func Init(path string) error {
	var err error
	conn, err = gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Vendor{},
		&models.VendorBooth{},
		&models.FoodVendor{},
		&models.Team{},
		&models.TeamPlayer{},
		&models.Sponsor{},
		&models.Player{},
		&models.BounceHouseRegistration{},
		&models.BounceChild{},
		&models.Feedback{},
		&models.InternalFeedback{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_teams_category_status ON teams(category, registration_status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_sponsors_tier_payment ON sponsors(tier, payment_status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_vendors_type_payment  ON vendors(vendor_type, payment_status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_players_payment_reg   ON players(payment_status, registration_status)")

	log.Println("database ready (sqlite)")
	return nil
}

func Conn() *gorm.DB {
	return conn
}
