package migration

import (
	entities2 "agrisync-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Batch{}); err != nil {
		log.Fatalf("Error migrating batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Event{}); err != nil {
		log.Fatalf("Error migrating event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Certification{}); err != nil {
		log.Fatalf("Error migrating certification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.QRScan{}); err != nil {
		log.Fatalf("Error migrating qr scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.QuoteRequest{}); err != nil {
		log.Fatalf("Error migrating quote request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.OTPVerification{}); err != nil {
		log.Fatalf("Error migrating otp verification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
