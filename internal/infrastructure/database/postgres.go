package database

import (
	"fmt"
	"log"

	"github.com/Prathamesh404NotFound/Billing-System/internal/config"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Item{},
		&entity.ItemVariant{},

		// Billing entities
		&entity.Bill{},
		&entity.BillItem{},

		// Dealer entities
		&entity.Dealer{},
		&entity.DealerPurchase{},
		&entity.PurchaseItem{},

		// Service entities
		&entity.Alteration{},

		// System entities
		&entity.ShopSettings{},
		&entity.User{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (categories, sample
// items, shop settings, admin user). Each block is idempotent: existing rows
// are left untouched.
func SeedDefaultData(db *gorm.DB, adminCfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	categories := []entity.Category{
		{ID: "shirts", Name: "Shirts", Icon: "👔"},
		{ID: "pants", Name: "Pants", Icon: "👖"},
		{ID: "tshirts", Name: "T-Shirts", Icon: "👕"},
		{ID: "shorts", Name: "Shorts", Icon: "⏱️"},
		{ID: "innerwear", Name: "Innerwear", Icon: "🧥"},
		{ID: "fullsets", Name: "Full Sets", Icon: "👗"},
		{ID: "boyskids", Name: "Kids Wear (Boys)", Icon: "👦"},
		{ID: "girlskids", Name: "Kids Wear (Girls)", Icon: "👧"},
		{ID: "accessories", Name: "Accessories", Icon: "🎩"},
	}

	for i := range categories {
		var existing entity.Category
		if err := db.Where("id = ?", categories[i].ID).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", categories[i].ID, err)
			}
		}
	}

	items := []entity.Item{
		{
			ID: "s1", CategoryID: "shirts", Subcategory: "Formal",
			Name: "Formal White Shirt", Description: "Premium cotton formal shirt",
			Variants: []entity.ItemVariant{
				{ID: "s1-S-1299", Size: "S", Price: 1299, Stock: 10},
				{ID: "s1-M-1299", Size: "M", Price: 1299, Stock: 15},
				{ID: "s1-L-1399", Size: "L", Price: 1399, Stock: 8},
			},
		},
		{
			ID: "s2", CategoryID: "shirts", Subcategory: "Formal",
			Name: "Formal Blue Shirt", Description: "Classic blue formal shirt",
			Variants: []entity.ItemVariant{
				{ID: "s2-M-1399", Size: "M", Price: 1399, Stock: 20},
				{ID: "s2-XL-1499", Size: "XL", Price: 1499, Stock: 5},
			},
		},
		{
			ID: "p1", CategoryID: "pants", Subcategory: "Formal",
			Name: "Formal Black Pants", Description: "Premium formal trousers",
			Variants: []entity.ItemVariant{
				{ID: "p1-30-1599", Size: "30", Price: 1599, Stock: 12},
				{ID: "p1-32-1599", Size: "32", Price: 1599, Stock: 18},
				{ID: "p1-34-1699", Size: "34", Price: 1699, Stock: 7},
			},
		},
	}

	for i := range items {
		var existing entity.Item
		if err := db.Where("id = ?", items[i].ID).First(&existing).Error; err != nil {
			if err := db.Create(&items[i]).Error; err != nil {
				log.Printf("Warning: failed to create item %s: %v", items[i].ID, err)
			}
		}
	}

	var settings entity.ShopSettings
	if err := db.First(&settings, 1).Error; err != nil {
		defaults := entity.DefaultShopSettings()
		if err := db.Create(&defaults).Error; err != nil {
			log.Printf("Warning: failed to create default shop settings: %v", err)
		}
	}

	// Bootstrap admin user if configured
	if adminCfg != nil && adminCfg.Username != "" && adminCfg.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminCfg.Username).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					Name:     "Administrator",
					Username: adminCfg.Username,
					Password: string(hashedPassword),
					Role:     enum.RoleAdmin,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminCfg.Username)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminCfg.Username)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
