package config

import (
	"fmt"

	"github.com/mwhitfield/shopcore/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Auto-migrate the schema
	err = DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Card{},
		&models.Cart{},
		&models.CartItem{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	ensureProductsTableExists()
}

// ensureProductsTableExists bootstraps the products catalog table. The catalog
// is owned by another service; this one only reads it, so it is created here
// for local development but never migrated.
func ensureProductsTableExists() {
	type result struct{ TableName string }
	var res result
	DB.Raw("SELECT to_regclass('public.products') AS table_name;").Scan(&res)
	if res.TableName == "" {
		err := DB.Exec(`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255),
			price NUMERIC(10,2),
			description TEXT,
			quantity INTEGER DEFAULT 0
		);`).Error
		if err != nil {
			panic(fmt.Sprintf("Failed to create products table: %v", err))
		}
	}
}
