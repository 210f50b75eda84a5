package postgres

import (
	"database/sql"
	"fmt"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a lib/pq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects through the lib/pq driver and hands the pool to GORM, so
// driver errors surface as *pq.Error (see productrepo unique name handling).
func Open(dsn string, config *gorm.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if config == nil {
		config = &gorm.Config{}
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), config)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("initialize gorm: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the products, orders and order_items tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
