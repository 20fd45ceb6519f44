package database

import (
	"database/sql"
	"fmt"
	"log"
)

const createCustomersTable = `
	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		first_name VARCHAR(32) NOT NULL,
		last_name VARCHAR(32) NOT NULL,
		email VARCHAR(96) UNIQUE NOT NULL,
		telephone VARCHAR(32) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

const createOrdersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		reference VARCHAR(255) UNIQUE NOT NULL,
		customer_email VARCHAR(96) NOT NULL,
		amount BIGINT NOT NULL,
		currency VARCHAR(3) NOT NULL,
		items INTEGER NOT NULL,
		status VARCHAR(50) NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		billing_first_name VARCHAR(32) NOT NULL,
		billing_last_name VARCHAR(32) NOT NULL,
		billing_address_1 VARCHAR(128) NOT NULL,
		billing_address_2 VARCHAR(128) NOT NULL DEFAULT '',
		billing_city VARCHAR(128) NOT NULL,
		billing_postcode VARCHAR(10) NOT NULL DEFAULT '',
		billing_country VARCHAR(128) NOT NULL,
		billing_zone VARCHAR(128) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_orders_reference ON orders(reference);
	CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders(customer_email);
	`

// RunMigrations creates the shop's tables in db's current schema
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(createCustomersTable); err != nil {
		return fmt.Errorf("failed to create customers table: %w", err)
	}
	if _, err := db.Exec(createOrdersTable); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
