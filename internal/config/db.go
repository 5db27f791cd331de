package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		tipo VARCHAR(20) NOT NULL CHECK (tipo IN ('ingreso', 'gasto')),
		monto DOUBLE PRECISION NOT NULL,
		categoria VARCHAR(100) NOT NULL,
		descripcion TEXT,
		fecha TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS cash_counts (
		id TEXT PRIMARY KEY,
		billetes_100000 INTEGER NOT NULL DEFAULT 0,
		billetes_50000 INTEGER NOT NULL DEFAULT 0,
		billetes_20000 INTEGER NOT NULL DEFAULT 0,
		billetes_10000 INTEGER NOT NULL DEFAULT 0,
		billetes_5000 INTEGER NOT NULL DEFAULT 0,
		billetes_2000 INTEGER NOT NULL DEFAULT 0,
		monedas_1000 INTEGER NOT NULL DEFAULT 0,
		monedas_500 INTEGER NOT NULL DEFAULT 0,
		monedas_200 INTEGER NOT NULL DEFAULT 0,
		monedas_100 INTEGER NOT NULL DEFAULT 0,
		monedas_50 INTEGER NOT NULL DEFAULT 0,
		total DOUBLE PRECISION NOT NULL,
		descripcion TEXT,
		fecha TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_transactions_tipo ON transactions(tipo);
	CREATE INDEX IF NOT EXISTS idx_transactions_categoria ON transactions(categoria);
	CREATE INDEX IF NOT EXISTS idx_transactions_fecha ON transactions(fecha);
	CREATE INDEX IF NOT EXISTS idx_cash_counts_fecha ON cash_counts(fecha);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
