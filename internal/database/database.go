package database

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"

	"microtwit/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

const connectDelay = 5 * time.Second

// Connect opens the pool and waits for the database to become reachable,
// retrying with a fixed delay until a connection succeeds. Startup blocks
// for as long as the database takes to come up.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	return connectLoop(connectDelay, func() (*sqlx.DB, error) {
		return sqlx.Connect("postgres", dsn)
	})
}

// connectLoop retries dial until it succeeds.
func connectLoop(delay time.Duration, dial func() (*sqlx.DB, error)) (*sqlx.DB, error) {
	for {
		db, err := dial()
		if err == nil {
			log.Println("Connected to database successfully")
			return db, nil
		}
		log.Printf("Database not ready (%v), retrying in %s", err, delay)
		time.Sleep(delay)
	}
}

// Migrate applies the embedded goose migrations, creating the schema on
// first startup.
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return fmt.Errorf("failed to get DB version: %w", err)
	}
	log.Printf("Migrations applied successfully. Current DB version: %d", version)

	return nil
}
