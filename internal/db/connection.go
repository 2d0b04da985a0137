package db

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB holds the database connection pool and queries
type DB struct {
	Pool    *pgxpool.Pool
	Queries *Queries
}

// NewDB creates a new DB instance from DATABASE_URL. It returns (nil, nil)
// when the URL is not configured, so the server can come up with the
// authenticated pipeline disabled.
func NewDB(ctx context.Context) (*DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Println("WARN: DATABASE_URL not set. Quiz persistence will be unavailable.")
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	return &DB{
		Pool:    pool,
		Queries: New(pool),
	}, nil
}

// Close closes the database connection
func (db *DB) Close() {
	db.Pool.Close()
}
