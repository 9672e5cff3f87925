// Package store persists quotations in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/date"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS quotations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	currency TEXT NOT NULL,
	latest_date TEXT NOT NULL,
	previous_date TEXT NOT NULL,
	latest_value REAL NOT NULL,
	previous_value REAL NOT NULL
);`

// Store is a quotation table.
type Store struct {
	db *sql.DB
}

// Open opens, or creates, the database at path and makes sure the quotations table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		log.Debug("cannot initialize database", "path", path, "err", err)
		return nil, fmt.Errorf("cannot initialize database %q: %w", path, err)
	}
	log.Debug("database ready", "path", path)
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Add inserts q and returns its new ID. q.ID is ignored. A zero previous date is stored
// as an empty string.
func (s *Store) Add(ctx context.Context, q cambio.Quotation) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO quotations (currency, latest_date, previous_date, latest_value, previous_value) VALUES (?, ?, ?, ?, ?);`,
		q.Currency, q.LatestDate.String(), q.PreviousDate.String(), q.LatestValue, q.PreviousValue)
	if err != nil {
		log.Debug("cannot add quotation", "currency", q.Currency, "err", err)
		return 0, fmt.Errorf("cannot add %s quotation: %w", q.Currency, err)
	}
	return res.LastInsertId()
}

// All returns every stored quotation, in insertion order.
func (s *Store) All(ctx context.Context) ([]cambio.Quotation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, currency, latest_date, previous_date, latest_value, previous_value FROM quotations ORDER BY id;`)
	if err != nil {
		log.Debug("cannot list quotations", "err", err)
		return nil, fmt.Errorf("cannot list quotations: %w", err)
	}
	defer rows.Close()

	var list []cambio.Quotation
	for rows.Next() {
		var (
			q              cambio.Quotation
			latest, before string
		)
		if err := rows.Scan(&q.ID, &q.Currency, &latest, &before, &q.LatestValue, &q.PreviousValue); err != nil {
			return nil, fmt.Errorf("cannot read quotation: %w", err)
		}
		if q.LatestDate, err = date.Parse(latest); err != nil {
			return nil, fmt.Errorf("quotation #%d: %w", q.ID, err)
		}
		if q.PreviousDate, err = date.Parse(before); err != nil {
			return nil, fmt.Errorf("quotation #%d: %w", q.ID, err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}
