// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// SQLBackend stores documents as rows of the document table.
type SQLBackend struct {
	db        *sql.DB
	loadQuery string
	saveQuery string
}

// NewSQLBackend expects the schema from db.CreateSchema to exist.
// dialect is TypeSQLite or TypePostgres.
func NewSQLBackend(conn *sql.DB, dialect string) *SQLBackend {
	b := &SQLBackend{db: conn}
	if dialect == TypePostgres {
		b.loadQuery = `SELECT payload FROM document WHERE name = $1`
		b.saveQuery = `
			INSERT INTO document (name, payload, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
		`
	} else {
		b.loadQuery = `SELECT payload FROM document WHERE name = ?`
		b.saveQuery = `
			INSERT INTO document (name, payload, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
		`
	}
	return b
}

func (b *SQLBackend) Load(ctx context.Context, doc Document) ([]byte, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, b.loadQuery, string(doc)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", doc, err)
	}
	return []byte(payload), nil
}

func (b *SQLBackend) Save(ctx context.Context, doc Document, payload []byte) error {
	_, err := b.db.ExecContext(ctx, b.saveQuery, string(doc), string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", doc, err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
