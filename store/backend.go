// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/game-wheel/db"
)

// Document names a JSON document persisted wholesale by a Backend.
type Document string

const (
	DocLists       Document = "games"
	DocSuggestions Document = "suggestions"
	DocQueue       Document = "queue"
)

// Documents lists every document a Store owns.
var Documents = []Document{DocLists, DocSuggestions, DocQueue}

// ErrNoDocument is returned by Backend.Load when the document was never saved.
var ErrNoDocument = errors.New("document does not exist")

// Backend reads and writes whole JSON documents.
type Backend interface {
	Load(ctx context.Context, doc Document) ([]byte, error)
	Save(ctx context.Context, doc Document, payload []byte) error
	Close() error
}

// Backend types accepted by OpenBackend
const (
	TypeFile     = "file"
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeRedis    = "redis"
)

type Options struct {
	Type        string
	DataDir     string
	DatabaseURL string
	RedisURL    string
}

// OpenBackend connects the backend selected by opts.Type.
func OpenBackend(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Type {
	case "", TypeFile:
		return NewFileBackend(opts.DataDir)

	case TypeSQLite, TypePostgres:
		conn, err := sql.Open(opts.Type, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", opts.Type, err)
		}
		if opts.Type == TypeSQLite {
			// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
			conn.SetMaxOpenConns(1)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ping %s: %w", opts.Type, err)
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return NewSQLBackend(conn, opts.Type), nil

	case TypeRedis:
		return NewRedisBackend(ctx, opts.RedisURL)

	default:
		return nil, fmt.Errorf("unknown store type %q", opts.Type)
	}
}
