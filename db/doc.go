// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the SQL schema used by the SQL document backend.

# Schema

A single table holds each JSON document wholesale:

	document(name TEXT PRIMARY KEY, payload TEXT, updated_at TIMESTAMP)

Rows are keyed by document name (games, suggestions, queue). The DDL is
portable across SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq).

# Usage

	conn, _ := sql.Open("sqlite", "file:wheel.db")
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

CreateSchema is idempotent.
*/
package db
