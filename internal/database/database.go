// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/logging"
)

const (
	inMemoryPath = ":memory:"

	// defaultQueryTimeout applies to calls whose context has no deadline.
	defaultQueryTimeout = 30 * time.Second
)

// DB is the DuckDB-backed Store. Both tables live in one database file
// (or in memory when Path is ":memory:").
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens the database at cfg.Path, creating its directory if needed,
// and makes sure the game_sales and trends tables exist.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if dir := filepath.Dir(cfg.Path); cfg.Path != inMemoryPath && dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("duckdb", dsn(cfg.Path, threads, cfg.MaxMemory))
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	// DuckDB parallelises inside a query, so a handful of connections is enough.
	conn.SetMaxOpenConns(threads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	db := &DB{conn: conn, cfg: cfg}
	if err := db.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if !cfg.SkipIndexes {
		if err := db.createIndexes(); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	logging.Debug().Str("path", cfg.Path).Int("threads", threads).Msg("DuckDB opened")
	return db, nil
}

// dsn builds the connection string. Extension autoloading is off because
// the schema only needs core types.
func dsn(path string, threads int, maxMemory string) string {
	if maxMemory == "" {
		maxMemory = "1GB"
	}
	return fmt.Sprintf(
		"%s?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		path, threads, maxMemory)
}

func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close checkpoints file-backed databases before closing the pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if db.cfg.Path != inMemoryPath {
		ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
		defer cancel()
		if err := db.Checkpoint(ctx); err != nil {
			logging.Warn().Err(err).Msg("Checkpoint before close failed")
		}
	}
	return db.conn.Close()
}

// Ping reports whether DuckDB answers.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return errors.New("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Checkpoint flushes the WAL into the database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// ensureContext adds defaultQueryTimeout when ctx has no deadline. A nil
// ctx is treated as context.Background().
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
