// Package cache stores the last light snapshot fetched from the bridge in SQLite.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned when the cache is used after Close.
var ErrClosed = errors.New("light cache is closed")

// LightCache is a SQLite-backed light snapshot.
type LightCache struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the cache database at dbPath.
func Open(dbPath string) (*LightCache, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("light cache: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("light cache: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("light cache: open db: %w", err)
	}

	c := &LightCache{db: db, now: time.Now}
	if err := c.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *LightCache) init() error {
	if _, err := c.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("light cache: set busy timeout: %w", err)
	}
	if _, err := c.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("light cache: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (c *LightCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Store replaces the cached snapshot with lights, keeping their order.
func (c *LightCache) Store(ctx context.Context, lights domain.Lights) error {
	if c.db == nil {
		return ErrClosed
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("light cache: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM lights"); err != nil {
		return fmt.Errorf("light cache: clear: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lights
		(position, id, name, is_on, bri, hue, sat, x, y, effect, reachable, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("light cache: prepare insert: %w", err)
	}
	defer stmt.Close()

	updatedAt := c.now().UTC().Format(time.RFC3339)
	for i, l := range lights {
		s := l.State
		if _, err := stmt.ExecContext(ctx, i, l.ID, l.Name, s.On, s.Bri, s.Hue, s.Sat,
			s.XY[0], s.XY[1], s.Effect, s.Reachable, updatedAt); err != nil {
			return fmt.Errorf("light cache: insert light %s: %w", l.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("light cache: commit: %w", err)
	}
	return nil
}

// Load returns the cached snapshot in stored order. An empty cache yields no lights.
func (c *LightCache) Load(ctx context.Context) (domain.Lights, error) {
	if c.db == nil {
		return nil, ErrClosed
	}
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, is_on, bri, hue, sat, x, y, effect, reachable
		FROM lights ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("light cache: query: %w", err)
	}
	defer rows.Close()

	var lights domain.Lights
	for rows.Next() {
		var l domain.Light
		s := &l.State
		if err := rows.Scan(&l.ID, &l.Name, &s.On, &s.Bri, &s.Hue, &s.Sat,
			&s.XY[0], &s.XY[1], &s.Effect, &s.Reachable); err != nil {
			return nil, fmt.Errorf("light cache: scan: %w", err)
		}
		lights = append(lights, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("light cache: rows: %w", err)
	}
	return lights, nil
}

// UpdatedAt returns when the snapshot was last stored, or the zero time if never.
func (c *LightCache) UpdatedAt(ctx context.Context) (time.Time, error) {
	if c.db == nil {
		return time.Time{}, ErrClosed
	}
	var raw sql.NullString
	if err := c.db.QueryRowContext(ctx, "SELECT MAX(updated_at) FROM lights").Scan(&raw); err != nil {
		return time.Time{}, fmt.Errorf("light cache: updated_at: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("light cache: parse updated_at: %w", err)
	}
	return t, nil
}

// Clear removes the cached snapshot.
func (c *LightCache) Clear(ctx context.Context) error {
	if c.db == nil {
		return ErrClosed
	}
	if _, err := c.db.ExecContext(ctx, "DELETE FROM lights"); err != nil {
		return fmt.Errorf("light cache: clear: %w", err)
	}
	return nil
}
