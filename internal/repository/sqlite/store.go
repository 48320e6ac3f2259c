// Package sqlite implements the collection store on a single local SQLite
// file: the durable local storage of the host, one row per named collection.
package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
	"github.com/ieee-igdtuw/chapter-core/pkg/logger"
	"github.com/ieee-igdtuw/chapter-core/pkg/metrics"
)

// schemaVersion is written with every row. Changing a record shape requires
// bumping this and adding a migration for rows carrying the old version.
const schemaVersion = 1

const (
	cacheExpiration = 5 * time.Minute
	cacheCleanup    = 10 * time.Minute
)

var emptyArray = []byte("[]")

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// Store is a write-through collection store with a read cache. Writes within
// one process are serialized by SQLite itself; two processes sharing the file
// remain a last-write-wins race.
type Store struct {
	db      *sqlx.DB
	cache   *cache.Cache
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// New opens (creating if needed) the store at path. Use ":memory:" for an
// ephemeral store in tests.
func New(path string, log *logger.Logger, m *metrics.Metrics) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// One connection: SQLite is the single writer here, and ":memory:" would
	// otherwise give every pooled connection its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{
		db:      db,
		cache:   cache.New(cacheExpiration, cacheCleanup),
		logger:  log,
		metrics: m,
	}, nil
}

// Load returns the collection's JSON array. Missing and corrupt rows both
// yield an empty array: callers never see a load failure.
func (s *Store) Load(ctx context.Context, name model.Collection) ([]byte, error) {
	timer := prometheus.NewTimer(s.metrics.StoreLatency.WithLabelValues("load"))
	defer timer.ObserveDuration()

	if cached, ok := s.cache.Get(string(name)); ok {
		s.metrics.StoreOperations.WithLabelValues("load", "hit").Inc()
		return cached.([]byte), nil
	}

	var data []byte
	err := s.db.GetContext(ctx, &data, `SELECT data FROM collections WHERE name = ?`, string(name))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.metrics.StoreOperations.WithLabelValues("load", "miss").Inc()
		return emptyArray, nil
	case err != nil:
		// Treated as absent rather than failing the caller; the next save
		// re-establishes the row.
		s.logger.Error(err, "failed to load collection", "collection", string(name))
		s.metrics.StoreOperations.WithLabelValues("load", "error").Inc()
		return emptyArray, nil
	}

	if !isJSONArray(data) {
		s.logger.Warn("discarding corrupt collection data", "collection", string(name))
		s.metrics.StoreOperations.WithLabelValues("load", "corrupt").Inc()
		return emptyArray, nil
	}

	s.cache.Set(string(name), data, cache.DefaultExpiration)
	s.metrics.StoreOperations.WithLabelValues("load", "success").Inc()
	return data, nil
}

// Save replaces the collection's contents. The cache entry is refreshed only
// after the write lands, so a failed save leaves storage as the source of
// truth.
func (s *Store) Save(ctx context.Context, name model.Collection, data []byte) error {
	timer := prometheus.NewTimer(s.metrics.StoreLatency.WithLabelValues("save"))
	defer timer.ObserveDuration()

	if !isJSONArray(data) {
		s.metrics.StoreOperations.WithLabelValues("save", "rejected").Inc()
		return fmt.Errorf("collection %s: data is not a JSON array", name)
	}

	query := `
		INSERT INTO collections (name, version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, string(name), schemaVersion, data, time.Now().UTC()); err != nil {
		s.cache.Delete(string(name))
		s.metrics.StoreOperations.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("failed to save collection %s: %w", name, err)
	}

	s.cache.Set(string(name), data, cache.DefaultExpiration)
	s.metrics.StoreOperations.WithLabelValues("save", "success").Inc()
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '[' && json.Valid(trimmed)
}
