// Package store implements the SQLite-backed result cache. The cache is
// an external collaborator of the analysis core: keys are derived from the
// exact input text plus the lexicon version, so results computed under an
// older keyword table are never served stale. The core itself stays
// cache-unaware.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"mayalegal/internal/analyzer"
)

// ResultCache maps content hashes to previously computed analysis results.
type ResultCache struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// NewResultCache opens (or creates) the cache database at path.
func NewResultCache(path string, log *zap.Logger) (*ResultCache, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}
	// synchronous=NORMAL is safe under WAL and much faster than FULL.
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		log.Debug("failed to set sqlite synchronous=NORMAL", zap.Error(err))
	}

	c := &ResultCache{db: db, path: path, log: log}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("result cache ready", zap.String("path", path))
	return c, nil
}

func (c *ResultCache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		cache_key       TEXT PRIMARY KEY,
		lexicon_version TEXT NOT NULL,
		batch_id        TEXT,
		result_json     TEXT NOT NULL,
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_lexicon ON analyses(lexicon_version);
	CREATE INDEX IF NOT EXISTS idx_analyses_batch ON analyses(batch_id);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return nil
}

// Key derives the cache key for a text under a lexicon version.
func Key(text, lexiconVersion string) string {
	sum := sha256.Sum256([]byte(lexiconVersion + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached result for text under the given lexicon version,
// or ok=false when absent.
func (c *ResultCache) Get(text, lexiconVersion string) (*analyzer.Result, bool, error) {
	var payload string
	err := c.db.QueryRow(
		`SELECT result_json FROM analyses WHERE cache_key = ? AND lexicon_version = ?`,
		Key(text, lexiconVersion), lexiconVersion,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}

	var res analyzer.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		// A corrupt row is treated as a miss; the caller recomputes and
		// overwrites it.
		c.log.Warn("corrupt cache entry, recomputing", zap.Error(err))
		return nil, false, nil
	}
	return &res, true, nil
}

// Put stores a result under the given lexicon version. batchID may be
// empty for single-document analyses.
func (c *ResultCache) Put(text, lexiconVersion, batchID string, res *analyzer.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT INTO analyses (cache_key, lexicon_version, batch_id, result_json)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
			lexicon_version = excluded.lexicon_version,
			batch_id        = excluded.batch_id,
			result_json     = excluded.result_json`,
		Key(text, lexiconVersion), lexiconVersion, batchID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	return nil
}

// Count returns the number of cached analyses.
func (c *ResultCache) Count() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}

// Purge removes entries recorded under lexicon versions other than the
// given one. Called opportunistically after the table changes.
func (c *ResultCache) Purge(currentLexiconVersion string) (int64, error) {
	res, err := c.db.Exec(`DELETE FROM analyses WHERE lexicon_version != ?`, currentLexiconVersion)
	if err != nil {
		return 0, fmt.Errorf("cache purge failed: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close releases the database handle.
func (c *ResultCache) Close() error {
	return c.db.Close()
}
