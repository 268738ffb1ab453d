// Package ioenrich keeps an offline index of taxonomy template pages in
// SQLite and answers classification lookups of automatic taxoboxes from
// it.
package ioenrich

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS taxonomy (
	title   TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	rank    TEXT NOT NULL DEFAULT '',
	parent  TEXT NOT NULL DEFAULT '',
	extinct TEXT NOT NULL DEFAULT ''
)`

// batchSize is the number of entries committed in one transaction.
const batchSize = 10_000

// Index is the store of taxonomy entries.
type Index struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open opens or creates the index at path.
func Open(path string) (*Index, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, TaxonomyDBOpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, TaxonomyDBOpenError(path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, v := range pragmas {
		if _, err = db.Exec(v); err != nil {
			_ = db.Close()
			return nil, TaxonomyDBOpenError(path, err)
		}
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, TaxonomyDBSchemaError(path, err)
	}

	res := &Index{
		db:   db,
		path: path,
		lock: flock.New(path + ".lock"),
	}
	return res, nil
}

// Close closes the database.
func (idx *Index) Close() error {
	if idx == nil || idx.db == nil {
		return nil
	}
	err := idx.db.Close()
	idx.db = nil
	return err
}

// Path returns the location of the database file.
func (idx *Index) Path() string {
	return idx.path
}

// Count returns the number of entries.
func (idx *Index) Count(ctx context.Context) (int, error) {
	var res int
	row := idx.db.QueryRowContext(ctx, "SELECT count(*) FROM taxonomy")
	if err := row.Scan(&res); err != nil {
		return 0, TaxonomyDBQueryError("count", err)
	}
	return res, nil
}

// Lookup returns the entry of a key. The boolean is false for unknown keys.
func (idx *Index) Lookup(ctx context.Context, key string) (Entry, bool, error) {
	res := Entry{Key: NormalizeKey(key)}
	if res.Key == "" {
		return Entry{}, false, nil
	}
	row := idx.db.QueryRowContext(ctx,
		`SELECT name, rank, parent, extinct FROM taxonomy WHERE title = ?`, res.Key)
	err := row.Scan(&res.Name, &res.Rank, &res.Parent, &res.Extinct)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, TaxonomyDBQueryError(res.Key, err)
	}
	return res, true, nil
}

// Ingest stores entries received from ch until it is closed. Entries with
// an existing key replace the old ones. Only one process can ingest into
// the same index at a time.
func (idx *Index) Ingest(ctx context.Context, ch <-chan Entry) (int, error) {
	ok, err := idx.lock.TryLock()
	if err != nil {
		return 0, TaxonomyIngestError(idx.path, err)
	}
	if !ok {
		return 0, TaxonomyIngestError(idx.path, errors.New("index is locked by another process"))
	}
	defer func() {
		if err := idx.lock.Unlock(); err != nil {
			slog.Warn("Cannot release index lock", "path", idx.path, "error", err)
		}
	}()

	var count int
	batch := make([]Entry, 0, batchSize)
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case e, more := <-ch:
			if !more {
				if err = idx.insert(ctx, batch); err != nil {
					return count, err
				}
				count += len(batch)
				slog.Info("Taxonomy index is ready", "path", idx.path, "entries", count)
				return count, nil
			}
			if e.Key == "" {
				continue
			}
			batch = append(batch, e)
			if len(batch) < batchSize {
				continue
			}
			if err = idx.insert(ctx, batch); err != nil {
				return count, err
			}
			count += len(batch)
			batch = batch[:0]
		}
	}
}

func (idx *Index) insert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return TaxonomyDBInsertError(err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO taxonomy (title, name, rank, parent, extinct)
	VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return TaxonomyDBInsertError(err)
	}
	defer stmt.Close()

	for _, v := range entries {
		_, err = stmt.ExecContext(ctx, v.Key, v.Name, v.Rank, v.Parent, v.Extinct)
		if err != nil {
			return TaxonomyDBInsertError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return TaxonomyDBInsertError(err)
	}
	return nil
}
