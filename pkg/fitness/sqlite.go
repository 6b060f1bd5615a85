package fitness

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/kestrelcode/styleforge/internal/closeutil"
)

// SQLiteCache is the optional second memoization tier: a persistent store
// that survives across invocations of the tool against an unchanged
// corpus. Schema and upsert shape follow the teacher's leaderboard
// storage (a single table keyed on a content hash, INSERT ... ON CONFLICT
// DO UPDATE standing in for its hash-keyed dedup-and-update pattern).
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (creating if necessary) a SQLite database at path
// and ensures its schema exists.
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("fitness: failed to open cache database: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.initSchema(); err != nil {
		closeutil.CloseWithLog("fitness", db, "cache database")
		return nil, fmt.Errorf("fitness: failed to initialize cache schema: %w", err)
	}
	return c, nil
}

func (c *SQLiteCache) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS file_scores (
		cache_key     TEXT PRIMARY KEY,
		edit_distance INTEGER NOT NULL,
		deleted_lines INTEGER NOT NULL,
		failed        INTEGER NOT NULL,
		hard          INTEGER NOT NULL
	);
	`
	_, err := c.db.Exec(schema)
	return err
}

func (c *SQLiteCache) Get(key string) (FileScore, bool) {
	var score FileScore
	var failed, hard int
	err := c.db.QueryRow(
		"SELECT edit_distance, deleted_lines, failed, hard FROM file_scores WHERE cache_key = ?",
		key,
	).Scan(&score.EditDistance, &score.DeletedLines, &failed, &hard)
	if err != nil {
		return FileScore{}, false
	}
	score.Failed = failed != 0
	score.Hard = hard != 0
	return score, true
}

func (c *SQLiteCache) Put(key string, score FileScore) {
	_, _ = c.db.Exec(`
		INSERT INTO file_scores (cache_key, edit_distance, deleted_lines, failed, hard)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			edit_distance = excluded.edit_distance,
			deleted_lines = excluded.deleted_lines,
			failed = excluded.failed,
			hard = excluded.hard
	`, key, score.EditDistance, score.DeletedLines, boolToInt(score.Failed), boolToInt(score.Hard))
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
