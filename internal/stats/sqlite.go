package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/weaponstats/internal/model"
)

// SQLiteEngine answers queries with SQL over an in-memory SQLite table.
//
// Each engine owns a private ":memory:" database. The pool is limited to one
// connection: every new connection to ":memory:" opens a different, empty database.
type SQLiteEngine struct {
	db     *sql.DB
	loaded bool
}

// NewSQLiteEngine opens an in-memory database and creates the schema.
func NewSQLiteEngine() (*SQLiteEngine, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	e := &SQLiteEngine{db: db}
	if err := e.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return e, nil
}

// createTables creates the weapons table.
func (e *SQLiteEngine) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS weapons (
		seq INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		phy_attack REAL NOT NULL DEFAULT 0,
		mag_attack REAL NOT NULL DEFAULT 0,
		fire_attack REAL NOT NULL DEFAULT 0,
		light_attack REAL NOT NULL DEFAULT 0,
		holy_attack REAL NOT NULL DEFAULT 0,
		phy_guard REAL NOT NULL DEFAULT 0,
		mag_guard REAL NOT NULL DEFAULT 0,
		fire_guard REAL NOT NULL DEFAULT 0,
		light_guard REAL NOT NULL DEFAULT 0,
		holy_guard REAL NOT NULL DEFAULT 0,
		critical REAL NOT NULL DEFAULT 0,
		weight REAL NOT NULL DEFAULT 0,
		total_attack REAL NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_weapons_type ON weapons(type);
	`

	_, err := e.db.ExecContext(context.Background(), schema)
	return err
}

// Name implements Engine.
func (e *SQLiteEngine) Name() string {
	return EngineSQLite
}

// Load implements Engine. Rows are inserted in a single transaction.
func (e *SQLiteEngine) Load(ctx context.Context, weapons []model.Weapon) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // No-op after Commit
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM weapons"); err != nil {
		return fmt.Errorf("failed to clear weapons: %w", err)
	}

	query := `
	INSERT INTO weapons (
		seq, name, type,
		phy_attack, mag_attack, fire_attack, light_attack, holy_attack,
		phy_guard, mag_guard, fire_guard, light_guard, holy_guard,
		critical, weight, total_attack
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range weapons {
		_, err := stmt.ExecContext(ctx,
			w.Seq, w.Name, w.Type,
			w.Attack.Physical, w.Attack.Magic, w.Attack.Fire, w.Attack.Lightning, w.Attack.Holy,
			w.Guard.Physical, w.Guard.Magic, w.Guard.Fire, w.Guard.Lightning, w.Guard.Holy,
			w.Critical, w.Weight, w.Attack.Total(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert weapon %q: %w", w.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit weapons: %w", err)
	}

	e.loaded = true
	return nil
}

// Distribution implements Engine.
func (e *SQLiteEngine) Distribution(ctx context.Context) (model.CategoryDistribution, error) {
	var dist model.CategoryDistribution
	if !e.loaded {
		return dist, ErrNotLoaded
	}

	err := e.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT type) FROM weapons",
	).Scan(&dist.Total, &dist.Unique)
	if err != nil {
		return dist, fmt.Errorf("failed to count weapons: %w", err)
	}

	query := `
	SELECT type, COUNT(*) AS n
	FROM weapons
	GROUP BY type
	ORDER BY n DESC, MIN(seq) ASC
	`
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return dist, fmt.Errorf("failed to query type counts: %w", err)
	}
	defer rows.Close()

	dist.Counts = make([]model.TypeCount, 0, dist.Unique)
	for rows.Next() {
		var tc model.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return dist, fmt.Errorf("failed to scan type count: %w", err)
		}
		dist.Counts = append(dist.Counts, tc)
	}

	return dist, rows.Err()
}

// Top implements Engine.
func (e *SQLiteEngine) Top(ctx context.Context, metric Metric, limit int) (model.Ranking, error) {
	ranking := model.Ranking{Metric: metric.String()}
	if !e.loaded {
		return ranking, ErrNotLoaded
	}
	spec, ok := metrics[metric]
	if !ok {
		return ranking, ErrUnknownMetric
	}

	// The column name comes from the metrics table, never from user input.
	query := fmt.Sprintf(`
	SELECT seq, name, type, %s
	FROM weapons
	ORDER BY %s DESC, seq ASC
	LIMIT ?
	`, spec.column, spec.column)

	rows, err := e.db.QueryContext(ctx, query, limit)
	if err != nil {
		return ranking, fmt.Errorf("failed to query top %s: %w", metric, err)
	}
	defer rows.Close()

	ranking.Entries = make([]model.RankedWeapon, 0)
	for rows.Next() {
		entry := model.RankedWeapon{Rank: len(ranking.Entries) + 1}
		if err := rows.Scan(&entry.Seq, &entry.Name, &entry.Type, &entry.Value); err != nil {
			return ranking, fmt.Errorf("failed to scan ranked weapon: %w", err)
		}
		ranking.Entries = append(ranking.Entries, entry)
	}

	return ranking, rows.Err()
}

// Close implements Engine.
func (e *SQLiteEngine) Close() error {
	return e.db.Close()
}
