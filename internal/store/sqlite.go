package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	"github.com/dmfelipe/lotogen/internal/lottery"
)

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers usable while a run is being written
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to enable WAL mode: %w", err), db.Close())
	}

	return &SQLiteDB{db: db}, nil
}

// Close checkpoints the WAL and closes the connection.
func (s *SQLiteDB) Close() error {
	var err error
	if _, cerr := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	return multierr.Append(err, s.db.Close())
}

// Migrate creates the schema.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			target_games INTEGER NOT NULL,
			min_desired_number INTEGER NOT NULL,
			max_number INTEGER NOT NULL,
			seeded INTEGER NOT NULL DEFAULT 0,
			accepted INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			rejected_duplicate_game INTEGER NOT NULL DEFAULT 0,
			rejected_out_of_range INTEGER NOT NULL DEFAULT 0,
			rejected_triplet_clash INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			run_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			n1 INTEGER NOT NULL, n2 INTEGER NOT NULL, n3 INTEGER NOT NULL,
			n4 INTEGER NOT NULL, n5 INTEGER NOT NULL, n6 INTEGER NOT NULL,
			PRIMARY KEY (run_id, position),
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE TABLE IF NOT EXISTS rank_sets (
			run_id TEXT NOT NULL,
			name TEXT NOT NULL,
			rank INTEGER NOT NULL,
			PRIMARY KEY (run_id, name, rank),
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_run_id ON games(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rank_sets_run_name ON rank_sets(run_id, name)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveRun saves a run, assigning an id when it has none.
func (s *SQLiteDB) SaveRun(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `INSERT INTO runs (
		id, seed, target_games, min_desired_number, max_number,
		seeded, accepted, attempts, rejected_duplicate_game,
		rejected_out_of_range, rejected_triplet_clash, elapsed_ms
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		run.ID, run.Seed, run.TargetGames, run.MinDesired, run.MaxNumber,
		run.Seeded, run.Accepted, run.Attempts, run.DupGame,
		run.OutOfRange, run.TripletClash, run.ElapsedMs,
	)
	return err
}

// SaveGames saves the accepted games of a run in acceptance order.
func (s *SQLiteDB) SaveGames(runID string, games []lottery.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO games
		(run_id, position, rank, n1, n2, n3, n4, n5, n6)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, game := range games {
		if len(game) != lottery.GameSize {
			return fmt.Errorf("game at position %d has %d numbers", pos, len(game))
		}
		rank := lottery.GameRank(game)
		if _, err := stmt.Exec(runID, pos, rank,
			game[0], game[1], game[2], game[3], game[4], game[5]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveRankSet saves a named tracker set for a run.
func (s *SQLiteDB) SaveRankSet(runID, name string, ranks []int64) error {
	if len(ranks) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO rank_sets (run_id, name, rank) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rank := range ranks {
		if _, err := stmt.Exec(runID, name, rank); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetRun retrieves a run by id.
func (s *SQLiteDB) GetRun(id string) (*Run, error) {
	query := `SELECT id, seed, target_games, min_desired_number, max_number,
		seeded, accepted, attempts, rejected_duplicate_game,
		rejected_out_of_range, rejected_triplet_clash, elapsed_ms, created_at
		FROM runs WHERE id = ?`

	var run Run
	err := s.db.QueryRow(query, id).Scan(
		&run.ID, &run.Seed, &run.TargetGames, &run.MinDesired, &run.MaxNumber,
		&run.Seeded, &run.Accepted, &run.Attempts, &run.DupGame,
		&run.OutOfRange, &run.TripletClash, &run.ElapsedMs, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetGames retrieves a run's games in acceptance order.
func (s *SQLiteDB) GetGames(runID string) ([]lottery.Game, error) {
	query := `SELECT n1, n2, n3, n4, n5, n6 FROM games
		WHERE run_id = ? ORDER BY position`

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []lottery.Game
	for rows.Next() {
		game := make(lottery.Game, lottery.GameSize)
		if err := rows.Scan(&game[0], &game[1], &game[2], &game[3], &game[4], &game[5]); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

// GetRankSet retrieves a named tracker set in ascending rank order.
func (s *SQLiteDB) GetRankSet(runID, name string) ([]int64, error) {
	rows, err := s.db.Query(
		"SELECT rank FROM rank_sets WHERE run_id = ? AND name = ? ORDER BY rank", runID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []int64
	for rows.Next() {
		var rank int64
		if err := rows.Scan(&rank); err != nil {
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}
