// Package store persists finished runs: the run's parameters and
// summary, its accepted games, and the two rank tracker sets.
package store

import (
	"time"

	"github.com/dmfelipe/lotogen/internal/lottery"
)

// DB is the persistence interface for generation runs.
type DB interface {
	Close() error
	Migrate() error
	SaveRun(run *Run) error
	SaveGames(runID string, games []lottery.Game) error
	SaveRankSet(runID, name string, ranks []int64) error
	GetRun(id string) (*Run, error)
	GetGames(runID string) ([]lottery.Game, error)
	GetRankSet(runID, name string) ([]int64, error)
}

// Rank set names used by the generator's sinks.
const (
	RankSetGames    = "games"
	RankSetTriplets = "triplets"
)

// Run echoes the request parameters and carries the run summary.
type Run struct {
	ID           string    `db:"id"`
	Seed         uint64    `db:"seed"`
	TargetGames  int       `db:"target_games"`
	MinDesired   int64     `db:"min_desired_number"`
	MaxNumber    int64     `db:"max_number"`
	Seeded       int       `db:"seeded"`
	Accepted     int       `db:"accepted"`
	Attempts     int64     `db:"attempts"`
	DupGame      int64     `db:"rejected_duplicate_game"`
	OutOfRange   int64     `db:"rejected_out_of_range"`
	TripletClash int64     `db:"rejected_triplet_clash"`
	ElapsedMs    int64     `db:"elapsed_ms"`
	CreatedAt    time.Time `db:"created_at"`
}
