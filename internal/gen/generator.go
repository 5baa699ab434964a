// Package gen drives game generation: it seeds the uniqueness trackers
// from the configured initial games, then rejection-samples random
// games until the target count is reached.
package gen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmfelipe/lotogen/internal/lottery"
	"github.com/dmfelipe/lotogen/internal/track"
)

// ErrSpaceExhausted is returned when the attempt cap is hit before the
// target count is reached.
var ErrSpaceExhausted = errors.New("attempt limit reached before target game count")

// Request describes one generation run.
type Request struct {
	// TargetGames is the total number of games wanted, initial games
	// included.
	TargetGames int
	// InitialGames are pre-validated seed games, accepted in input
	// order before any sampling happens.
	InitialGames []lottery.Game
	// Seed drives the deterministic rank source.
	Seed uint64
	// Rule is the validity window applied to every game.
	Rule lottery.Rule
	// MaxAttempts caps the number of random draws; 0 means no cap.
	// Near the theoretical maximum the loop can otherwise run forever.
	MaxAttempts int64
}

// Summary aggregates run statistics.
type Summary struct {
	Attempts     int64         `json:"attempts"`
	Seeded       int           `json:"seeded"`
	Accepted     int           `json:"accepted"`
	DupGame      int64         `json:"rejected_duplicate_game"`
	OutOfRange   int64         `json:"rejected_out_of_range"`
	TripletClash int64         `json:"rejected_triplet_clash"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Result is the complete outcome of a run: the accepted games in
// acceptance order plus the final tracker sets.
type Result struct {
	Games        []lottery.Game
	GameRanks    *track.RankSet
	TripletRanks *track.RankSet
	Summary      Summary
}

// Generator owns one run's mutable state: the two trackers and the
// accumulating game list. It is single-threaded; every accepted game
// mutates the shared triplet set, so there is nothing to parallelize.
type Generator struct {
	log zerolog.Logger
}

// New returns a generator logging through log.
func New(log zerolog.Logger) *Generator {
	return &Generator{log: log}
}

// Run executes seeding then sampling. Seeding failures are fatal and
// return before any game is produced. Sampling honors ctx cancellation
// and the request's attempt cap between draws.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	if req.TargetGames <= 0 {
		return nil, fmt.Errorf("target game count must be positive, got %d", req.TargetGames)
	}

	start := time.Now()
	games := make([]lottery.Game, 0, req.TargetGames)
	gameSet := track.NewRankSet()
	tripletSet := track.NewRankSet()

	for _, game := range req.InitialGames {
		if req.Rule.Invalid(game) {
			return nil, fmt.Errorf("initial game %v has a number outside [%d, %d]",
				game, req.Rule.MinDesired, req.Rule.MaxNumber)
		}
		rank := lottery.GameRank(game)
		if !tripletSet.AddAll(lottery.TripletRanks(game)) {
			return nil, fmt.Errorf("initial game %v shares a triplet with an earlier initial game", game)
		}
		gameSet.Add(rank)
		games = append(games, game)
	}
	g.log.Info().
		Int("seeded", len(games)).
		Int("target", req.TargetGames).
		Msg("trackers seeded from initial games")

	summary := Summary{Seeded: len(games)}
	src := lottery.NewRankSource(req.Seed, req.Rule.MaxNumber)

	for len(games) < req.TargetGames {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sampling interrupted after %d attempts: %w", summary.Attempts, err)
		}
		if req.MaxAttempts > 0 && summary.Attempts >= req.MaxAttempts {
			return nil, fmt.Errorf("%w (%d attempts, %d/%d games)",
				ErrSpaceExhausted, summary.Attempts, len(games), req.TargetGames)
		}
		summary.Attempts++

		rank := src.Next()
		game, err := lottery.GameFromRank(rank)
		if err != nil {
			return nil, fmt.Errorf("decoding drawn rank: %w", err)
		}

		// Add both checks and claims the rank: games later rejected by
		// the range or triplet filters keep their rank and are never
		// redrawn.
		if !gameSet.Add(rank) {
			summary.DupGame++
			continue
		}
		if req.Rule.Invalid(game) {
			summary.OutOfRange++
			continue
		}
		if !tripletSet.AddAll(lottery.TripletRanks(game)) {
			summary.TripletClash++
			continue
		}

		games = append(games, game)
		if len(games)%1000 == 0 {
			g.log.Debug().
				Int("accepted", len(games)).
				Int64("attempts", summary.Attempts).
				Msg("generation progress")
		}
	}

	summary.Accepted = len(games)
	summary.Elapsed = time.Since(start)
	g.log.Info().
		Int("accepted", summary.Accepted).
		Int64("attempts", summary.Attempts).
		Int64("rejected_duplicate_game", summary.DupGame).
		Int64("rejected_out_of_range", summary.OutOfRange).
		Int64("rejected_triplet_clash", summary.TripletClash).
		Dur("elapsed", summary.Elapsed).
		Msg("generation finished")

	return &Result{
		Games:        games,
		GameRanks:    gameSet,
		TripletRanks: tripletSet,
		Summary:      summary,
	}, nil
}
