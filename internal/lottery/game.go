// Package lottery fixes the combinatorial codec to the 60/6/3 lottery
// universe: 6-number games drawn from 1..60 and the 3-number triplets
// they contain.
package lottery

import (
	"fmt"

	"github.com/dmfelipe/lotogen/internal/combin"
)

const (
	// MaxNumber is the highest playable number.
	MaxNumber = 60
	// GameSize is the count of numbers in a game.
	GameSize = 6
	// TripletSize is the count of numbers in a triplet.
	TripletSize = 3
)

var (
	// GameSpace is the number of distinct games, C(60,6).
	GameSpace = combin.Binomial(MaxNumber, GameSize)
	// TripletSpace is the number of distinct triplets, C(60,3).
	TripletSpace = combin.Binomial(MaxNumber, TripletSize)
)

// Game is a lottery combination: GameSize distinct numbers in
// [1, MaxNumber], kept in ascending order.
type Game []int64

// Triplet is a 3-number sub-combination of a game, in the game's order.
type Triplet []int64

// GameRank maps an ascending game to its combinadic rank in
// [0, GameSpace). GameFromRank is its exact inverse.
func GameRank(g Game) int64 {
	return combin.Rank(toDescZeroBased(g))
}

// GameFromRank decodes a rank back into an ascending game.
func GameFromRank(rank int64) (Game, error) {
	if rank < 0 || rank >= GameSpace {
		return nil, fmt.Errorf("game rank %d: %w", rank, combin.ErrRankRange)
	}
	return Game(toAscOneBased(combin.Unrank(rank, MaxNumber, GameSize))), nil
}

// TripletRank maps an ascending triplet to its rank in [0, TripletSpace).
func TripletRank(t Triplet) int64 {
	return combin.Rank(toDescZeroBased(t))
}

// TripletFromRank decodes a rank back into an ascending triplet.
func TripletFromRank(rank int64) (Triplet, error) {
	if rank < 0 || rank >= TripletSpace {
		return nil, fmt.Errorf("triplet rank %d: %w", rank, combin.ErrRankRange)
	}
	return Triplet(toAscOneBased(combin.Unrank(rank, MaxNumber, TripletSize))), nil
}

// Triplets enumerates all 20 triplets of a game: every position
// combination i<j<k over the 6 slots, preserving the game's order.
// A slice that is not exactly GameSize long yields no triplets.
func Triplets(g Game) []Triplet {
	if len(g) != GameSize {
		return nil
	}

	triplets := make([]Triplet, 0, 20)
	for i := 0; i < GameSize-2; i++ {
		for j := i + 1; j < GameSize-1; j++ {
			for k := j + 1; k < GameSize; k++ {
				triplets = append(triplets, Triplet{g[i], g[j], g[k]})
			}
		}
	}
	return triplets
}

// TripletRanks returns the ranks of all triplets of g, in enumeration
// order.
func TripletRanks(g Game) []int64 {
	triplets := Triplets(g)
	ranks := make([]int64, len(triplets))
	for i, t := range triplets {
		ranks[i] = TripletRank(t)
	}
	return ranks
}

// toDescZeroBased converts ascending 1-based values to the descending
// 0-based form the codec expects.
func toDescZeroBased(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v - 1
	}
	return out
}

// toAscOneBased converts the codec's descending 0-based output back to
// ascending 1-based values.
func toAscOneBased(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v + 1
	}
	return out
}
