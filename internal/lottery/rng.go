package lottery

import (
	"math/rand/v2"

	"github.com/dmfelipe/lotogen/internal/combin"
)

// DefaultSeed is used when the configuration does not provide one.
const DefaultSeed uint64 = 12345

// RankSource draws uniform game ranks from a deterministic seeded
// generator. The state lives in the struct, so the sampling loop's
// dependency on it is visible at the call site.
type RankSource struct {
	rng   *rand.Rand
	space int64
}

// NewRankSource seeds a source drawing from [0, C(maxNumber, GameSize)).
// Restricting maxNumber below MaxNumber is safe: combinadic ranks below
// C(m, 6) decode to games whose numbers never exceed m.
func NewRankSource(seed uint64, maxNumber int64) *RankSource {
	return &RankSource{
		rng:   rand.New(rand.NewPCG(seed, 0)),
		space: combin.Binomial(maxNumber, GameSize),
	}
}

// Next returns the next game rank.
func (s *RankSource) Next() int64 {
	return s.rng.Int64N(s.space)
}

// Space is the exclusive upper bound of the ranks Next can return.
func (s *RankSource) Space() int64 {
	return s.space
}
