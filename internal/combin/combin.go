// Package combin implements the combinatorial number system: exact
// binomial coefficients and the order-preserving bijection between a
// k-subset of {0..n-1} and its dense rank in [0, C(n,k)).
package combin

import (
	"errors"
	"math/bits"
)

// ErrRankRange is returned when a rank falls outside [0, C(n,k)).
var ErrRankRange = errors.New("rank outside combination space")

// Binomial returns C(n, k), the number of k-subsets of an n-set.
// The result is exact: each step multiplies into a 128-bit product
// before the (always exact) division, so intermediates never overflow
// even when they exceed the final value's width.
func Binomial(n, k int64) int64 {
	if k == 0 || n == k {
		return 1
	}
	if k > n {
		return 0
	}

	if n-k < k {
		k = n - k // symmetry: C(n,k) == C(n,n-k)
	}
	result := uint64(1)
	for i := int64(1); i <= k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-k+i))
		result, _ = bits.Div64(hi, lo, uint64(i))
	}
	return int64(result)
}

// Rank returns the combinadic rank of a combination given as strictly
// descending 0-based values: rank = Σ C(c[i], k-i). The empty
// combination ranks 0.
func Rank(combination []int64) int64 {
	k := int64(len(combination))
	var rank int64
	for i, c := range combination {
		rank += Binomial(c, k-int64(i))
	}
	return rank
}

// Unrank is the inverse of Rank: it decodes rank into the k-subset of
// {0..n-1} with that combinadic rank, in strictly descending order.
// Decoding greedily takes the largest c with C(c, position) <= rank at
// each position. The rank must lie in [0, Binomial(n,k)); out-of-range
// ranks are a contract violation and produce meaningless output, so
// callers that cannot prove the bound should use UnrankChecked.
func Unrank(rank, n, k int64) []int64 {
	combination := make([]int64, k)
	c := n - 1

	for i := k; i >= 1; i-- {
		for Binomial(c, i) > rank {
			c--
		}
		combination[k-i] = c
		rank -= Binomial(c, i)
		c--
	}
	return combination
}

// UnrankChecked validates the rank against [0, Binomial(n,k)) before
// decoding.
func UnrankChecked(rank, n, k int64) ([]int64, error) {
	if rank < 0 || rank >= Binomial(n, k) {
		return nil, ErrRankRange
	}
	return Unrank(rank, n, k), nil
}
