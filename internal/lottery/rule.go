package lottery

// Rule is the configured validity window for game numbers. Both bounds
// are inclusive: a number equal to MinDesired or MaxNumber is valid.
type Rule struct {
	MinDesired int64
	MaxNumber  int64
}

// Invalid reports whether any number of the game falls outside the
// rule's window.
func (r Rule) Invalid(g Game) bool {
	for _, n := range g {
		if n < r.MinDesired || n > r.MaxNumber {
			return true
		}
	}
	return false
}
