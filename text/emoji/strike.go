package emoji

// StrikeStrategy determines how to select a bitmap strike.
type StrikeStrategy int

const (
	// StrikeBestFit selects the smallest strike >= requested size, or largest if none.
	StrikeBestFit StrikeStrategy = iota

	// StrikeExact selects only an exact match.
	StrikeExact

	// StrikeLargest always selects the largest available strike.
	StrikeLargest
)

// String returns the string representation of the strike strategy.
func (s StrikeStrategy) String() string {
	switch s {
	case StrikeBestFit:
		return "BestFit"
	case StrikeExact:
		return "Exact"
	case StrikeLargest:
		return "Largest"
	default:
		return unknownStr
	}
}

// SelectStrike picks a strike size from sizes for the requested ppem.
// Returns the index into sizes, or ErrNoStrikeAvailable if no suitable
// strike is found.
func SelectStrike(sizes []uint16, ppem uint16, strategy StrikeStrategy) (int, error) {
	if len(sizes) == 0 {
		return 0, ErrNoStrikeAvailable
	}

	switch strategy {
	case StrikeExact:
		for i, s := range sizes {
			if s == ppem {
				return i, nil
			}
		}
		return 0, ErrNoStrikeAvailable

	case StrikeLargest:
		return largestStrike(sizes), nil

	default:
		// Smallest strike >= requested, or largest if none.
		bestLarger := -1
		for i, s := range sizes {
			if s >= ppem && (bestLarger < 0 || s < sizes[bestLarger]) {
				bestLarger = i
			}
		}
		if bestLarger >= 0 {
			return bestLarger, nil
		}
		return largestStrike(sizes), nil
	}
}

func largestStrike(sizes []uint16) int {
	best := 0
	for i := 1; i < len(sizes); i++ {
		if sizes[i] > sizes[best] {
			best = i
		}
	}
	return best
}
