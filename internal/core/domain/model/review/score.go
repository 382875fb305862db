package review

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Score is the 5-level ordinal rating a client gives a restaurant. Levels map
// to the integers 1 (worst) through 5 (best), which is what the rating
// aggregate averages over.
type Score int

const (
	// ScoreUnknown represents an invalid or undefined score.
	ScoreUnknown Score = iota

	// Terrible is the worst score, mapped to 1.
	Terrible

	// Bad is mapped to 2.
	Bad

	// Regular is mapped to 3.
	Regular

	// Good is mapped to 4.
	Good

	// Excellent is the best score, mapped to 5.
	Excellent
)

func getScoreStrings() map[Score]string {
	return map[Score]string{
		ScoreUnknown: "Unknown",
		Terrible:     "Terrible",
		Bad:          "Bad",
		Regular:      "Regular",
		Good:         "Good",
		Excellent:    "Excellent",
	}
}

// ScoreFromInt converts an integer 1-5 into a Score.
func ScoreFromInt(value int) (Score, error) {
	s := Score(value)
	if err := s.Validate(); err != nil {
		return ScoreUnknown, err
	}
	return s, nil
}

// Validate checks that the score is one of the five valid levels.
func (s Score) Validate() error {
	if s < Terrible || s > Excellent {
		return errs.NewValueIsInvalidErrorWithCause("score", fmt.Errorf("%d is not a valid score", s))
	}
	return nil
}

// Value returns the integer 1-5 the score maps to.
func (s Score) Value() int {
	return int(s)
}

// String returns the human-readable name of the score, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Score) String() string {
	if str, ok := getScoreStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
