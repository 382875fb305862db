package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fooddelivery/internal/core/domain/model/review"
)

func Test_ScoreFromInt_AcceptsFullScale(t *testing.T) {
	for value := 1; value <= 5; value++ {
		score, err := review.ScoreFromInt(value)

		assert.NoError(t, err)
		assert.Equal(t, value, score.Value())
	}
}

func Test_ScoreFromInt_RejectsOutOfRangeValues(t *testing.T) {
	for _, value := range []int{-1, 0, 6, 100} {
		_, err := review.ScoreFromInt(value)

		assert.Error(t, err)
	}
}

func Test_Score_String(t *testing.T) {
	tests := map[review.Score]string{
		review.Terrible:  "Terrible",
		review.Bad:       "Bad",
		review.Regular:   "Regular",
		review.Good:      "Good",
		review.Excellent: "Excellent",
	}

	for score, want := range tests {
		assert.Equal(t, want, score.String())
	}
}

func Test_Score_Validate_RejectsZeroValue(t *testing.T) {
	var score review.Score

	assert.Error(t, score.Validate())
}
