package utils

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity        float64 // time decay exponent
	WeightBookmark float64
	WeightComment  float64
	WeightUpvote   float64
	WeightDownvote float64
	ScaleFactor    float64
}

var DefaultConfig = RankConfig{
	Gravity:        1.5,
	WeightBookmark: 3.0,
	WeightComment:  2.0,
	WeightUpvote:   1.0,
	WeightDownvote: 1.5,
	ScaleFactor:    100.0, // keeps scores roughly in 0-100
}

// CalculateScore ranks a thread by weighted engagement with log
// smoothing and time decay. Views are deliberately excluded: their
// magnitude swamps the log-scaled weighted sum.
func CalculateScore(t time.Time, up, down, bookmarks, comment int) float64 {
	hours := time.Since(t).Hours()

	weightedSum := (float64(up) * DefaultConfig.WeightUpvote) +
		(float64(comment) * DefaultConfig.WeightComment) +
		(float64(bookmarks) * DefaultConfig.WeightBookmark) -
		(float64(down) * DefaultConfig.WeightDownvote)

	if weightedSum < 0 {
		weightedSum = 0 // log10 needs a non-negative sum
	}

	// log10(sum + 1) so that sum=0 scores 0
	logScore := math.Log10(weightedSum + 1)

	numerator := logScore * DefaultConfig.ScaleFactor

	decay := math.Pow(hours+2, DefaultConfig.Gravity)

	return numerator / decay
}
