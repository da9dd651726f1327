package acquisition

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

//////
// Helper functions.
//////

// stdNormal is the standard normal distribution (mean 0, variance 1) shared
// by PI and EI. distuv.UnitNormal is immutable and safe for concurrent use.
var stdNormal = distuv.UnitNormal

// Helper function used by PI and EI to compute the cumulative distribution
// function of the standard normal distribution.
//
// Returns:
// - Probability that a standard normal random variable is less than x.
func normalCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// Helper function used by EI to compute the probability density function
// of the standard normal distribution.
//
// Returns:
// - Value of the standard normal PDF at x.
func normalPDF(x float64) float64 {
	return stdNormal.Prob(x)
}

// BestIndex returns the index of the highest score in a slice of acquisition
// scores, i.e. the candidate to evaluate next. Ties resolve to the first
// maximal element.
//
// Parameters:
// - scores: Acquisition scores, one per candidate point
//
// Returns:
// - int: Index of the maximum score, or -1 if scores is empty
//
// Usage example:
//
//	scores, err := ExpectedImprovementEach(mus, stds, fMax, 0.01)
//	if err != nil {
//	    return err
//	}
//	next := candidates[BestIndex(scores)]
func BestIndex(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}

	return floats.MaxIdx(scores)
}
