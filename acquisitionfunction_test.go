package acquisition

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityOfImprovementKnownValue(t *testing.T) {
	// A N(1, 1) prediction against fMax = 0 standardizes to Z = 1,
	// so the score is the standard normal CDF at 1.
	score, err := ProbabilityOfImprovement(1.0, 1.0, 0.0, 0.0)

	require.NoError(t, err)
	assert.InDelta(t, 0.8413, score, 1e-4)
}

func TestProbabilityOfImprovementIsAProbability(t *testing.T) {
	// Sweep a coarse grid of valid inputs; every score must land in [0, 1].
	for _, mu := range []float64{-10, -1, 0, 1, 10} {
		for _, std := range []float64{0.01, 0.5, 1, 5} {
			for _, fMax := range []float64{-5, 0, 5} {
				for _, epsilon := range []float64{0, 0.01, 1} {
					score, err := ProbabilityOfImprovement(mu, std, fMax, epsilon)

					require.NoError(t, err)
					assert.GreaterOrEqual(t, score, 0.0)
					assert.LessOrEqual(t, score, 1.0)
				}
			}
		}
	}
}

func TestProbabilityOfImprovementMonotonicInMean(t *testing.T) {
	prev := math.Inf(-1)

	// Raising the predicted mean can only raise the probability of
	// improvement when everything else is held fixed.
	for mu := -5.0; mu <= 5.0; mu += 0.25 {
		score, err := ProbabilityOfImprovement(mu, 2.0, 1.0, 0.01)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev)

		prev = score
	}
}

func TestProbabilityOfImprovementRejectsNonPositiveStd(t *testing.T) {
	for _, std := range []float64{0, -1} {
		_, err := ProbabilityOfImprovement(1.0, std, 0.0, 0.0)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ProbabilityOfImprovement", domainErr.Op)
	}
}

func TestExpectedImprovementKnownValue(t *testing.T) {
	// Z = 1, so the score is 1*CDF(1) + 1*PDF(1) ≈ 0.8413 + 0.2420.
	score, err := ExpectedImprovement(1.0, 1.0, 0.0, 0.0)

	require.NoError(t, err)
	assert.InDelta(t, 1.0833, score, 1e-4)
}

func TestExpectedImprovementVanishesWithoutUncertainty(t *testing.T) {
	// With mu below fMax and no exploration margin, the expected
	// improvement must approach zero as the uncertainty collapses.
	for _, std := range []float64{1e-1, 1e-2, 1e-3} {
		score, err := ExpectedImprovement(0.0, std, 1.0, 0.0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-12)
	}
}

func TestExpectedImprovementRejectsNonPositiveStd(t *testing.T) {
	_, err := ExpectedImprovement(1.0, 0.0, 0.0, 0.0)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ExpectedImprovement", domainErr.Op)
}

func TestKappaKnownValue(t *testing.T) {
	// t = 1, d = 1, v = 1, delta = 0.1: the log argument is
	// pi^2 / 0.3 ≈ 32.90, so kappa = sqrt(2 * ln(32.90)) ≈ 2.643.
	kappa, err := Kappa(1, 1, DefaultUCBParams())

	require.NoError(t, err)
	assert.InDelta(t, 2.643, kappa, 1e-3)
}

func TestUpperConfidenceBoundKnownValue(t *testing.T) {
	score, err := UpperConfidenceBound(0.0, 1.0, 1, 1, DefaultUCBParams())

	require.NoError(t, err)
	assert.InDelta(t, 2.643, score, 1e-3)
}

func TestUpperConfidenceBoundWidensOverIterations(t *testing.T) {
	prev := math.Inf(-1)

	// The bound must widen (or hold) as the iteration count grows.
	for iter := 1; iter <= 50; iter++ {
		score, err := UpperConfidenceBound(0.0, 1.0, iter, 3, DefaultUCBParams())

		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev)

		prev = score
	}
}

func TestUpperConfidenceBoundNearDeltaOne(t *testing.T) {
	// delta just below 1 keeps the log argument near pi^2/3 ≈ 3.29,
	// which is still a valid input.
	score, err := UpperConfidenceBound(0.0, 1.0, 1, 1, UCBParams{V: 1, Delta: 0.999})

	require.NoError(t, err)
	assert.False(t, math.IsNaN(score))
	assert.Greater(t, score, 0.0)
}

func TestUpperConfidenceBoundRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		t      int
		d      int
		params UCBParams
	}{
		{name: "zero iteration", t: 0, d: 1, params: DefaultUCBParams()},
		{name: "negative iteration", t: -3, d: 1, params: DefaultUCBParams()},
		{name: "zero dimension", t: 1, d: 0, params: DefaultUCBParams()},
		{name: "zero v", t: 1, d: 1, params: UCBParams{V: 0, Delta: 0.1}},
		{name: "negative v", t: 1, d: 1, params: UCBParams{V: -1, Delta: 0.1}},
		{name: "zero delta", t: 1, d: 1, params: UCBParams{V: 1, Delta: 0}},
		{name: "delta of one", t: 1, d: 1, params: UCBParams{V: 1, Delta: 1}},
		{name: "delta above one", t: 1, d: 1, params: UCBParams{V: 1, Delta: 1.5}},
		{name: "nan delta", t: 1, d: 1, params: UCBParams{V: 1, Delta: math.NaN()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, err := UpperConfidenceBound(0.0, 1.0, tc.t, tc.d, tc.params)

			var domainErr *DomainError
			assert.True(t, errors.As(err, &domainErr))
			assert.Zero(t, score)
		})
	}
}

func TestConcurrentScoringIsConsistent(t *testing.T) {
	const goroutines = 16

	// Sequential reference values.
	wantPI, err := ProbabilityOfImprovement(0.7, 0.4, 0.5, 0.01)
	assert.NoError(t, err)

	wantEI, err := ExpectedImprovement(0.7, 0.4, 0.5, 0.01)
	assert.NoError(t, err)

	wantUCB, err := UpperConfidenceBound(0.7, 0.4, 12, 4, DefaultUCBParams())
	assert.NoError(t, err)

	var wg sync.WaitGroup

	// All functions are pure; concurrent callers must observe exactly the
	// sequential results.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				pi, err := ProbabilityOfImprovement(0.7, 0.4, 0.5, 0.01)
				assert.NoError(t, err)
				assert.Equal(t, wantPI, pi)

				ei, err := ExpectedImprovement(0.7, 0.4, 0.5, 0.01)
				assert.NoError(t, err)
				assert.Equal(t, wantEI, ei)

				ucb, err := UpperConfidenceBound(0.7, 0.4, 12, 4, DefaultUCBParams())
				assert.NoError(t, err)
				assert.Equal(t, wantUCB, ucb)
			}
		}()
	}

	wg.Wait()
}
