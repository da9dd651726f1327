package acquisition

import "golang.org/x/exp/constraints"

//////
// Element-wise variants.
// Score a whole candidate grid in one call. mu and std are equal-length
// slices holding the surrogate's prediction at each candidate point; the
// remaining arguments are shared across the grid. Element i of the result
// equals the scalar function applied to (mu[i], std[i]).
//////

// ProbabilityOfImprovementEach computes ProbabilityOfImprovement for each
// (mu[i], std[i]) prediction pair.
//
// Type Parameter:
//   - T: The float type of the predictions (float32 or float64)
//
// Parameters:
// - mu: Predicted means, one per candidate point
// - std: Predicted standard deviations, same length as mu, all > 0
// - fMax: Best objective value observed or predicted so far
// - epsilon: Trade-off parameter (>= 0)
//
// Returns:
// - []T: Probability of improvement per candidate, nil on error
// - error: *DomainError on a length mismatch or a non-positive std element
func ProbabilityOfImprovementEach[T constraints.Float](mu, std []T, fMax, epsilon T) ([]T, error) {
	if len(mu) != len(std) {
		return nil, &DomainError{Op: "ProbabilityOfImprovementEach", Reason: "mu and std must have the same length"}
	}

	scores := make([]T, len(mu))

	for i := range mu {
		score, err := ProbabilityOfImprovement(float64(mu[i]), float64(std[i]), float64(fMax), float64(epsilon))
		if err != nil {
			return nil, err
		}

		scores[i] = T(score)
	}

	return scores, nil
}

// ExpectedImprovementEach computes ExpectedImprovement for each
// (mu[i], std[i]) prediction pair.
//
// Type Parameter:
//   - T: The float type of the predictions (float32 or float64)
//
// Parameters:
// - mu: Predicted means, one per candidate point
// - std: Predicted standard deviations, same length as mu, all > 0
// - fMax: Best objective value observed or predicted so far
// - epsilon: Trade-off parameter (>= 0)
//
// Returns:
// - []T: Expected improvement per candidate, nil on error
// - error: *DomainError on a length mismatch or a non-positive std element
func ExpectedImprovementEach[T constraints.Float](mu, std []T, fMax, epsilon T) ([]T, error) {
	if len(mu) != len(std) {
		return nil, &DomainError{Op: "ExpectedImprovementEach", Reason: "mu and std must have the same length"}
	}

	scores := make([]T, len(mu))

	for i := range mu {
		score, err := ExpectedImprovement(float64(mu[i]), float64(std[i]), float64(fMax), float64(epsilon))
		if err != nil {
			return nil, err
		}

		scores[i] = T(score)
	}

	return scores, nil
}

// UpperConfidenceBoundEach computes UpperConfidenceBound for each
// (mu[i], std[i]) prediction pair. The exploration coefficient depends only
// on t, d, and params, so it is computed once and applied to every element.
//
// Type Parameter:
//   - T: The float type of the predictions (float32 or float64)
//
// Parameters:
// - mu: Predicted means, one per candidate point
// - std: Predicted standard deviations, same length as mu
// - t: 1-indexed iteration count (must be >= 1)
// - d: Dimensionality of the search space (must be >= 1)
// - params: V and Delta regret-bound hyperparameters; see DefaultUCBParams
//
// Returns:
// - []T: Upper confidence bound per candidate, nil on error
// - error: *DomainError on a length mismatch or under the same conditions
//   as Kappa
func UpperConfidenceBoundEach[T constraints.Float](mu, std []T, t, d int, params UCBParams) ([]T, error) {
	if len(mu) != len(std) {
		return nil, &DomainError{Op: "UpperConfidenceBoundEach", Reason: "mu and std must have the same length"}
	}

	kappa, err := Kappa(t, d, params)
	if err != nil {
		return nil, err
	}

	scores := make([]T, len(mu))

	for i := range mu {
		scores[i] = mu[i] + T(kappa)*std[i]
	}

	return scores, nil
}
