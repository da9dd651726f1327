package acquisition

import "math"

//////
// Closed-form acquisition functions for Bayesian optimization.
// Each function scores a candidate point from the surrogate model's
// prediction at that point, balancing exploration (high uncertainty) and
// exploitation (high predicted mean). Higher scores are better; the caller
// evaluates the candidate with the highest score next.
//////

// DefaultUCBParams returns the GP-UCB hyperparameters recommended by the
// literature: v = 1 (valid for reasonably smooth kernels) and delta = 0.1.
func DefaultUCBParams() UCBParams {
	return UCBParams{
		V:     1,
		Delta: 0.1,
	}
}

// ProbabilityOfImprovement (PI) calculates the probability that a candidate
// point improves on the best observed value by at least epsilon.
//
// How it works:
// - Standardizes the improvement margin: Z = (mu - fMax - epsilon) / std
// - Returns the standard normal CDF at Z, a probability in [0, 1]
//
// Parameters:
// - mu: Predicted mean at the candidate point
// - std: Predicted standard deviation at the candidate point (must be > 0)
// - fMax: Best objective value observed or predicted so far
// - epsilon: Trade-off parameter (>= 0); larger values favor exploration
//
// Returns:
// - float64: Probability of improvement, monotonically increasing in mu
// - error: *DomainError if std is not strictly positive
//
// When to use:
// - When you want to be conservative in exploring new points
// - When you're fine with small improvements
// - In problems where being "probably better" matters more than "how much better"
//
// Example:
//
//	// P(improving on fMax = 0 by any margin) for a N(1, 1) prediction
//	score, err := ProbabilityOfImprovement(1.0, 1.0, 0.0, 0.0)
//	// score ≈ 0.8413
//
// As described in:
//
//	E Brochu, VM Cora, & N de Freitas (2010):
//	A Tutorial on Bayesian Optimization of Expensive Cost Functions,
//	arXiv:1012.2599, http://arxiv.org/abs/1012.2599.
func ProbabilityOfImprovement(mu, std, fMax, epsilon float64) (float64, error) {
	if !(std > 0) {
		return 0, &DomainError{Op: "ProbabilityOfImprovement", Reason: "std must be > 0"}
	}

	z := (mu - fMax - epsilon) / std

	return normalCDF(z), nil
}

// ExpectedImprovement (EI) calculates the expected magnitude of improvement
// of a candidate point over the best observed value.
//
// How it works:
// - Standardizes the improvement margin: Z = (mu - fMax - epsilon) / std
// - Combines the probability of improvement with its expected size:
//   (mu - fMax - epsilon) * CDF(Z) + std * PDF(Z)
//
// Parameters:
// - mu: Predicted mean at the candidate point
// - std: Predicted standard deviation at the candidate point (must be > 0)
// - fMax: Best objective value observed or predicted so far
// - epsilon: Trade-off parameter (>= 0); [Lizotte 2008] suggests 0.01,
//   scaled by the signal variance if necessary
//
// Returns:
// - float64: Expected improvement. Non-negative in the well-behaved case;
//   at extreme Z the raw value can dip below zero by floating-point
//   rounding, and callers that require non-negativity should clamp at zero
// - error: *DomainError if std is not strictly positive
//
// When to use:
// - Most commonly used acquisition function
// - When you want to balance the size and probability of improvement
// - In problems where the magnitude of improvement matters
//
// Example:
//
//	score, err := ExpectedImprovement(1.0, 1.0, 0.0, 0.0)
//	// score ≈ 1.0833
//
// As described in:
//
//	E Brochu, VM Cora, & N de Freitas (2010):
//	A Tutorial on Bayesian Optimization of Expensive Cost Functions,
//	arXiv:1012.2599, http://arxiv.org/abs/1012.2599.
func ExpectedImprovement(mu, std, fMax, epsilon float64) (float64, error) {
	if !(std > 0) {
		return 0, &DomainError{Op: "ExpectedImprovement", Reason: "std must be > 0"}
	}

	z := (mu - fMax - epsilon) / std

	return (mu-fMax-epsilon)*normalCDF(z) + std*normalPDF(z), nil
}

// Kappa computes the GP-UCB exploration coefficient
//
//	kappa = sqrt(v * 2 * ln(t^(d/2 + 2) * pi^2 / (3 * delta)))
//
// for iteration t of an optimization over a d-dimensional search space.
// The coefficient grows with t and d, widening the confidence bound over
// time; this schedule gives the sublinear cumulative-regret guarantee of
// Srinivas et al. (2010) for reasonably smooth kernels.
//
// Parameters:
// - t: 1-indexed iteration count (must be >= 1)
// - d: Dimensionality of the search space (must be >= 1)
// - params: V and Delta regret-bound hyperparameters
//
// Returns:
// - float64: Exploration coefficient, monotonically non-decreasing in t
// - error: *DomainError if t < 1, d < 1, V <= 0, or Delta outside (0, 1)
//
// For any valid input the logarithm argument is at least pi^2/3 ≈ 3.29, so
// the result is always a real number. A very large t can overflow the
// coefficient to +Inf; that is the correct limit of the bound, not an error.
func Kappa(t, d int, params UCBParams) (float64, error) {
	if t < 1 {
		return 0, &DomainError{Op: "Kappa", Reason: "t must be >= 1"}
	}

	if d < 1 {
		return 0, &DomainError{Op: "Kappa", Reason: "d must be >= 1"}
	}

	if !(params.V > 0) {
		return 0, &DomainError{Op: "Kappa", Reason: "v must be > 0"}
	}

	if !(params.Delta > 0 && params.Delta < 1) {
		return 0, &DomainError{Op: "Kappa", Reason: "delta must be in (0, 1)"}
	}

	logArg := math.Pow(float64(t), float64(d)/2+2) * math.Pi * math.Pi / (3 * params.Delta)

	return math.Sqrt(params.V * 2 * math.Log(logArg)), nil
}

// UpperConfidenceBound (UCB) calculates the GP-UCB score of a candidate
// point: the predicted mean plus a confidence width that grows over
// iterations.
//
// How it works:
// - Computes the exploration coefficient kappa via Kappa(t, d, params)
// - Returns mu + kappa * std
//
// Parameters:
// - mu: Predicted mean at the candidate point
// - std: Predicted standard deviation at the candidate point
// - t: 1-indexed iteration count (must be >= 1)
// - d: Dimensionality of the search space (must be >= 1)
// - params: V and Delta regret-bound hyperparameters; see DefaultUCBParams
//
// Returns:
// - float64: Upper confidence bound for the candidate point
// - error: *DomainError under the same conditions as Kappa
//
// When to use:
// - When you want a principled exploration schedule rather than a manual
//   epsilon
// - When the regret guarantee matters (long-running optimizations)
//
// Example:
//
//	score, err := UpperConfidenceBound(0.0, 1.0, 1, 1, DefaultUCBParams())
//	// score ≈ 2.6433
//
// As described in:
//
//	E Brochu, VM Cora, & N de Freitas (2010):
//	A Tutorial on Bayesian Optimization of Expensive Cost Functions,
//	arXiv:1012.2599, http://arxiv.org/abs/1012.2599.
func UpperConfidenceBound(mu, std float64, t, d int, params UCBParams) (float64, error) {
	kappa, err := Kappa(t, d, params)
	if err != nil {
		return 0, err
	}

	return mu + kappa*std, nil
}
