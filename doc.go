// Package acquisition provides the closed-form acquisition functions used to
// score candidate points in Bayesian optimization: Probability of Improvement
// (PI), Expected Improvement (EI), and the GP-UCB Upper Confidence Bound
// (UCB). Each function is a stateless pure transformation over a predicted
// mean/standard-deviation pair, suitable for ranking candidate points produced
// by a Gaussian Process (or any other probabilistic surrogate model).
//
// # Features
//
// The package includes the following key features:
//
//   - Probability of Improvement: Conservative strategy scoring the chance of
//     beating the incumbent by at least epsilon
//   - Expected Improvement: The most commonly used acquisition function,
//     balancing probability and magnitude of improvement
//   - Upper Confidence Bound: The GP-UCB bound of Srinivas et al. (2010),
//     with an exploration coefficient that widens over iterations to
//     guarantee sublinear cumulative regret
//   - Element-wise Variants: Generic batch forms over float32/float64 slices
//     for scoring entire candidate grids at once
//   - Explicit Domain Errors: Invalid inputs (non-positive standard
//     deviation, out-of-range UCB hyperparameters) return a DomainError
//     instead of silently propagating NaN
//   - Thread-safe by Construction: Every function is pure and shares no
//     mutable state; safe to call from any number of goroutines
//
// # What this package is not
//
// The surrounding Bayesian optimization loop (surrogate model fitting,
// candidate-grid generation, result bookkeeping) lives with the caller.
// The caller maintains the surrogate producing (mu, std) pairs, tracks the
// incumbent fMax across evaluations, and tracks the iteration index t and the
// search-space dimensionality d that the UCB bound consumes.
//
// # Choosing an acquisition function
//
// 1. Expected Improvement (EI):
//
//   - Balances how likely and how large an improvement might be
//
//   - Good default for general optimization tasks
//
//     score, err := acquisition.ExpectedImprovement(mu, std, fMax, 0.01)
//
// 2. Probability of Improvement (PI):
//
//   - Conservative, favors small reliable improvements
//
//   - Good for noise-sensitive applications
//
//     score, err := acquisition.ProbabilityOfImprovement(mu, std, fMax, 0.01)
//
// 3. Upper Confidence Bound (UCB):
//
//   - Principled exploration schedule with a regret guarantee
//
//   - Requires the iteration index and search-space dimensionality
//
//     score, err := acquisition.UpperConfidenceBound(mu, std, t, d, acquisition.DefaultUCBParams())
//
// # Scoring a candidate grid
//
// The element-wise variants score a whole grid in one call, and BestIndex
// picks the candidate to evaluate next:
//
//	scores, err := acquisition.ExpectedImprovementEach(mus, stds, fMax, 0.01)
//	if err != nil {
//	    return err
//	}
//	next := candidates[acquisition.BestIndex(scores)]
//
// # Error handling
//
// All functions follow one policy: inputs outside the mathematically valid
// domain (std <= 0, or UCB parameters that would push the regret-bound
// logarithm out of its domain) return a *DomainError. Valid inputs never
// produce NaN (a very large t may legitimately overflow the UCB bound to
// +Inf; the inputs that cause it are still valid).
//
// # References
//
// E. Brochu, V. M. Cora, N. de Freitas (2010): A Tutorial on Bayesian
// Optimization of Expensive Cost Functions, arXiv:1012.2599.
//
// N. Srinivas, A. Krause, S. Kakade, M. Seeger (2010): Gaussian Process
// Optimization in the Bandit Setting: No Regret and Experimental Design,
// ICML 2010.
package acquisition
