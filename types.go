package acquisition

import "fmt"

//////
// Const, vars, types.
//////

// UCBParams holds the hyperparameters of the GP-UCB regret bound used by
// UpperConfidenceBound and Kappa. Both control how aggressively the
// confidence interval around the predicted mean is widened.
//
// Fields:
// - V: Scale applied to the exploration term (must be > 0)
// - Delta: Probability that the regret bound fails to hold (must be in (0,1))
//
// Usage example:
//
//	// Default parameters from the literature (v = 1, delta = 0.1)
//	params := DefaultUCBParams()
//
//	// More exploration: accept a weaker bound
//	params = UCBParams{V: 1, Delta: 0.5}
//
// Validation:
// - V and Delta are validated by Kappa on every call
// - Out-of-range values produce a DomainError, never a NaN score
//
// Note:
//   - V = 1 holds for reasonably smooth kernel functions
//     [Srinivas et al., 2010]
type UCBParams struct {
	// V scales the exploration term of the bound.
	// Higher values widen the confidence interval at every iteration.
	// V = 1 is the standard choice.
	V float64

	// Delta is the allowed probability of the regret bound failing.
	// Smaller values produce a wider, more conservative bound.
	// Typical values range from 0.01 to 0.1.
	Delta float64
}

// DomainError reports an input that falls outside the mathematically valid
// domain of an acquisition function, such as a non-positive standard
// deviation or UCB parameters that push the regret-bound logarithm out of
// its domain.
//
// Usage example:
//
//	_, err := ProbabilityOfImprovement(0.5, 0, 1.0, 0.01)
//
//	var domainErr *DomainError
//	if errors.As(err, &domainErr) {
//	    log.Printf("invalid input to %s: %s", domainErr.Op, domainErr.Reason)
//	}
//
// Important notes:
// - Every function in this package uses this single error type
// - A nil error guarantees the returned score is not NaN.
type DomainError struct {
	// Op is the name of the function that rejected the input.
	Op string

	// Reason describes which argument was outside the valid domain.
	Reason string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("acquisition: %s: %s", e.Op, e.Reason)
}
