package ports

// Evaluator answers two-sided confidence queries against one fixed
// distribution. Implementations must be safe for concurrent use.
type Evaluator interface {
	Evaluate(x float64) float64
}
