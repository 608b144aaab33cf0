package insights

// FirstMatchStrategy picks the first pod in listing order as the
// reference for per-replica cost. The verdict is only as accurate as
// that pod is representative of the application; this is a deliberate,
// named approximation so alternatives (e.g. averaging across all
// matches) can be substituted without changing the evaluator contract.
type FirstMatchStrategy struct{}

// NewFirstMatchStrategy creates the default reference pod strategy.
func NewFirstMatchStrategy() *FirstMatchStrategy {
	return &FirstMatchStrategy{}
}

var _ ReferenceStrategy = (*FirstMatchStrategy)(nil)

// Name returns the strategy name.
func (s *FirstMatchStrategy) Name() string {
	return "first-match"
}

// Select returns the first match in listing order.
func (s *FirstMatchStrategy) Select(matches []Pod) Pod {
	return matches[0]
}
