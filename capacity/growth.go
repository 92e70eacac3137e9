package capacity

// Growth computes the capacity of a re-allocated buffer, given the current capacity
// and the minimum required capacity. Results below required are raised to required.
type Growth func(capacity, required int) int

// ExactGrowth allocates exactly the required capacity.
func ExactGrowth(capacity, required int) int {
	return required
}

// DoublingGrowth allocates at least twice the current capacity. Repeated insertion
// at one end thus costs amortized O(1) copies per item.
func DoublingGrowth(capacity, required int) int {
	return max(required, 2*capacity)
}

// StrategyOption configures a capacity strategy.
type StrategyOption func(*strategyConfig)

type strategyConfig struct {
	growth Growth
}

// WithGrowth sets the growth policy. The default is ExactGrowth.
func WithGrowth(g Growth) StrategyOption {
	return func(c *strategyConfig) {
		if g != nil {
			c.growth = g
		}
	}
}

// GrowthByName returns a growth policy for a configuration value. Known names are
// "exact" and "doubling".
func GrowthByName(name string) (Growth, bool) {
	switch name {
	case "exact", "":
		return ExactGrowth, true
	case "doubling", "double":
		return DoublingGrowth, true
	}
	return nil, false
}
