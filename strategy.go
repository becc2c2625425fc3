package sievego

import (
	"fmt"
	"strings"
)

// Strategy selects how composite marking is distributed across workers.
// The original design chose this at build time; here it is an explicit
// configuration value so both kernels stay interchangeable behind the
// same contract.
type Strategy int

const (
	// StrategyInner keeps the candidate loop sequential and parallelizes
	// the marking of each confirmed prime's multiples. A candidate is
	// only probed after every smaller prime finished marking, so it does
	// the minimum marking work, at the cost of one join barrier per
	// prime below sqrt(bound).
	StrategyInner Strategy = iota

	// StrategyOuter distributes the candidate loop itself across workers
	// in a single fork-join region. Workers racing ahead of unresolved
	// candidates redundantly re-mark some multiples of composites;
	// marking is idempotent, so the extra work is wasted but harmless.
	StrategyOuter
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyInner:
		return "inner"
	case StrategyOuter:
		return "outer"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "inner":
		return StrategyInner, nil
	case "outer":
		return StrategyOuter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
