package capacity_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/npillmayer/linstore/capacity"
	"github.com/npillmayer/linstore/internal/lixtest"
	"github.com/npillmayer/linstore/storage"
)

// --- Test Suite Preparation ------------------------------------------------

type StrategyTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestStrategy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linstore.capacity")
	defer teardown()
	suite.Run(t, new(StrategyTestEnviron))
}

// run once, before test suite methods
func (env *StrategyTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("linstore.capacity").SetTraceLevel(tracing.LevelDebug)
}

func (env *StrategyTestEnviron) extent(s *capacity.Linear[string]) capacity.Extent {
	e, ok := s.Registry().Content().Unwrap()
	env.Require().True(ok, "expected registry to have content")
	return e
}

// --- Head ------------------------------------------------------------------

func (env *StrategyTestEnviron) TestHeadGrowthPreservesContent() {
	s, store := lixtest.Strategy(env.T(), "__abc")
	env.Require().NoError(s.EnsureHeadCapacity(4))
	env.GreaterOrEqual(store.Capacity(), 7)
	e := env.extent(s)
	env.Equal(capacity.Extent{First: 4, Last: 6}, e)
	env.Equal("abc", lixtest.Read(env.T(), store, e.First, e.Last))
	env.GreaterOrEqual(s.Registry().HeadCapacity(), 4)
	env.Equal("____abc", lixtest.Dump(store))
}

func (env *StrategyTestEnviron) TestHeadGrowthPreservesTailRoom() {
	s, store := lixtest.Strategy(env.T(), "_ab__")
	env.Require().NoError(s.EnsureHeadCapacity(3))
	env.Equal("___ab__", lixtest.Dump(store))
	env.Equal(2, s.Registry().TailCapacity())
	env.Equal(capacity.Extent{First: 3, Last: 4}, env.extent(s))
}

func (env *StrategyTestEnviron) TestHeadNoOpWhenSufficient() {
	s, store := lixtest.Strategy(env.T(), "__ab")
	env.Require().NoError(s.EnsureHeadCapacity(2))
	env.Require().NoError(s.EnsureHeadCapacity(0))
	env.Equal("__ab", lixtest.Dump(store))
	env.Equal(storage.Stats{}, store.Stats())
}

func (env *StrategyTestEnviron) TestHeadDoublingPutsSlackBeforeContent() {
	s, store := lixtest.Strategy(env.T(), "abcd", capacity.WithGrowth(capacity.DoublingGrowth))
	env.Require().NoError(s.EnsureHeadCapacity(1))
	env.Equal("____abcd", lixtest.Dump(store))
	env.Equal(4, s.Registry().HeadCapacity())
}

// --- Tail ------------------------------------------------------------------

func (env *StrategyTestEnviron) TestTailNoOpWhenSufficient() {
	s, store := lixtest.Strategy(env.T(), "ab___")
	capBefore, extBefore := store.Capacity(), env.extent(s)
	env.Require().NoError(s.EnsureTailCapacity(2))
	env.Require().NoError(s.EnsureTailCapacity(3))
	env.Equal(capBefore, store.Capacity())
	env.Equal(extBefore, env.extent(s))
	env.Equal(0, store.Stats().Allocations)
}

func (env *StrategyTestEnviron) TestTailGrowthKeepsContentInPlace() {
	s, store := lixtest.Strategy(env.T(), "_ab")
	env.Require().NoError(s.EnsureTailCapacity(2))
	env.Equal("_ab__", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 1, Last: 2}, env.extent(s))
	env.Equal(2, s.Registry().TailCapacity())
}

func (env *StrategyTestEnviron) TestTailDoubling() {
	s, store := lixtest.Strategy(env.T(), "abcd", capacity.WithGrowth(capacity.DoublingGrowth))
	env.Require().NoError(s.EnsureTailCapacity(1))
	env.Equal("abcd____", lixtest.Dump(store))
}

// --- Middle ----------------------------------------------------------------

func (env *StrategyTestEnviron) TestMiddleFastPath() {
	s, store := lixtest.Strategy(env.T(), "abcde_____")
	env.Require().NoError(s.EnsureMiddleCapacity(2, 2))
	env.Equal(10, store.Capacity())
	env.Equal("ab", lixtest.Read(env.T(), store, 0, 1))
	env.Equal("cd", lixtest.Read(env.T(), store, 4, 5))
	env.Equal("cde", lixtest.Read(env.T(), store, 4, 6))
	env.Equal(capacity.Extent{First: 0, Last: 6}, env.extent(s))
	env.Equal(0, store.Stats().Allocations)
	env.Equal(1, store.Stats().Shifts)
}

func (env *StrategyTestEnviron) TestMiddleSlowPath() {
	s, store := lixtest.Strategy(env.T(), "abcde")
	env.Require().NoError(s.EnsureMiddleCapacity(2, 3))
	env.Equal(8, store.Capacity())
	env.Equal("ab___cde", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 0, Last: 7}, env.extent(s))
	env.Equal(1, store.Stats().Allocations)
	env.Equal(5, store.Stats().Copied, "expected every item to be copied exactly once")
}

func (env *StrategyTestEnviron) TestMiddleSlowPathKeepsHeadAndTailRoom() {
	s, store := lixtest.Strategy(env.T(), "_abc_")
	env.Require().NoError(s.EnsureMiddleCapacity(2, 2))
	env.Equal("_a__bc_", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 1, Last: 5}, env.extent(s))
	env.Equal(1, s.Registry().HeadCapacity())
	env.Equal(1, s.Registry().TailCapacity())
}

func (env *StrategyTestEnviron) TestMiddleSplitAtFirst() {
	s, store := lixtest.Strategy(env.T(), "abc")
	env.Require().NoError(s.EnsureMiddleCapacity(0, 2))
	env.Equal("__abc", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 0, Last: 4}, env.extent(s))
}

func (env *StrategyTestEnviron) TestMiddleZeroIsIdempotent() {
	for split := 1; split <= 4; split++ {
		s, store := lixtest.Strategy(env.T(), "_abc_")
		env.Require().NoError(s.EnsureMiddleCapacity(split, 0), "split=%d", split)
		env.Equal("_abc_", lixtest.Dump(store))
		env.Equal(capacity.Extent{First: 1, Last: 3}, env.extent(s))
		env.Equal(storage.Stats{}, store.Stats())
	}
}

func (env *StrategyTestEnviron) TestMiddleSplitOutOfContent() {
	tests := []struct {
		split, n int
		issue    string
	}{
		{0, 1, "split index below first"},
		{0, 0, "split index below first"},
		{4, 1, "split index above last"},
		{5, 0, "split index above last"},
	}
	for _, tt := range tests {
		s, store := lixtest.Strategy(env.T(), "_abc_")
		err := s.EnsureMiddleCapacity(tt.split, tt.n)
		env.Require().Error(err)
		env.True(errors.Is(err, storage.InvalidIndex), "split=%d: expected InvalidIndex, have %v", tt.split, err)
		var serr *storage.Error
		env.Require().True(errors.As(err, &serr))
		env.Equal(tt.issue, serr.Issue)
		env.Equal(tt.split, serr.Value)
		env.Equal("_abc_", lixtest.Dump(store))
	}
}

// --- Validation and empty content -------------------------------------------

func (env *StrategyTestEnviron) TestNegativeCapacityFails() {
	s, store := lixtest.Strategy(env.T(), "_abc_")
	calls := map[string]func() error{
		"head":   func() error { return s.EnsureHeadCapacity(-1) },
		"tail":   func() error { return s.EnsureTailCapacity(-1) },
		"middle": func() error { return s.EnsureMiddleCapacity(2, -1) },
	}
	for name, call := range calls {
		err := call()
		env.True(errors.Is(err, storage.InvalidCapacity), "%s: expected InvalidCapacity, have %v", name, err)
		env.False(errors.Is(err, storage.InvalidIndex), "%s: unexpected InvalidIndex", name)
	}
	env.Equal("_abc_", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 1, Last: 3}, env.extent(s))
}

func (env *StrategyTestEnviron) TestEmptyContent() {
	s, store := lixtest.Strategy(env.T(), "")
	env.Require().NoError(s.EnsureHeadCapacity(3))
	env.Equal(3, store.Capacity())
	env.Require().NoError(s.EnsureTailCapacity(2))
	env.Equal(3, store.Capacity())
	env.True(s.Registry().IsEmpty())
	env.Require().NoError(s.EnsureMiddleCapacity(0, 0))
	err := s.EnsureMiddleCapacity(0, 1)
	env.True(errors.Is(err, storage.InvalidIndex), "expected InvalidIndex, have %v", err)
}

func (env *StrategyTestEnviron) TestInitialize() {
	s, store := lixtest.Strategy(env.T(), "")
	env.Require().NoError(s.Initialize(2, 4))
	env.Equal(5, store.Capacity())
	env.Equal(capacity.Extent{First: 2, Last: 4}, env.extent(s))
	//
	err := s.Initialize(3, 1)
	env.True(errors.Is(err, storage.InvalidCapacity), "expected InvalidCapacity, have %v", err)
	env.Equal(capacity.Extent{First: 2, Last: 4}, env.extent(s))
	//
	env.Require().NoError(s.Initialize(2, 1))
	env.True(s.Registry().IsEmpty())
	env.Equal(5, store.Capacity(), "storage never shrinks")
}

func (env *StrategyTestEnviron) TestInitializeKeepsItems() {
	s, store := lixtest.Strategy(env.T(), "abc")
	env.Require().NoError(s.Initialize(0, 4))
	env.Equal("abc__", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 0, Last: 4}, env.extent(s))
	env.Equal(3, store.Stats().Copied)
	//
	err := s.Initialize(-1, 2)
	env.True(errors.Is(err, storage.InvalidIndex), "expected InvalidIndex, have %v", err)
	env.Contains(err.Error(), "index must be >= 0")
	env.Equal("abc__", lixtest.Dump(store))
}

func (env *StrategyTestEnviron) TestCapacityOverflowRejected() {
	s, store := lixtest.Strategy(env.T(), "_abc_")
	calls := map[string]func() error{
		"head":       func() error { return s.EnsureHeadCapacity(math.MaxInt) },
		"tail":       func() error { return s.EnsureTailCapacity(math.MaxInt - 2) },
		"middle":     func() error { return s.EnsureMiddleCapacity(2, math.MaxInt) },
		"initialize": func() error { return s.Initialize(0, math.MaxInt) },
	}
	for name, call := range calls {
		err := call()
		env.True(errors.Is(err, storage.InvalidCapacity), "%s: expected InvalidCapacity, have %v", name, err)
		var serr *storage.Error
		env.Require().True(errors.As(err, &serr), name)
		env.Equal("requested capacity overflows int", serr.Issue, name)
	}
	env.Equal("_abc_", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 1, Last: 3}, env.extent(s))
	env.Equal(storage.Stats{}, store.Stats())
}

func (env *StrategyTestEnviron) TestInconsistentRegistryRejected() {
	store, err := storage.NewArray[string](3)
	env.Require().NoError(err)
	reg, err := capacity.NewRegistry(store, 1, 5)
	env.Require().NoError(err)
	_, err = capacity.NewLinear[string](store, reg)
	env.True(errors.Is(err, storage.InvalidIndex), "expected InvalidIndex, have %v", err)
}

func (env *StrategyTestEnviron) TestForeignRegistryRejected() {
	store, err := storage.NewArray[string](3)
	env.Require().NoError(err)
	other, err := storage.NewArray[string](8)
	env.Require().NoError(err)
	_, err = capacity.NewLinear[string](store, capacity.NewEmptyRegistry(other))
	env.Error(err)
	_, err = capacity.NewLinear[string](store, capacity.NewEmptyRegistry(store))
	env.NoError(err)
}

// --- Clone and amortization --------------------------------------------------

func (env *StrategyTestEnviron) TestClone() {
	s, store := lixtest.Strategy(env.T(), "_ab_")
	c, err := s.Clone()
	env.Require().NoError(err)
	env.Require().NoError(c.EnsureHeadCapacity(3))
	env.Require().NoError(c.Storage().ReplaceItem(0, "x"))
	env.Equal("_ab_", lixtest.Dump(store))
	env.Equal(capacity.Extent{First: 1, Last: 2}, env.extent(s))
	env.Equal("x__ab_", lixtest.Dump(c.Storage()))
	env.Equal(capacity.Extent{First: 3, Last: 4}, env.extent(c))
}

func (env *StrategyTestEnviron) TestRepeatedAppendWithDoubling() {
	s, store := lixtest.Strategy(env.T(), "a", capacity.WithGrowth(capacity.DoublingGrowth))
	const n = 100
	for i := 1; i < n; i++ {
		env.Require().NoError(s.EnsureTailCapacity(1))
		last, _ := s.Registry().LastItemIndex()
		env.Require().NoError(store.ReplaceItem(last+1, "z"))
		env.Require().NoError(s.Registry().IncrementLastItemIndex(1))
	}
	env.Equal(n, s.Registry().ItemsCount())
	env.LessOrEqual(store.Stats().Allocations, 8)
	env.Equal("a", lixtest.Read(env.T(), store, 0, 0))
	env.Equal("z", lixtest.Read(env.T(), store, n-1, n-1))
}
