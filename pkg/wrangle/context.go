package wrangle

import (
	"math/rand"
	"regexp"
)

// ExecutionContext is the per-run bag of configuration available to steps
// (spec.md §3). It is owned exclusively by the Executor that created it;
// steps never retain a reference across invocations and never mutate it
// concurrently, so no internal locking is required (spec.md §5).
type ExecutionContext struct {
	// RunID identifies this run, used to seed deterministic per-run
	// randomness (mask-shuffle) and surfaced in run summaries.
	RunID string

	// LookupTables are named string lists carried for the run. None of the
	// built-in directives reads them, and expressions cannot reference them.
	LookupTables map[string][]string

	// rowCount is the monotonically advancing row counter.
	rowCount int64

	regexCache  map[string]*regexp.Regexp
	layoutCache map[string]string
	rng         *rand.Rand
}

// NewExecutionContext creates a fresh context for one engine run.
func NewExecutionContext(runID string, lookupTables map[string][]string) *ExecutionContext {
	if lookupTables == nil {
		lookupTables = map[string][]string{}
	}
	return &ExecutionContext{
		RunID:        runID,
		LookupTables: lookupTables,
		regexCache:   make(map[string]*regexp.Regexp),
		layoutCache:  make(map[string]string),
		rng:          rand.New(rand.NewSource(seedFromRunID(runID))),
	}
}

// RowCount returns the number of rows processed so far in this run.
func (c *ExecutionContext) RowCount() int64 { return c.rowCount }

func (c *ExecutionContext) advanceRow() { c.rowCount++ }

// Regexp returns a compiled regular expression for pattern, compiling it
// lazily on first use and caching it for the remainder of the run.
func (c *ExecutionContext) Regexp(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.regexCache[pattern] = re
	return re, nil
}

// CacheLayout lazily memoizes a translated date-format layout keyed by its
// original pattern text, populated by the caller's translation function on
// first use within this run.
func (c *ExecutionContext) CacheLayout(pattern string, translate func(string) string) string {
	if layout, ok := c.layoutCache[pattern]; ok {
		return layout
	}
	layout := translate(pattern)
	c.layoutCache[pattern] = layout
	return layout
}

// Rand returns the run-scoped random source used by mask-shuffle to
// produce a deterministic-per-run permutation.
func (c *ExecutionContext) Rand() *rand.Rand { return c.rng }

func seedFromRunID(runID string) int64 {
	var h int64 = 1469598103934665603
	for i := 0; i < len(runID); i++ {
		h ^= int64(runID[i])
		h *= 1099511628211
	}
	if h == 0 {
		return 1
	}
	return h
}
