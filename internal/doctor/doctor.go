// Package doctor runs check/data pairs against a host and aggregates their
// outcomes into a single result tree.
//
// The Runner owns three modes: Check evaluates every pair concurrently and
// rolls up the shared root, Collect captures the distinct data sources as a
// deduplicated stream of portable records, and LoadData hydrates data
// sources from such a stream so a later Check runs offline.
package doctor

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/thoreinstein/sysdoc/internal/check"
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Pair binds a check to the data source it consumes and the root its
// outcome is appended to. Several pairs may share one data source.
type Pair struct {
	Check    check.Check
	Data     datasource.DataSource
	Category string
	Result   *result.Result

	// outcome is the node this pair added during Check, if any.
	outcome *result.Result
}

// sourceState guards a single data source instance. attempted is set once
// evaluation has been tried, whether it succeeded or not.
type sourceState struct {
	mu        sync.Mutex
	attempted bool
	err       error
}

// Stats counts what happened during a run.
type Stats struct {
	Pairs              int `json:"pairs"`
	Results            int `json:"results"`
	Evaluations        int `json:"evaluations"`
	EvaluationFailures int `json:"evaluation_failures"`
	Disabled           int `json:"disabled"`
	CheckErrors        int `json:"check_errors"`

	// SerializationFailures counts collected sources whose record could not
	// be encoded and were left out of the collection.
	SerializationFailures int `json:"serialization_failures"`
}

// Runner executes pairs and aggregates their results.
type Runner struct {
	pairs       []*Pair
	root        *result.Result
	parallelism int

	mu      sync.Mutex
	sources map[datasource.DataSource]*sourceState

	evaluations        atomic.Int64
	evaluationFailures atomic.Int64
	disabled           atomic.Int64
	checkErrors        atomic.Int64
	serializeFailures  atomic.Int64
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallelism bounds the number of pairs evaluated at once.
// Values below one are ignored.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// NewRunner creates a runner whose results are appended to root. A nil root
// gets a fresh node.
func NewRunner(root *result.Result, opts ...Option) *Runner {
	if root == nil {
		root = NewRoot()
	}
	r := &Runner{
		root:        root,
		parallelism: runtime.GOMAXPROCS(0),
		sources:     make(map[datasource.DataSource]*sourceState),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRoot returns the root node of a run.
func NewRoot() *result.Result {
	return result.New("Overall system health status", "", result.PriorityDebug, result.IssueNo)
}

// AddPair registers a pair. Pairs keep their registration order. A pair
// without a result root is attached to the runner's root.
func (r *Runner) AddPair(p *Pair) {
	if p == nil {
		return
	}
	if p.Result == nil {
		p.Result = r.root
	}
	r.pairs = append(r.pairs, p)
}

// AddPairs registers pairs in order.
func (r *Runner) AddPairs(pairs []*Pair) {
	for _, p := range pairs {
		r.AddPair(p)
	}
}

// Pairs returns the registered pairs in order.
func (r *Runner) Pairs() []*Pair {
	return r.pairs
}

// Root returns the root result node.
func (r *Runner) Root() *result.Result {
	return r.root
}

// Stats returns the counters accumulated so far.
func (r *Runner) Stats() Stats {
	return Stats{
		Pairs:              len(r.pairs),
		Results:            r.root.Len(),
		Evaluations:        int(r.evaluations.Load()),
		EvaluationFailures: int(r.evaluationFailures.Load()),
		Disabled:           int(r.disabled.Load()),
		CheckErrors:        int(r.checkErrors.Load()),

		SerializationFailures: int(r.serializeFailures.Load()),
	}
}

// state returns the guard for ds, creating it on first use.
func (r *Runner) state(ds datasource.DataSource) *sourceState {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sources[ds]
	if !ok {
		s = &sourceState{}
		r.sources[ds] = s
	}
	return s
}

// distinctSources returns each data source once, in first-seen pair order.
func (r *Runner) distinctSources() []datasource.DataSource {
	seen := make(map[datasource.DataSource]bool, len(r.pairs))
	var out []datasource.DataSource
	for _, p := range r.pairs {
		if p.Data == nil || seen[p.Data] {
			continue
		}
		seen[p.Data] = true
		out = append(out, p.Data)
	}
	return out
}
