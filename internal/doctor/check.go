package doctor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Check evaluates every pair and returns the rolled up root.
//
// Pairs run concurrently, bounded by the runner's parallelism. A shared data
// source is evaluated at most once. Failures are logged and never abort the
// run: a disabled source contributes no result, a failed evaluation hands
// the check a nil record, and a check error drops that pair's result.
func (r *Runner) Check(ctx context.Context) *result.Result {
	g := new(errgroup.Group)
	g.SetLimit(r.parallelism)

	for _, p := range r.pairs {
		g.Go(func() error {
			r.runPair(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	rolled := map[*result.Result]bool{}
	for _, p := range r.pairs {
		if !rolled[p.Result] {
			rolled[p.Result] = true
			p.Result.Rollup()
		}
	}
	if !rolled[r.root] {
		r.root.Rollup()
	}
	return r.root
}

func (r *Runner) runPair(ctx context.Context, p *Pair) {
	logger := logging.FromContext(ctx).With("check", checkName(p), "data", dataName(p))

	if p.Check == nil {
		r.checkErrors.Add(1)
		logger.Warn(errors.ErrCheckExecution.Error(), "error", "pair has no check")
		return
	}

	var rec *datasource.Record
	if p.Data != nil {
		var err error
		rec, err = r.resolve(ctx, p.Data)
		switch {
		case errors.Is(err, errors.ErrDataSourceDisabled):
			logger.Info(errors.ErrDataSourceDisabled.Error())
			return
		case err != nil:
			logger.Debug("checking without data", "error", err)
			rec = nil
		}
	}

	res, err := p.Check.Apply(rec)
	if err != nil {
		r.checkErrors.Add(1)
		logger.Warn(errors.ErrCheckExecution.Error(), "error", err)
		return
	}
	if res == nil {
		r.checkErrors.Add(1)
		logger.Warn(errors.ErrCheckExecution.Error(), "error", "check returned no result")
		return
	}

	p.Result.AddChild(res)
	p.outcome = res
	logger.Log(ctx, logging.LevelTrace, "check complete", "issue", res.Issue, "priority", res.Priority)
}

// resolve returns the portable record of ds, evaluating it first when it has
// not been collected. The check-then-evaluate sequence runs under the
// source's guard, so concurrent callers wait for the first evaluation and
// then share its outcome.
func (r *Runner) resolve(ctx context.Context, ds datasource.DataSource) (*datasource.Record, error) {
	if !ds.Enabled() {
		r.disabled.Add(1)
		return nil, errors.Wrapf(errors.ErrDataSourceDisabled, "%s", ds.Name())
	}

	st := r.state(ds)
	st.mu.Lock()
	defer st.mu.Unlock()

	if !ds.Collected() && !st.attempted {
		st.attempted = true
		r.evaluations.Add(1)
		if err := ds.Evaluate(ctx); err != nil {
			r.evaluationFailures.Add(1)
			st.err = errors.Mark(errors.Wrapf(err, "evaluating %s", ds.Name()), errors.ErrDataSourceEvaluation)
			logging.FromContext(ctx).Warn(errors.ErrDataSourceEvaluation.Error(), "data", ds.Name(), "error", err)
		}
	}

	if !ds.Collected() {
		if st.err != nil {
			return nil, st.err
		}
		return nil, errors.Newf("data source %s was not collected", ds.Name())
	}

	rec, err := ds.ToPortable()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "serializing %s", ds.Name()), errors.ErrDataSourceEvaluation)
	}
	return rec, nil
}

func checkName(p *Pair) string {
	if p.Check == nil {
		return ""
	}
	return p.Check.Name()
}

func dataName(p *Pair) string {
	if p.Data == nil {
		return ""
	}
	return p.Data.Name()
}
