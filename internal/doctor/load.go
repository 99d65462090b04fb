package doctor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
)

// LoadStats summarizes a replay load.
type LoadStats struct {
	Lines     int `json:"lines"`
	Loaded    int `json:"loaded"`
	Skipped   int `json:"skipped"`
	Malformed int `json:"malformed"`
}

// LoadData hydrates data sources from a stream of newline-delimited records.
//
// Each record fills the first uncollected data source, in pair order, whose
// name matches. Records that match nothing are skipped. Malformed lines are
// logged and skipped. Only a read error on rd aborts the load.
func (r *Runner) LoadData(ctx context.Context, rd io.Reader) (LoadStats, error) {
	logger := logging.FromContext(ctx)
	br := bufio.NewReader(rd)

	var stats LoadStats
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, errors.Wrapf(readErr, "reading replay line %d", lineNo)
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			stats.Lines++
			r.loadLine(ctx, lineNo, line, &stats)
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	logger.Debug("replay loaded",
		"lines", stats.Lines,
		"loaded", stats.Loaded,
		"skipped", stats.Skipped,
		"malformed", stats.Malformed,
	)
	return stats, nil
}

func (r *Runner) loadLine(ctx context.Context, lineNo int, line []byte, stats *LoadStats) {
	logger := logging.FromContext(ctx).With("line", lineNo)

	var rec datasource.Record
	if err := json.Unmarshal(line, &rec); err != nil {
		stats.Malformed++
		logger.Warn(errors.ErrReplayParse.Error(), "error", err)
		return
	}
	if rec.Name == "" {
		stats.Malformed++
		logger.Warn(errors.ErrReplayParse.Error(), "error", "record has no name")
		return
	}

	for _, p := range r.pairs {
		ds := p.Data
		if ds == nil || ds.Name() != rec.Name {
			continue
		}

		loaded, err := r.hydrate(ds, &rec)
		if err != nil {
			stats.Skipped++
			logger.Warn("unable to load record", "data", rec.Name, "error", err)
			return
		}
		if loaded {
			stats.Loaded++
			logger.Log(ctx, logging.LevelTrace, "record loaded", "data", rec.Name)
			return
		}
	}

	stats.Skipped++
	logger.Debug("no data source accepts record", "data", rec.Name)
}

// hydrate fills ds from rec unless it is already collected.
func (r *Runner) hydrate(ds datasource.DataSource, rec *datasource.Record) (bool, error) {
	st := r.state(ds)
	st.mu.Lock()
	defer st.mu.Unlock()

	if ds.Collected() {
		return false, nil
	}
	if err := ds.FromPortable(rec); err != nil {
		return false, err
	}
	return true, nil
}
