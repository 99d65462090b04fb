package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
)

// Collect resolves every distinct data source and returns their portable
// records in pair order. A record whose serialized form was already emitted
// is dropped, so a source shared by several pairs appears once. Sources that
// are disabled, failed to evaluate, or cannot be serialized are omitted.
func (r *Runner) Collect(ctx context.Context) ([][]byte, error) {
	logger := logging.FromContext(ctx)

	g := new(errgroup.Group)
	g.SetLimit(r.parallelism)
	for _, ds := range r.distinctSources() {
		g.Go(func() error {
			if _, err := r.resolve(ctx, ds); err != nil {
				logger.Info("omitting data source from collection", "data", ds.Name(), "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[uint64]struct{})
	failed := make(map[datasource.DataSource]struct{})
	var lines [][]byte
	for _, p := range r.pairs {
		if p.Data == nil || !p.Data.Collected() {
			continue
		}
		if _, ok := failed[p.Data]; ok {
			continue
		}

		line, err := serialize(p.Data)
		if err != nil {
			failed[p.Data] = struct{}{}
			r.serializeFailures.Add(1)
			logger.Warn("omitting data source from collection", "data", p.Data.Name(), "error", err)
			continue
		}

		sum := xxhash.Sum64(line)
		if _, dup := seen[sum]; dup {
			continue
		}
		seen[sum] = struct{}{}
		lines = append(lines, line)
	}

	logger.Debug("collection complete", "records", len(lines), "pairs", len(r.pairs))
	return lines, nil
}

// WriteLines writes one record per line.
func WriteLines(w io.Writer, lines [][]byte) error {
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return errors.Wrap(err, "writing record")
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}
	return nil
}

// serialize returns the encoded portable record of a collected source.
func serialize(ds datasource.DataSource) ([]byte, error) {
	rec, err := ds.ToPortable()
	if err != nil {
		return nil, errors.Wrapf(err, "serializing %s", ds.Name())
	}
	return encodeRecord(rec)
}

// encodeRecord returns the compact JSON form of rec with invalid UTF-8
// replaced by U+FFFD.
func encodeRecord(rec *datasource.Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s record", rec.Name)
	}
	return bytes.ToValidUTF8(data, []byte("�")), nil
}
