// Package datasource defines the telemetry producers consumed by checks.
//
// A DataSource evaluates once, holds an immutable payload afterwards, and can
// round-trip that payload through a portable Record so telemetry collected on
// one run can be replayed on another.
package datasource

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

// ErrAlreadyCollected is returned when hydrating a source that already holds a payload.
var ErrAlreadyCollected = errors.New("data source already collected")

// ErrNameMismatch is returned when a record is hydrated into a source of another name.
var ErrNameMismatch = errors.New("record name does not match data source")

// DataSource is a named telemetry producer.
type DataSource interface {
	// Name returns the stable identifier written into portable records.
	Name() string

	// Enabled reports whether the source applies to this host.
	Enabled() bool

	// Collected reports whether the source holds a payload, either from
	// Evaluate or from FromPortable.
	Collected() bool

	// Evaluate collects the telemetry. It is a no-op once collected.
	Evaluate(ctx context.Context) error

	// ToPortable returns the portable form of the collected payload.
	ToPortable() (*Record, error)

	// FromPortable hydrates the source from a previously captured record
	// and marks it collected.
	FromPortable(rec *Record) error
}

// Record is the portable form of a data source payload. One record is
// written per line by collect mode.
type Record struct {
	Name      string          `json:"name"`
	Hostname  string          `json:"hostname,omitempty"`
	Timestamp time.Time       `json:"timestamp,omitzero"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Decode unmarshals the record's data into v.
func (r *Record) Decode(v any) error {
	if r == nil || len(r.Data) == 0 {
		return errors.New("record has no data")
	}
	return errors.Wrapf(json.Unmarshal(r.Data, v), "decoding %s data", r.Name)
}

// CollectFunc produces a payload for a Source.
type CollectFunc[T any] func(ctx context.Context) (T, error)

// Source is a DataSource backed by a typed payload.
type Source[T any] struct {
	name    string
	enabled func() bool
	collect CollectFunc[T]

	mu        sync.RWMutex
	collected bool
	payload   T
	hostname  string
	timestamp time.Time
}

var _ DataSource = (*Source[struct{}])(nil)

// NewSource creates a Source. A nil enabled func means always enabled.
func NewSource[T any](name string, enabled func() bool, collect CollectFunc[T]) *Source[T] {
	return &Source[T]{
		name:    name,
		enabled: enabled,
		collect: collect,
	}
}

// Name returns the source name.
func (s *Source[T]) Name() string {
	return s.name
}

// Enabled reports whether the source applies to this host.
func (s *Source[T]) Enabled() bool {
	if s.enabled == nil {
		return true
	}
	return s.enabled()
}

// Collected reports whether a payload is held.
func (s *Source[T]) Collected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collected
}

// Payload returns the collected payload and whether it is present.
func (s *Source[T]) Payload() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload, s.collected
}

// Evaluate runs the collect func once. A failed evaluation leaves the source
// uncollected.
func (s *Source[T]) Evaluate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collected {
		return nil
	}
	if s.collect == nil {
		return errors.Newf("data source %s has no collector", s.name)
	}

	payload, err := s.collect(ctx)
	if err != nil {
		return errors.Wrapf(err, "collecting %s", s.name)
	}

	s.payload = payload
	s.hostname, _ = os.Hostname()
	s.timestamp = time.Now().UTC()
	s.collected = true
	return nil
}

// ToPortable serializes the payload. An uncollected source yields a record
// with no data.
func (s *Source[T]) ToPortable() (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec := &Record{Name: s.name}
	if !s.collected {
		return rec, nil
	}

	data, err := json.Marshal(s.payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s payload", s.name)
	}
	rec.Hostname = s.hostname
	rec.Timestamp = s.timestamp
	rec.Data = data
	return rec, nil
}

// FromPortable hydrates the source from rec.
func (s *Source[T]) FromPortable(rec *Record) error {
	if rec == nil {
		return errors.New("nil record")
	}
	if rec.Name != s.name {
		return errors.Wrapf(ErrNameMismatch, "%q into %q", rec.Name, s.name)
	}

	var payload T
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &payload); err != nil {
			return errors.Wrapf(err, "decoding %s payload", s.name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collected {
		return errors.Wrap(ErrAlreadyCollected, s.name)
	}
	s.payload = payload
	s.hostname = rec.Hostname
	s.timestamp = rec.Timestamp
	s.collected = true
	return nil
}
