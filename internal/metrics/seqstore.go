// Package metrics provides Prometheus metrics for the naming service
package metrics

import (
	"strings"

	"github.com/nainya/lexname/pkg/sequence"
)

// instrumentedSequenceStore counts increments and failures of the store it
// wraps. Peek and Close pass through untouched.
type instrumentedSequenceStore struct {
	inner sequence.Store
	m     *Metrics
}

// InstrumentSequenceStore wraps a sequence store with increment and error
// counters, labeled by counter scope.
func (m *Metrics) InstrumentSequenceStore(s sequence.Store) sequence.Store {
	return &instrumentedSequenceStore{inner: s, m: m}
}

func (s *instrumentedSequenceStore) Next(key sequence.Key) (uint64, error) {
	n, err := s.inner.Next(key)
	if err != nil {
		s.m.SequenceErrorsTotal.Inc()
		return 0, err
	}
	s.m.SequenceIncrementsTotal.WithLabelValues(strings.ToLower(string(key.Scope))).Inc()
	return n, nil
}

func (s *instrumentedSequenceStore) Peek(key sequence.Key) (uint64, error) {
	return s.inner.Peek(key)
}

func (s *instrumentedSequenceStore) Reset(key sequence.Key, value uint64) error {
	err := s.inner.Reset(key, value)
	if err != nil {
		s.m.SequenceErrorsTotal.Inc()
	}
	return err
}

func (s *instrumentedSequenceStore) Close() error {
	return s.inner.Close()
}
