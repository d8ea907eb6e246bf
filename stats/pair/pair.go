package pair

import (
	"errors"
	"math"
)

// Errors returned by paired-sequence operations.
var (
	ErrLengthMismatch = errors.New("pair: sequences must have equal length")
	ErrEmpty          = errors.New("pair: sequences must not be empty")
)

// MeanAbsDifference returns the arithmetic mean of |a[i] - b[i]| over
// paired positions. It is symmetric in its arguments and zero exactly
// when the two sequences are elementwise identical.
func MeanAbsDifference(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	if len(a) == 0 {
		return 0, ErrEmpty
	}

	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a)), nil
}

// StreamingMAD accumulates a mean absolute difference incrementally
// across multiple paired chunks. The zero value is ready to use.
type StreamingMAD struct {
	sum   float64
	count int
}

// NewStreamingMAD creates a new StreamingMAD accumulator.
func NewStreamingMAD() *StreamingMAD {
	return &StreamingMAD{}
}

// Update adds one paired chunk to the accumulator. Both chunks must have
// the same length; empty chunks are accepted and contribute nothing.
func (s *StreamingMAD) Update(a, b []float64) error {
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	for i := range a {
		s.sum += math.Abs(a[i] - b[i])
	}
	s.count += len(a)
	return nil
}

// Count returns the number of pairs accumulated so far.
func (s *StreamingMAD) Count() int {
	return s.count
}

// Result returns the mean absolute difference over all accumulated pairs.
func (s *StreamingMAD) Result() (float64, error) {
	if s.count == 0 {
		return 0, ErrEmpty
	}
	return s.sum / float64(s.count), nil
}

// Reset clears all accumulated data, allowing the StreamingMAD to be reused.
func (s *StreamingMAD) Reset() {
	*s = StreamingMAD{}
}
