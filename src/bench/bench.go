package bench

import (
	"fmt"
	"time"

	"algoexam/src/record"
	"algoexam/src/sort"
	"algoexam/src/utils"

	"github.com/pkg/errors"
)

var logger = utils.GetLogger("bench")

const (
	// DefaultLargeN is the sample size at which O(n^2) runs need confirmation.
	DefaultLargeN = 100000
	// PreviewSize is how many sorted records a report shows.
	PreviewSize = 5
)

var (
	ErrInvalidField     = errors.Wrap(record.ErrInvalidField, "bench")
	ErrInvalidAlgorithm = errors.Wrap(sort.ErrInvalidAlgorithm, "bench")
	ErrInvalidSize      = errors.New("bench: row count must be a positive integer")
	// ErrCancelled means the user declined the large-N warning. It is an
	// expected outcome rather than a fault.
	ErrCancelled = errors.New("bench: cancelled")
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string, defaultValue bool) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(message string, defaultValue bool) (bool, error)

func (f ConfirmFunc) Confirm(message string, defaultValue bool) (bool, error) {
	return f(message, defaultValue)
}

// Request describes one benchmark run as typed by the user.
type Request struct {
	N         int
	Field     string
	Algorithm string
}

// Result is the outcome of a single run.
type Result struct {
	Records   []record.Record
	Elapsed   time.Duration
	N         int
	Field     record.Field
	Algorithm sort.Algorithm
}

func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Preview returns at most k records from the head of the sorted sample.
func (r *Result) Preview(k int) []record.Record {
	if k > len(r.Records) {
		k = len(r.Records)
	}
	if k < 0 {
		k = 0
	}
	return r.Records[:k]
}

// Harness runs one sort over a sample of the dataset and times it.
type Harness struct {
	// LargeN is the confirmation threshold; zero means DefaultLargeN.
	LargeN int
	// Confirm is consulted before large O(n^2) runs. A nil Confirm declines.
	Confirm Confirmer
	// Progress, if set, is started right before the timed section and its
	// stop function is called right after it.
	Progress func(label string) (stop func())
}

func (h *Harness) largeN() int {
	if h.LargeN <= 0 {
		return DefaultLargeN
	}
	return h.LargeN
}

// Run validates req, samples the first req.N records of dataset and sorts
// them with the chosen algorithm. Only the sort call itself is timed.
func (h *Harness) Run(dataset []record.Record, req Request) (*Result, error) {
	field, err := record.ParseField(req.Field)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidField, "%q", req.Field)
	}
	algo, err := sort.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAlgorithm, "%q", req.Algorithm)
	}
	return h.RunWith(dataset, req.N, field, algo)
}

// RunWith is Run for callers that already hold parsed values.
func (h *Harness) RunWith(dataset []record.Record, n int, field record.Field, algo sort.Algorithm) (*Result, error) {
	if !field.Valid() {
		return nil, errors.Wrapf(ErrInvalidField, "%v", field)
	}
	if !algo.Valid() {
		return nil, errors.Wrapf(ErrInvalidAlgorithm, "%v", algo)
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", n)
	}
	if n > len(dataset) {
		logger.Debugf("requested %d rows, only %d loaded", n, len(dataset))
		n = len(dataset)
	}

	if algo.Quadratic() && n >= h.largeN() {
		ok, err := h.confirm(n, algo)
		if err != nil {
			return nil, errors.Wrap(err, "confirm large run")
		}
		if !ok {
			logger.Infof("%s over %d rows declined", algo, n)
			return nil, ErrCancelled
		}
	}

	sample := make([]record.Record, n)
	copy(sample, dataset[:n])
	sortFn := algo.Func()

	var stop func()
	if h.Progress != nil {
		stop = h.Progress(fmt.Sprintf("Sorting %d records by %s", n, field))
	}
	start := time.Now()
	sorted := sortFn(sample, field)
	elapsed := time.Since(start)
	if stop != nil {
		stop()
	}

	logger.Debugf("%s sorted %d rows by %s in %s", algo, n, field, elapsed)
	return &Result{
		Records:   sorted,
		Elapsed:   elapsed,
		N:         n,
		Field:     field,
		Algorithm: algo,
	}, nil
}

func (h *Harness) confirm(n int, algo sort.Algorithm) (bool, error) {
	if h.Confirm == nil {
		return false, nil
	}
	msg := fmt.Sprintf("WARNING: %s is O(n^2) and %d records may take a very long time. Are you sure?", algo, n)
	return h.Confirm.Confirm(msg, false)
}
