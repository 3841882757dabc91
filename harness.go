package sortbench

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Options struct {
	// Sorters replaces the default sorter of each algorithm it contains.
	Sorters []Sorter

	// Verify checks that every sorted copy is in non-decreasing order.
	Verify bool

	// BeforeRun and AfterRun are called around every timed run.
	BeforeRun func(a Algorithm)
	AfterRun  func(res Result)

	// Now is the clock used to time runs, time.Now by default.
	Now func() time.Time
}

func DefaultOptions() *Options {
	return &Options{
		Sorters: DefaultSorters(),
		Now:     time.Now,
	}
}

// Harness times sorters against private copies of the same input, so no
// run observes the effects of another.
type Harness struct {
	opts    Options
	sorters map[Algorithm]Sorter
}

func New(opts *Options) *Harness {
	if opts == nil {
		opts = DefaultOptions()
	}

	h := &Harness{
		opts:    *opts,
		sorters: make(map[Algorithm]Sorter, len(Algorithms())),
	}
	if h.opts.Now == nil {
		h.opts.Now = time.Now
	}

	for _, s := range DefaultSorters() {
		h.sorters[s.Algorithm()] = s
	}
	for _, s := range opts.Sorters {
		if s == nil {
			continue
		}
		h.sorters[s.Algorithm()] = s
	}
	return h
}

// Sorter returns the sorter registered for a.
func (h *Harness) Sorter(a Algorithm) (Sorter, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, a)
	}
	s, ok := h.sorters[a]
	if !ok {
		return nil, fmt.Errorf("%w: no sorter registered for %s", ErrInvalidAlgorithm, a)
	}
	return s, nil
}

// Run sorts a copy of seq with algorithm a and times the sort call only.
// An unavailable sorter yields a StatusUnavailable result and no error.
func (h *Harness) Run(seq *Sequence, a Algorithm) (Result, error) {
	sorter, err := h.Sorter(a)
	if err != nil {
		return Result{}, err
	}

	if h.opts.BeforeRun != nil {
		h.opts.BeforeRun(a)
	}

	work := seq.Clone()

	start := h.opts.Now()
	err = sorter.Sort(work)
	elapsed := h.opts.Now().Sub(start)

	res := Result{Algorithm: a, Status: StatusOK, Elapsed: elapsed}
	if errors.Is(err, ErrUnavailable) {
		res = Result{Algorithm: a, Status: StatusUnavailable}
	} else if err != nil {
		return Result{}, fmt.Errorf("%s: %w", a, err)
	} else if h.opts.Verify && !work.IsSorted() {
		return Result{}, fmt.Errorf("%s: %w", a, ErrNotSorted)
	}

	if h.opts.AfterRun != nil {
		h.opts.AfterRun(res)
	}
	return res, nil
}

// RunAll runs every algorithm, in Algorithms order, on a fresh copy of seq.
func (h *Harness) RunAll(seq *Sequence) (*Report, error) {
	return h.RunSelected(seq, Algorithms()...)
}

// RunSelected runs the given algorithms in order, each on a fresh copy of seq.
func (h *Harness) RunSelected(seq *Sequence, algorithms ...Algorithm) (*Report, error) {
	report := &Report{
		ID:        uuid.New(),
		CreatedAt: h.opts.Now(),
		Kind:      seq.Kind(),
		Elements:  seq.Len(),
		Results:   make([]Result, 0, len(algorithms)),
	}

	for _, a := range algorithms {
		res, err := h.Run(seq, a)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
