package sortbench

import (
	"time"

	"github.com/google/uuid"
)

type Status uint8

const (
	StatusOK Status = iota
	StatusUnavailable
)

func (s Status) String() string {
	if s == StatusUnavailable {
		return "unavailable"
	}
	return "ok"
}

// Result is the outcome of a single timed sort.
type Result struct {
	Algorithm Algorithm
	Status    Status
	Elapsed   time.Duration
}

func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Milliseconds returns the elapsed time as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Report collects the results of one benchmark session in invocation order.
type Report struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Input     string
	Kind      Kind
	Elements  int
	Results   []Result
}

// Fastest returns the available result with the smallest elapsed time.
// Ties go to the result recorded first. ok is false if no result is available.
func (r *Report) Fastest() (fastest Result, ok bool) {
	return Fastest(r.Results)
}

// Result returns the result recorded for algorithm a.
func (r *Report) Result(a Algorithm) (Result, bool) {
	for _, res := range r.Results {
		if res.Algorithm == a {
			return res, true
		}
	}
	return Result{}, false
}

func Fastest(results []Result) (fastest Result, ok bool) {
	for _, res := range results {
		if !res.OK() {
			continue
		}
		if !ok || res.Elapsed < fastest.Elapsed {
			fastest, ok = res, true
		}
	}
	return fastest, ok
}
