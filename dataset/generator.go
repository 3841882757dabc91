package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/go-bond/sortbench"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultN           = 1_000_000
	DefaultSeed        = 42
	DefaultConcurrency = 4

	FloatMin, FloatMax = 0.0, 1_000_000.0
	IntMin, IntMax     = int64(0), int64(1_000_000_000)
)

type Order uint8

const (
	OrderRandom Order = iota
	OrderAscending
	OrderDescending
)

func (o Order) String() string {
	switch o {
	case OrderAscending:
		return "asc"
	case OrderDescending:
		return "desc"
	default:
		return "rand"
	}
}

// Plan describes one generated dataset. Index doubles as the seed offset.
type Plan struct {
	Index int
	Kind  sortbench.Kind
	Order Order
}

// Name returns the file name of the dataset, e.g. seq01_float_asc.txt.
// The kind is part of the name so that KindFromPath can recover it.
func (p Plan) Name() string {
	return fmt.Sprintf("seq%02d_%s_%s.txt", p.Index, p.Kind, p.Order)
}

// Plans returns the standard benchmark datasets: one ascending and one
// descending float sequence, three random float and five random int sequences.
func Plans() []Plan {
	plans := []Plan{
		{Index: 1, Kind: sortbench.KindFloat, Order: OrderAscending},
		{Index: 2, Kind: sortbench.KindFloat, Order: OrderDescending},
	}
	for i := 3; i <= 5; i++ {
		plans = append(plans, Plan{Index: i, Kind: sortbench.KindFloat, Order: OrderRandom})
	}
	for i := 6; i <= 10; i++ {
		plans = append(plans, Plan{Index: i, Kind: sortbench.KindInt, Order: OrderRandom})
	}
	return plans
}

type Generator struct {
	N           int
	Seed        int64
	Concurrency int
	Compress    bool
}

func NewGenerator() *Generator {
	return &Generator{
		N:           DefaultN,
		Seed:        DefaultSeed,
		Concurrency: DefaultConcurrency,
	}
}

// Generate builds the sequence described by p. The output depends only on
// the generator seed, N and p.
func (g *Generator) Generate(p Plan) *sortbench.Sequence {
	rng := rand.New(rand.NewSource(g.Seed + int64(p.Index)))

	if p.Kind == sortbench.KindInt {
		values := make([]int64, g.N)
		for i := range values {
			values[i] = IntMin + rng.Int63n(IntMax-IntMin+1)
		}
		order(values, p.Order)
		return sortbench.NewIntSequence(values)
	}

	values := make([]float64, g.N)
	for i := range values {
		values[i] = FloatMin + rng.Float64()*(FloatMax-FloatMin)
	}
	order(values, p.Order)
	return sortbench.NewFloatSequence(values)
}

func order[T sortbench.Number](values []T, o Order) {
	if o == OrderRandom {
		return
	}
	slices.Sort(values)
	if o == OrderDescending {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
}

// Generated is a dataset written by GenerateAll.
type Generated struct {
	Plan Plan
	Path string
	Size uint64
}

// GenerateAll writes every plan into dir, at most Concurrency at a time.
// Results are returned in plan order.
func (g *Generator) GenerateAll(ctx context.Context, dir string, plans []Plan) ([]Generated, error) {
	out := make([]Generated, len(plans))

	grp, ctx := errgroup.WithContext(ctx)
	if g.Concurrency > 0 {
		grp.SetLimit(g.Concurrency)
	}

	for i, p := range plans {
		i, p := i, p
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(dir, p.Name())
			if g.Compress {
				path += ZstdExt
			}

			size, err := WriteFile(path, g.Generate(p))
			if err != nil {
				return fmt.Errorf("failed to write %s - %w", p.Name(), err)
			}

			out[i] = Generated{Plan: p, Path: path, Size: size}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
