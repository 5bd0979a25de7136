// Package sample evaluates compiled expressions over ranges of inputs.
package sample

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// Func is a function of one real variable. *graphcalc.Evaluator is a Func.
type Func interface {
	Sample(x float64) float64
}

// Point is a sampled point of a curve.
type Point struct {
	X, Y float64
}

// Linspace returns n evenly spaced values from start to end inclusive. The
// first and last values are exactly start and end.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	v := make([]float64, n)
	delta := (end - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		v[i] = start + delta*float64(i)
	}
	v[n-1] = end
	return v
}

// batch is the number of points a worker evaluates between checks for
// cancellation.
const batch = 256

// Curve evaluates f at each of xs using up to workers goroutines. The points
// are in the same order as xs. If workers is not positive, it defaults to
// GOMAXPROCS. If ctx is cancelled before all points are computed, Curve
// returns nil and the context's error.
func Curve(ctx context.Context, f Func, xs []float64, workers int) ([]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n := (len(xs) + batch - 1) / batch; workers > n {
		workers = n
	}
	if workers == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []Point{}, nil
	}
	pts := make([]Point, len(xs))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		next int
	)
	// claim hands out the next batch of indices.
	claim := func() (int, int) {
		mu.Lock()
		defer mu.Unlock()
		lo := next
		hi := lo + batch
		if hi > len(xs) {
			hi = len(xs)
		}
		next = hi
		return lo, hi
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				lo, hi := claim()
				if lo >= hi {
					return
				}
				for i := lo; i < hi; i++ {
					pts[i] = Point{X: xs[i], Y: f.Sample(xs[i])}
				}
			}
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// Finite returns the points whose coordinates are neither infinite nor NaN.
func Finite(pts []Point) []Point {
	r := make([]Point, 0, len(pts))
	for _, p := range pts {
		if isFinite(p.X) && isFinite(p.Y) {
			r = append(r, p)
		}
	}
	return r
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
