package curvego

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Polynomial interpolates with the Lagrange polynomial through every stored
// sample, evaluated in the barycentric form of Berrut and Trefethen
// ("Barycentric Lagrange Interpolation", SIAM Review 46(3), 2004):
//
//	p(x) = Σ_i (w_i/(x-x_i)) y_i  /  Σ_i (w_i/(x-x_i))
//
// The per-sample weights w_i = 1/Π_{j≠i}(x_i-x_j) are precomputed by Fit.
// Interpolate fails with ErrNotFitted while the weights are missing or
// stale; AddPoint invalidates them, so the sequence is always
// AddPoint → Fit → Interpolate.
type Polynomial[I any, V constraints.Float] struct {
	samples[I, V]
	weights []float64
	fitted  bool
}

// NewPolynomial builds a barycentric Lagrange interpolator from paired
// indices and values. The interpolator is unfitted; call Fit before the
// first query.
func NewPolynomial[I any, V constraints.Float](axis Axis[I], xs []I, ys []V) (*Polynomial[I, V], error) {
	s, err := newSamples(axis, xs, ys)
	if err != nil {
		return nil, err
	}

	return &Polynomial[I, V]{samples: s}, nil
}

// Fit computes one barycentric weight per sample. The pairwise deltas are
// divided by the capacity estimate (x_n-x_1)/4 so the running product stays
// in floating-point range for large sample counts, and the finished weights
// are rescaled to a largest magnitude of 1. Only weight ratios enter the
// barycentric formula, so neither scaling changes the result.
//
// Fit is idempotent: a fitted interpolator returns immediately.
func (p *Polynomial[I, V]) Fit() error {
	if p.fitted {
		return nil
	}

	n := p.Len()
	min, max := p.Range()

	capacity := p.axis.Delta(max, min) / 4
	if capacity == 0 { // single sample
		capacity = 1
	}

	weights := make([]float64, n)
	for i := range weights {
		prod := 1.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			prod *= p.axis.Delta(p.xs[i], p.xs[j]) / capacity
		}
		weights[i] = 1 / prod
	}

	floats.Scale(1/floats.Norm(weights, math.Inf(1)), weights)

	p.weights = weights
	p.fitted = true

	return nil
}

// AddPoint inserts a new sample and invalidates the precomputed weights:
// weights computed for a different sample set must never be consulted.
func (p *Polynomial[I, V]) AddPoint(x I, y V) error {
	if err := p.insert(x, y); err != nil {
		return err
	}

	p.weights = nil
	p.fitted = false

	return nil
}

// Interpolate returns the stored value for exact hits — no weights and no
// arithmetic are involved, so exact hits work even before Fit — and
// otherwise evaluates the barycentric formula over all samples.
func (p *Polynomial[I, V]) Interpolate(x I) (V, error) {
	var zero V

	if err := p.guard(x); err != nil {
		return zero, err
	}

	if i, found := p.search(x); found {
		return p.ys[i], nil
	}

	if !p.fitted {
		return zero, ErrNotFitted
	}

	var num, den float64
	for i, w := range p.weights {
		// Exact hits returned above, so the delta is never zero.
		t := w / p.axis.Delta(x, p.xs[i])
		num += t * float64(p.ys[i])
		den += t
	}

	return V(num / den), nil
}
