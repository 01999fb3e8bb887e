// Package stats provides the numeric routines backing configuration heuristics.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrTooFewObservations indicates a regression input too short to fit.
var ErrTooFewObservations = errors.New("stats: least squares requires at least two observations")

// LeastSquares fits y = slope*x + intercept by ordinary least squares.
func LeastSquares(x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, errors.New("stats: x and y must have the same length")
	}
	n := len(x)
	if n < 2 {
		return 0, 0, ErrTooFewObservations
	}

	// Design matrix with a slope column and an intercept column.
	a := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		a.Set(i, 0, x[i])
		a.Set(i, 1, 1)
	}
	b := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		b.Set(i, 0, y[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		return 0, 0, err
	}
	return beta.At(0, 0), beta.At(1, 0), nil
}
