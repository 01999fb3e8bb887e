// Package stats provides statistical routines used by the configuration layer.
//
// This package includes least-squares fitting for trend slope estimation and
// order statistics for quantile-based capacity bounds.
//
// # Least Squares
//
// Fit a straight line through observed data:
//
//	slope, intercept, err := stats.LeastSquares(x, y)
//	if err != nil {
//	    // fewer than two observations, or a rank-deficient fit
//	}
//
// LeastSquares solves the overdetermined system through a QR factorization,
// so collinear inputs surface as an error rather than an arbitrary solution.
//
// # Order Statistics
//
// Select the kth smallest element, counting from 1:
//
//	lower, err := stats.KthValue(values, k)   // k=1 is the minimum
//	upper, err := stats.KthValue(values, len(values))
//
// KthValue copies its input before sorting, so callers can pass live dataset
// columns without defensive copies.
package stats
