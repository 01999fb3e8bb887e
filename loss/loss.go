// Package loss provides the regression loss functions used during training.
package loss

import "math"

// Loss computes loss values and gradients over prediction batches.
type Loss interface {
	Compute(pred, target []float64) float64
	Gradient(pred, target []float64) []float64
	Name() string
}

// SmoothL1 - quadratic below Beta, linear above
type SmoothL1 struct {
	Beta      float64
	Reduction string // "mean" or "sum"
}

// NewSmoothL1 returns a smooth L1 loss with Beta 1 and mean reduction.
func NewSmoothL1() *SmoothL1 {
	return &SmoothL1{Beta: 1.0, Reduction: "mean"}
}

func (s *SmoothL1) Compute(pred, target []float64) float64 {
	sum := 0.0
	for i := range pred {
		diff := math.Abs(pred[i] - target[i])
		if diff < s.Beta {
			sum += 0.5 * diff * diff / s.Beta
		} else {
			sum += diff - 0.5*s.Beta
		}
	}
	if s.Reduction == "mean" {
		return sum / float64(len(pred))
	}
	return sum
}

func (s *SmoothL1) Gradient(pred, target []float64) []float64 {
	scale := 1.0
	if s.Reduction == "mean" {
		scale = 1.0 / float64(len(pred))
	}
	grad := make([]float64, len(pred))
	for i := range pred {
		diff := pred[i] - target[i]
		if math.Abs(diff) < s.Beta {
			grad[i] = scale * diff / s.Beta
		} else if diff > 0 {
			grad[i] = scale
		} else {
			grad[i] = -scale
		}
	}
	return grad
}

func (s *SmoothL1) Name() string { return "smoothl1" }

// L1 - Mean Absolute Error
type L1 struct {
	Reduction string
}

// NewL1 returns an absolute-error loss with mean reduction.
func NewL1() *L1 {
	return &L1{Reduction: "mean"}
}

func (l *L1) Compute(pred, target []float64) float64 {
	sum := 0.0
	for i := range pred {
		sum += math.Abs(pred[i] - target[i])
	}
	if l.Reduction == "mean" {
		return sum / float64(len(pred))
	}
	return sum
}

func (l *L1) Gradient(pred, target []float64) []float64 {
	scale := 1.0
	if l.Reduction == "mean" {
		scale = 1.0 / float64(len(pred))
	}
	grad := make([]float64, len(pred))
	for i := range pred {
		if pred[i] > target[i] {
			grad[i] = scale
		} else if pred[i] < target[i] {
			grad[i] = -scale
		}
	}
	return grad
}

func (l *L1) Name() string { return "l1" }

// L2 - Mean Squared Error
type L2 struct {
	Reduction string
}

// NewL2 returns a squared-error loss with mean reduction.
func NewL2() *L2 {
	return &L2{Reduction: "mean"}
}

func (l *L2) Compute(pred, target []float64) float64 {
	sum := 0.0
	for i := range pred {
		diff := pred[i] - target[i]
		sum += diff * diff
	}
	if l.Reduction == "mean" {
		return sum / float64(len(pred))
	}
	return sum
}

func (l *L2) Gradient(pred, target []float64) []float64 {
	scale := 2.0
	if l.Reduction == "mean" {
		scale = 2.0 / float64(len(pred))
	}
	grad := make([]float64, len(pred))
	for i := range pred {
		grad[i] = scale * (pred[i] - target[i])
	}
	return grad
}

func (l *L2) Name() string { return "mse" }
