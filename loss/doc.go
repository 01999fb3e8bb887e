// Package loss provides regression loss functions for model training.
//
// This package includes the losses a training configuration can name: smooth
// L1 (the default), absolute error, and squared error. Each loss computes both
// a scalar value and an elementwise gradient.
//
// # Choosing a Loss
//
// Construct a loss with its standard settings:
//
//	l := loss.NewSmoothL1()   // Beta 1, mean reduction
//	l = loss.NewL1()
//	l = loss.NewL2()
//
// Or set the fields directly for sum reduction or a different threshold:
//
//	l := &loss.SmoothL1{Beta: 0.5, Reduction: "sum"}
//
// # Computing Loss and Gradients
//
// All losses operate on matching prediction and target slices:
//
//	value := l.Compute(pred, target)
//	grad := l.Gradient(pred, target)
//
// With a Beta of 0 the smooth L1 loss degenerates to the absolute error loss,
// since no difference falls inside the quadratic region.
package loss
