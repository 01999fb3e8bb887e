package config

import "errors"

var (
	// ErrUnsupportedLoss indicates a loss selector that names no known loss.
	ErrUnsupportedLoss = errors.New("config: loss function not defined")

	// ErrInvalidRegularization indicates a negative regularization weight.
	ErrInvalidRegularization = errors.New("config: regularization must be >= 0")

	// ErrNotLogistic indicates logistic initialization on a non-logistic trend.
	ErrNotLogistic = errors.New("config: initialization requires logistic growth")

	// ErrInsufficientData indicates an empty dataset where observations are required.
	ErrInsufficientData = errors.New("config: at least one observation is required")
)
