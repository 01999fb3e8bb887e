package config

// Covariate is the validated configuration for one external regressor.
type Covariate struct {
	Reg       *float64
	AsScalar  bool
	Normalize any // bool or a named normalization mode, recorded verbatim
}

// NewCovariate validates a covariate configuration. A negative regularization
// weight is rejected.
func NewCovariate(reg *float64, asScalar bool, normalize any) (*Covariate, error) {
	if reg != nil && *reg < 0 {
		return nil, ErrInvalidRegularization
	}
	return &Covariate{
		Reg:       copyFloat(reg),
		AsScalar:  asScalar,
		Normalize: normalize,
	}, nil
}
