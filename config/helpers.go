package config

import "go.uber.org/zap"

// ensureLogger substitutes a no-op logger so library use stays quiet by default.
func ensureLogger(lg *zap.SugaredLogger) *zap.SugaredLogger {
	if lg == nil {
		return zap.NewNop().Sugar()
	}
	return lg
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
