package config

import "go.uber.org/zap"

// Growth selects the trend model shape.
type Growth string

const (
	// GrowthOff disables the trend entirely.
	GrowthOff Growth = "off"
	// GrowthLinear fits a piecewise linear trend.
	GrowthLinear Growth = "linear"
	// GrowthDiscontinuous allows the trend to jump at changepoints.
	GrowthDiscontinuous Growth = "discontinuous"
	// GrowthLogistic fits a saturating trend between a floor and a cap.
	GrowthLogistic Growth = "logistic"
)

func validGrowth(g Growth) bool {
	switch g {
	case GrowthOff, GrowthLinear, GrowthDiscontinuous, GrowthLogistic:
		return true
	}
	return false
}

// parseGrowth resolves a growth input, accepting the Growth constants, their
// string names, and the legacy boolean flag (true is linear, false is off).
// An unset input defaults to linear; anything unrecognized falls back to
// linear with an error log.
func parseGrowth(value any, lg *zap.SugaredLogger) Growth {
	switch v := value.(type) {
	case nil:
		return GrowthLinear
	case Growth:
		if validGrowth(v) {
			return v
		}
	case string:
		if validGrowth(Growth(v)) {
			return Growth(v)
		}
	case bool:
		g := GrowthOff
		if v {
			g = GrowthLinear
		}
		lg.Infof("Trend growth set to '%s'", g)
		return g
	}
	lg.Errorf("Invalid trend growth '%v'. Default to 'linear'", value)
	return GrowthLinear
}
