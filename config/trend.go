package config

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/alvin-chang/neural-prophet/stats"
	"github.com/alvin-chang/neural-prophet/timeseries"
)

// TrendOptions holds the raw user inputs for the trend configuration.
type TrendOptions struct {
	Growth            any         // Growth constant, mode string, or legacy bool
	Changepoints      []time.Time // nil lets the model place changepoints itself
	NChangepoints     int         // number of auto-placed changepoints
	ChangepointsRange float64     // fraction of history in which to place them
	Reg               float64     // trend regularization strength
	RegThreshold      any         // bool (derive or none) or a numeric threshold
	CapUser           bool        // caller supplies an explicit cap
	FloorUser         bool        // caller supplies an explicit floor
}

// Trend is the validated trend configuration.
type Trend struct {
	Growth            Growth
	Changepoints      []time.Time // sorted; nil when auto-placed
	NChangepoints     int
	ChangepointsRange float64
	Reg               float64
	RegThreshold      *float64 // nil means no threshold
	CapUser           bool
	FloorUser         bool

	// Logistic growth only. Cap and Floor hold placeholder bounds until
	// InitLogisticGrowth overwrites them from training data.
	Tau               float64 // trend delta initialization decay scale
	FloorInitQuantile float64
	CapInitQuantile   float64
	InitialSlope      float64
	Cap               float64
	Floor             float64

	logger *zap.SugaredLogger
}

// NewTrend validates and normalizes the trend options. Invalid inputs are
// corrected with a log entry rather than rejected.
func NewTrend(opts TrendOptions, logger *zap.SugaredLogger) *Trend {
	lg := ensureLogger(logger)
	t := &Trend{
		Growth:            parseGrowth(opts.Growth, lg),
		NChangepoints:     opts.NChangepoints,
		ChangepointsRange: opts.ChangepointsRange,
		Reg:               opts.Reg,
		CapUser:           opts.CapUser,
		FloorUser:         opts.FloorUser,
		logger:            lg,
	}

	changepoints := opts.Changepoints
	switch t.Growth {
	case GrowthOff:
		changepoints = nil
		t.NChangepoints = 0
	case GrowthLogistic:
		t.Tau = 0.1
		t.FloorInitQuantile = 0.1
		t.CapInitQuantile = 0.9
		t.InitialSlope = 0
		t.Cap = 0.5
		t.Floor = -0.5
	}

	if changepoints != nil {
		sorted := make([]time.Time, len(changepoints))
		copy(sorted, changepoints)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
		t.Changepoints = sorted
		t.NChangepoints = len(sorted)
	}

	// Threshold derivation reads Reg before the scaling below touches it.
	t.RegThreshold = t.deriveRegThreshold(opts.RegThreshold)
	t.applyReg()
	return t
}

func (t *Trend) deriveRegThreshold(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		threshold := 3.0 / (3.0 + (1.0+t.Reg)*math.Sqrt(float64(t.NChangepoints)))
		t.logger.Debugf("Trend reg threshold automatically set to: %g", threshold)
		return &threshold
	case float64:
		return t.numericThreshold(v)
	case int:
		return t.numericThreshold(float64(v))
	default:
		t.logger.Warnf("Invalid trend reg threshold '%v' set to none.", value)
		return nil
	}
}

func (t *Trend) numericThreshold(v float64) *float64 {
	if v < 0 {
		t.logger.Warnf("Negative trend reg threshold set to zero.")
		return nil
	}
	if v == 0 {
		return nil
	}
	return &v
}

func (t *Trend) applyReg() {
	if t.Reg < 0 {
		t.logger.Warnf("Negative trend reg lambda set to zero.")
		t.Reg = 0
	}
	if t.Reg > 0 {
		if t.NChangepoints > 0 {
			t.logger.Infof("Note: Trend changepoint regularization is experimental.")
			t.Reg = 0.001 * t.Reg
		} else {
			t.logger.Infof("Trend reg lambda ignored due to no changepoints.")
			t.Reg = 0
			if t.RegThreshold != nil && *t.RegThreshold > 0 {
				t.logger.Infof("Trend reg threshold ignored due to no changepoints.")
			}
		}
	} else if t.RegThreshold != nil && *t.RegThreshold > 0 {
		t.logger.Infof("Trend reg threshold ignored due to reg lambda <= 0.")
	}
}

// InitLogisticGrowth seeds the logistic growth rate, cap, and floor from the
// training dataset. The fitted slope only sets the initial sign and magnitude
// of the logistic rate; it is not the final trend.
func (t *Trend) InitLogisticGrowth(ds *timeseries.Dataset) error {
	if t.Growth != GrowthLogistic {
		return ErrNotLogistic
	}

	slope, _, err := stats.LeastSquares(ds.Time, ds.Targets)
	if err != nil {
		return fmt.Errorf("initialize logistic growth: %w", err)
	}
	t.InitialSlope = slope

	n := ds.Len()
	if !t.CapUser {
		k := int(float64(n) * t.CapInitQuantile)
		upper, err := stats.KthValue(ds.Targets, k)
		if err != nil {
			return fmt.Errorf("cap quantile: %w", err)
		}
		t.Cap = upper
	}

	// TODO: decide whether this guard should check FloorUser instead.
	if !t.CapUser {
		k := int(float64(n) * t.FloorInitQuantile)
		floor, err := stats.KthValue(ds.Targets, k)
		if err != nil {
			return fmt.Errorf("floor quantile: %w", err)
		}
		t.Floor = floor
	}
	return nil
}
