package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/alvin-chang/neural-prophet/timeseries"
)

// SeasonalityMode selects how seasonal effects combine with the trend.
type SeasonalityMode string

const (
	// Additive seasonality is summed onto the trend.
	Additive SeasonalityMode = "additive"
	// Multiplicative seasonality scales with the trend level.
	Multiplicative SeasonalityMode = "multiplicative"
)

type seasonKind int

const (
	seasonAuto seasonKind = iota
	seasonEnabled
	seasonDisabled
	seasonCustom
	seasonResolution
)

// SeasonArg selects how a seasonal period is resolved during auto-detection.
// The zero value is SeasonAuto.
type SeasonArg struct {
	kind       seasonKind
	resolution int
}

var (
	// SeasonAuto lets the date-range heuristics decide.
	SeasonAuto = SeasonArg{kind: seasonAuto}
	// SeasonEnabled forces the period on at its default resolution.
	SeasonEnabled = SeasonArg{kind: seasonEnabled}
	// SeasonDisabled forces the period off.
	SeasonDisabled = SeasonArg{kind: seasonDisabled}
	// SeasonCustom marks a period that auto-detection must leave untouched.
	SeasonCustom = SeasonArg{kind: seasonCustom}
)

// SeasonResolution forces an explicit Fourier order.
func SeasonResolution(order int) SeasonArg {
	return SeasonArg{kind: seasonResolution, resolution: order}
}

// Season describes one seasonal period.
type Season struct {
	Resolution int     // Fourier order; 0 means disabled
	Period     float64 // period length in days
	Arg        SeasonArg
}

// SeasonalityOptions holds the raw user inputs for the seasonal configuration.
type SeasonalityOptions struct {
	Mode        SeasonalityMode // default additive
	Computation string          // default "fourier"
	Reg         float64         // seasonality regularization strength
	Yearly      SeasonArg
	Weekly      SeasonArg
	Daily       SeasonArg
}

// Seasonality is the validated seasonal configuration. Periods keeps the
// built-in and appended seasons; iterate with PeriodNames for insertion order.
type Seasonality struct {
	Mode        SeasonalityMode
	Computation string
	Reg         float64
	Periods     map[string]*Season

	order  []string
	logger *zap.SugaredLogger
}

// NewSeasonality validates the seasonal options and registers the built-in
// yearly, weekly, and daily periods.
func NewSeasonality(opts SeasonalityOptions, logger *zap.SugaredLogger) *Seasonality {
	lg := ensureLogger(logger)

	mode := opts.Mode
	if mode == "" {
		mode = Additive
	}
	computation := opts.Computation
	if computation == "" {
		computation = "fourier"
	}
	reg := opts.Reg
	if reg > 0 && computation == "fourier" {
		lg.Infof("Note: Fourier-based seasonality regularization is experimental.")
		reg = 0.01 * reg
	}

	s := &Seasonality{
		Mode:        mode,
		Computation: computation,
		Reg:         reg,
		Periods:     make(map[string]*Season),
		logger:      lg,
	}
	s.set("yearly", &Season{Resolution: 6, Period: 365.25, Arg: opts.Yearly})
	s.set("weekly", &Season{Resolution: 3, Period: 7, Arg: opts.Weekly})
	s.set("daily", &Season{Resolution: 6, Period: 1, Arg: opts.Daily})
	return s
}

func (s *Seasonality) set(name string, season *Season) {
	if _, ok := s.Periods[name]; !ok {
		s.order = append(s.order, name)
	}
	s.Periods[name] = season
}

// Append registers a named custom period.
func (s *Seasonality) Append(name string, period float64, resolution int, arg SeasonArg) {
	s.set(name, &Season{Resolution: resolution, Period: period, Arg: arg})
}

// PeriodNames returns the period names in insertion order.
func (s *Seasonality) PeriodNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// SetAutoSeasonalities resolves every period against the observed dates.
//
// Yearly stays on with at least two years of history. Weekly stays on with at
// least two weeks of history sampled finer than weekly. Daily stays on with at
// least two days of history sampled finer than daily. Periods resolved to
// resolution 0 are removed; when nothing remains the method returns nil,
// meaning no seasonality at all. Otherwise it returns the receiver.
func (s *Seasonality) SetAutoSeasonalities(dates []time.Time) *Seasonality {
	s.logger.Debugf("seasonality config received: periods=%v", s.PeriodNames())

	span := timeseries.Span(dates)
	minGap := timeseries.MinSpacing(dates)
	day := 24 * time.Hour
	autoDisable := map[string]bool{
		"yearly": span < 730*day,
		"weekly": span < 14*day || minGap >= 7*day,
		"daily":  span < 2*day || minGap >= day,
	}

	for _, name := range s.PeriodNames() {
		season := s.Periods[name]
		defaultResolution := season.Resolution
		var resolution int
		switch season.Arg.kind {
		case seasonCustom:
			continue
		case seasonAuto:
			if autoDisable[name] {
				s.logger.Infof("Disabling %s seasonality. Configure it as enabled to override this.", name)
			} else {
				resolution = defaultResolution
			}
		case seasonEnabled:
			resolution = defaultResolution
		case seasonDisabled:
			resolution = 0
		default:
			resolution = season.Arg.resolution
		}
		season.Resolution = resolution
	}

	// Drop disabled periods, preserving insertion order.
	kept := make([]string, 0, len(s.order))
	periods := make(map[string]*Season, len(s.Periods))
	for _, name := range s.order {
		if s.Periods[name].Resolution > 0 {
			kept = append(kept, name)
			periods[name] = s.Periods[name]
		}
	}
	s.order = kept
	s.Periods = periods

	if len(s.Periods) == 0 {
		s.logger.Debugf("seasonality config: none")
		return nil
	}
	s.logger.Debugf("seasonality config: periods=%v", kept)
	return s
}
