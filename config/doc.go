// Package config provides the validated configuration records for a
// forecasting model: trend, seasonality, training, architecture, and
// covariates.
//
// Each record is built in two phases. The constructor validates and
// normalizes the raw user inputs, deriving whatever depends only on them.
// The finalize methods run once the training dataset is known and fill in
// the data-dependent settings.
//
// # Trend
//
// Build a trend configuration, then initialize logistic growth from data:
//
//	trend := config.NewTrend(config.TrendOptions{
//	    Growth:       config.GrowthLogistic,
//	    NChangepoints: 10,
//	    Reg:          0.5,
//	    RegThreshold: true, // derive the threshold
//	}, logger)
//
//	err := trend.InitLogisticGrowth(dataset)
//
// Growth accepts the Growth constants, their string names, and the legacy
// boolean flag. With RegThreshold set to true the threshold becomes
// 3 / (3 + (1+reg)*sqrt(n_changepoints)).
//
// # Seasonality
//
// Build the seasonal configuration and let the calendar heuristics resolve
// the built-in periods:
//
//	seasonality := config.NewSeasonality(config.SeasonalityOptions{
//	    Yearly: config.SeasonAuto,
//	    Weekly: config.SeasonAuto,
//	    Daily:  config.SeasonDisabled,
//	}, logger)
//
//	seasonality = seasonality.SetAutoSeasonalities(dataset.Timestamps)
//	if seasonality == nil {
//	    // no seasonal component at all
//	}
//
// # Training
//
// Build the training configuration, derive batch size and epochs from the
// dataset size, and apply the train-speed dial:
//
//	train, err := config.NewTrain(config.TrainOptions{
//	    Loss:       "smoothl1",
//	    TrainSpeed: &speed,
//	}, logger)
//
//	err = train.SetAutoBatchEpoch(dataset.Len(), nil)
//	train.ApplyTrainSpeedAll()
//
// Nil LearningRate, Epochs, and BatchSize mean "auto". SetAutoBatchEpoch
// fills batch size and epochs from the data volume; the learning rate is
// resolved by the training loop.
//
// # Covariates
//
// Validate one configuration per external regressor:
//
//	covariate, err := config.NewCovariate(&reg, true, "minmax")
//
// # Logging
//
// Every constructor takes a *zap.SugaredLogger. Corrections (an invalid
// growth mode, a negative regularization weight) are logged and repaired
// rather than returned as errors; hard misconfigurations (an unknown loss
// name, a negative covariate weight) are returned as sentinel errors. Pass
// nil to keep the package silent.
package config
