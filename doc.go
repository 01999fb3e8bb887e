// Package neuralprophet provides the configuration layer for a NeuralProphet-style
// time-series forecasting model.
//
// The library validates and normalizes the hyperparameter groups that drive model
// construction and training: trend growth and changepoints, Fourier seasonality,
// training schedule, network architecture, and covariate regularization. Each group
// is a plain record built by a validating constructor; once the training dataset is
// known, a single finalize step per group derives the remaining settings
// (logistic-growth initialization, seasonality auto-detection, batch/epoch
// auto-scaling). The model builder and training loop consume the records as data.
//
// # Quick Start
//
// Build and finalize a trend configuration:
//
//	trend := config.NewTrend(config.TrendOptions{
//	    Growth:        config.GrowthLogistic,
//	    NChangepoints: 5,
//	    Reg:           1.0,
//	    RegThreshold:  true,
//	}, logger)
//	err := trend.InitLogisticGrowth(dataset)
//
// Resolve the training schedule from the data volume:
//
//	train, _ := config.NewTrain(config.TrainOptions{Loss: "huber"}, logger)
//	train.SetAutoBatchEpoch(dataset.Len(), nil)
//	train.ApplyTrainSpeedAll()
//
// # Packages
//
// The library is organized into the following packages:
//
//   - config: Trend, seasonality, training, architecture, and covariate records
//   - loss: Loss-function objects resolved by the training configuration
//   - stats: Least-squares and order-statistic helpers for data-driven defaults
//   - timeseries: Dataset structure exposing timestamps, time values, and targets
//
// # References
//
//   - Triebe, O., et al. (2021). NeuralProphet: Explainable Forecasting at Scale
//   - Taylor, S.J., & Letham, B. (2018). Forecasting at Scale (Prophet)
package neuralprophet
