// Package main walks through building every forecasting configuration record
// and deriving the data-dependent settings from a synthetic dataset.
package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alvin-chang/neural-prophet/config"
	"github.com/alvin-chang/neural-prophet/timeseries"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("NeuralProphet Configuration Demonstration")
	fmt.Println(strings.Repeat("=", 80))

	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("logger setup failed: %v\n", err)
		return
	}
	defer zl.Sync()
	logger := zl.Sugar()

	dataset := buildDataset()
	fmt.Printf("\nSynthetic dataset: %d daily observations (%.2f to %.2f)\n",
		dataset.Len(), dataset.Min(), dataset.Max())

	demoTrend(dataset, logger)
	demoSeasonality(dataset, logger)
	demoTrain(dataset, logger)
	demoCovariates()

	model := config.Model{NumHiddenLayers: 2, DHidden: 16}
	section("Architecture")
	fmt.Printf("   hidden layers: %d, hidden size: %d\n", model.NumHiddenLayers, model.DHidden)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}

// buildDataset creates two years of daily data following a saturating ramp
// with a yearly swing, so both the logistic bounds and the seasonality
// heuristics have something to find.
func buildDataset() *timeseries.Dataset {
	const n = 731
	first := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	timestamps := make([]time.Time, n)
	targets := make([]float64, n)
	for i := 0; i < n; i++ {
		timestamps[i] = first.AddDate(0, 0, i)
		day := float64(i)
		ramp := 10.0 / (1.0 + math.Exp(-0.01*(day-365)))
		swing := 2.0 * math.Sin(2*math.Pi*day/365.25)
		targets[i] = ramp + swing
	}

	dataset, err := timeseries.NewDataset(timestamps, targets)
	if err != nil {
		panic(err)
	}
	dataset.Name = "synthetic ramp"
	return dataset
}

func demoTrend(dataset *timeseries.Dataset, logger *zap.SugaredLogger) {
	section("Trend")

	changepoints, err := timeseries.ParseTimestamps(
		[]string{"2023-07-01", "2024-01-01", "2024-07-01"}, "")
	if err != nil {
		fmt.Printf("   changepoint parsing failed: %v\n", err)
		return
	}

	trend := config.NewTrend(config.TrendOptions{
		Growth:       config.GrowthLogistic,
		Changepoints: changepoints,
		Reg:          0.5,
		RegThreshold: true,
	}, logger)

	fmt.Printf("   growth: %s, changepoints: %d\n", trend.Growth, trend.NChangepoints)
	if trend.RegThreshold != nil {
		fmt.Printf("   derived reg threshold: %.4f\n", *trend.RegThreshold)
	}
	fmt.Printf("   placeholder cap/floor: %.2f / %.2f\n", trend.Cap, trend.Floor)

	if err := trend.InitLogisticGrowth(dataset); err != nil {
		fmt.Printf("   logistic init failed: %v\n", err)
		return
	}
	fmt.Printf("   initialized slope: %.4f\n", trend.InitialSlope)
	fmt.Printf("   initialized cap/floor: %.2f / %.2f\n", trend.Cap, trend.Floor)
}

func demoSeasonality(dataset *timeseries.Dataset, logger *zap.SugaredLogger) {
	section("Seasonality")

	seasonality := config.NewSeasonality(config.SeasonalityOptions{
		Reg: 1.5,
	}, logger)
	seasonality.Append("monthly", 30.5, 5, config.SeasonCustom)

	fmt.Printf("   periods before auto-detection: %v\n", seasonality.PeriodNames())

	resolved := seasonality.SetAutoSeasonalities(dataset.Timestamps)
	if resolved == nil {
		fmt.Println("   no seasonality detected")
		return
	}
	for _, name := range resolved.PeriodNames() {
		season := resolved.Periods[name]
		fmt.Printf("   %-8s resolution %d, period %.2f days\n", name, season.Resolution, season.Period)
	}
}

func demoTrain(dataset *timeseries.Dataset, logger *zap.SugaredLogger) {
	section("Training")

	speed := 1.0
	rate := 0.1
	train, err := config.NewTrain(config.TrainOptions{
		LearningRate: &rate,
		Loss:         "huber",
		TrainSpeed:   &speed,
	}, logger)
	if err != nil {
		fmt.Printf("   training config failed: %v\n", err)
		return
	}
	fmt.Printf("   loss: %s\n", train.Loss.Name())

	if err := train.SetAutoBatchEpoch(dataset.Len(), nil); err != nil {
		fmt.Printf("   auto batch/epoch failed: %v\n", err)
		return
	}
	fmt.Printf("   auto-derived: batch %d, epochs %d, lambda delay %d\n",
		*train.BatchSize, *train.Epochs, train.LambdaDelay)

	train.ApplyTrainSpeedAll()
	fmt.Printf("   after train_speed %.0f: batch %d, epochs %d, learning rate %.3f\n",
		speed, *train.BatchSize, *train.Epochs, *train.LearningRate)
}

func demoCovariates() {
	section("Covariates")

	reg := 0.2
	covariate, err := config.NewCovariate(&reg, true, "minmax")
	if err != nil {
		fmt.Printf("   covariate config failed: %v\n", err)
		return
	}
	fmt.Printf("   accepted: reg %.2f, scalar %v, normalize %v\n",
		*covariate.Reg, covariate.AsScalar, covariate.Normalize)

	bad := -0.1
	if _, err := config.NewCovariate(&bad, false, true); err != nil {
		fmt.Printf("   rejected reg %.2f: %v\n", bad, err)
	}
}
