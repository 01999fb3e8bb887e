package config

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/alvin-chang/neural-prophet/loss"
)

// TrainOptions holds the raw user inputs for the training configuration.
// Nil pointer fields mean "auto", resolved when the dataset size is known.
type TrainOptions struct {
	LearningRate *float64
	Epochs       *int
	BatchSize    *int
	Loss         any      // loss name string or a loss.Loss value
	TrainSpeed   *float64 // nil or 0 disables the speed dial
	ARSparsity   *float64
	RegDelayPct  *float64 // default 0.5

	// Passthrough regularization settings for the training loop.
	RegLambdaTrend    *float64
	TrendRegThreshold *float64
	RegLambdaSeason   *float64
}

// Train is the validated training configuration.
type Train struct {
	LearningRate *float64
	Epochs       *int
	BatchSize    *int
	Loss         loss.Loss
	TrainSpeed   *float64
	ARSparsity   *float64
	RegDelayPct  float64
	LambdaDelay  int // epoch index where regularization reaches full strength

	RegLambdaTrend    *float64
	TrendRegThreshold *float64
	RegLambdaSeason   *float64

	logger *zap.SugaredLogger
}

// NewTrain validates the training options and resolves the loss selector.
func NewTrain(opts TrainOptions, logger *zap.SugaredLogger) (*Train, error) {
	lossFn, err := resolveLoss(opts.Loss)
	if err != nil {
		return nil, err
	}

	regDelayPct := 0.5
	if opts.RegDelayPct != nil {
		regDelayPct = *opts.RegDelayPct
	}

	t := &Train{
		LearningRate:      copyFloat(opts.LearningRate),
		Epochs:            copyInt(opts.Epochs),
		BatchSize:         copyInt(opts.BatchSize),
		Loss:              lossFn,
		TrainSpeed:        copyFloat(opts.TrainSpeed),
		ARSparsity:        copyFloat(opts.ARSparsity),
		RegDelayPct:       regDelayPct,
		RegLambdaTrend:    copyFloat(opts.RegLambdaTrend),
		TrendRegThreshold: copyFloat(opts.TrendRegThreshold),
		RegLambdaSeason:   copyFloat(opts.RegLambdaSeason),
		logger:            ensureLogger(logger),
	}
	if t.Epochs != nil {
		t.LambdaDelay = int(t.RegDelayPct * float64(*t.Epochs))
	}
	return t, nil
}

func resolveLoss(value any) (loss.Loss, error) {
	switch v := value.(type) {
	case string:
		switch strings.ToLower(v) {
		case "huber", "smoothl1", "smoothl1loss":
			return loss.NewSmoothL1(), nil
		case "mae", "l1", "l1loss":
			return loss.NewL1(), nil
		case "mse", "mseloss", "l2", "l2loss":
			return loss.NewL2(), nil
		default:
			return nil, fmt.Errorf("loss function %q: %w", v, ErrUnsupportedLoss)
		}
	case loss.Loss:
		return v, nil
	default:
		return nil, fmt.Errorf("loss function %T: %w", value, ErrUnsupportedLoss)
	}
}

// BatchEpochLimits bounds the auto-derived batch size and epoch count.
type BatchEpochLimits struct {
	MinBatch int
	MaxBatch int
	MinEpoch int
	MaxEpoch int
}

// DefaultBatchEpochLimits returns the standard derivation bounds.
func DefaultBatchEpochLimits() BatchEpochLimits {
	return BatchEpochLimits{MinBatch: 1, MaxBatch: 128, MinEpoch: 5, MaxEpoch: 1000}
}

// SetAutoBatchEpoch derives the batch size and epoch count from the dataset
// size. Fields already set by the caller are left alone. A nil limits value
// uses DefaultBatchEpochLimits.
func (t *Train) SetAutoBatchEpoch(nData int, limits *BatchEpochLimits) error {
	if nData < 1 {
		return ErrInsufficientData
	}
	lim := DefaultBatchEpochLimits()
	if limits != nil {
		lim = *limits
	}
	logData := intLog10(nData)

	if t.BatchSize == nil {
		batch := 0
		if exp := 2*logData - 1; exp >= 0 {
			batch = 1 << uint(exp)
		}
		if batch < lim.MinBatch {
			batch = lim.MinBatch
		}
		if batch > lim.MaxBatch {
			batch = lim.MaxBatch
		}
		t.BatchSize = &batch
		t.logger.Infof("Auto-set batch_size to %d", batch)
	}

	if t.Epochs == nil {
		datamult := 1000.0 / float64(nData)
		epochs := int(datamult * float64(int64(1)<<uint(3+logData)))
		if epochs < lim.MinEpoch {
			epochs = lim.MinEpoch
		}
		if epochs > lim.MaxEpoch {
			epochs = lim.MaxEpoch
		}
		t.Epochs = &epochs
		t.logger.Infof("Auto-set epochs to %d", epochs)
		t.LambdaDelay = int(t.RegDelayPct * float64(epochs))
	}
	return nil
}

// intLog10 returns floor(log10(n)) for n >= 1 in integer arithmetic, so
// powers of ten never truncate low the way the float log can.
func intLog10(n int) int {
	d := 0
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// ApplyTrainSpeed rescales the selected settings by the train-speed dial:
// batch size scales by 2^speed, epochs by 2^(-speed), and the learning rate
// by 2^speed. A nil or zero speed leaves everything untouched.
func (t *Train) ApplyTrainSpeed(batch, epoch, lr bool) {
	if t.TrainSpeed == nil || *t.TrainSpeed == 0 {
		return
	}
	speed := *t.TrainSpeed

	if batch {
		if t.BatchSize == nil {
			t.logger.Debugf("train_speed-%v skipped batch_size: not set", speed)
		} else {
			size := int(float64(*t.BatchSize) * math.Pow(2, speed))
			if size < 1 {
				size = 1
			}
			*t.BatchSize = size
			direction := "in"
			if speed < 0 {
				direction = "de"
			}
			t.logger.Infof("train_speed-%v %screased batch_size to %d", speed, direction, size)
		}
	}

	if epoch {
		if t.Epochs == nil {
			t.logger.Debugf("train_speed-%v skipped epochs: not set", speed)
		} else {
			epochs := int(float64(*t.Epochs) * math.Pow(2, -speed))
			if epochs < 1 {
				epochs = 1
			}
			*t.Epochs = epochs
			direction := "in"
			if speed > 0 {
				direction = "de"
			}
			t.logger.Infof("train_speed-%v %screased epochs to %d", speed, direction, epochs)
		}
	}

	if lr {
		if t.LearningRate == nil {
			t.logger.Debugf("train_speed-%v skipped learning_rate: not set", speed)
		} else {
			*t.LearningRate = *t.LearningRate * math.Pow(2, speed)
			direction := "in"
			if speed < 0 {
				direction = "de"
			}
			t.logger.Infof("train_speed-%v %screased learning_rate to %g", speed, direction, *t.LearningRate)
		}
	}
}

// ApplyTrainSpeedAll applies the train-speed dial to batch size, epochs, and
// learning rate together.
func (t *Train) ApplyTrainSpeedAll() {
	if t.TrainSpeed != nil && *t.TrainSpeed != 0 {
		t.ApplyTrainSpeed(true, true, true)
	}
}
