package vision

import (
	"math"
	"math/rand"
)

// TrainConfig bundles the trainer's knobs.
type TrainConfig struct {
	Samples   int
	Epochs    int
	LearnRate float64
	ImageSize int
	Seed      int64
}

// DefaultTrainConfig mirrors the settings the shipped checkpoint was
// produced with.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Samples:   800,
		Epochs:    8,
		LearnRate: 1e-3,
		ImageSize: DefaultImageSize,
		Seed:      1,
	}
}

// EpochStats reports one epoch of training progress.
type EpochStats struct {
	Epoch       int
	TrainLoss   float64
	ValAccuracy float64
}

// Train fits a fresh network on synthetic apples and returns the
// resulting checkpoint. progress, when non-nil, is called after each
// epoch.
func Train(tc TrainConfig, progress func(EpochStats)) (*Checkpoint, error) {
	rng := rand.New(rand.NewSource(tc.Seed))
	net := NewAppleNet(tc.ImageSize, DefaultClasses, rng)
	opt := newAdam(net.Parameters(), tc.LearnRate)

	data := SynthDataset(tc.Samples, tc.ImageSize, rng)
	split := len(data) * 8 / 10
	train, val := data[:split], data[split:]

	order := make([]int, len(train))
	for i := range order {
		order[i] = i
	}

	var valAcc float64
	for epoch := 1; epoch <= tc.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		totalLoss := 0.0
		for _, idx := range order {
			s := train[idx]
			logits := net.Forward(s.Pixels)
			probs := Softmax(logits)
			totalLoss += -math.Log(math.Max(probs[s.Label], 1e-12))

			dLogits := make([]float64, len(probs))
			copy(dLogits, probs)
			dLogits[s.Label] -= 1
			net.Backward(dLogits)
			opt.step()
		}

		valAcc = Evaluate(net, val)
		if progress != nil {
			progress(EpochStats{
				Epoch:       epoch,
				TrainLoss:   totalLoss / float64(len(train)),
				ValAccuracy: valAcc,
			})
		}
	}

	return NewCheckpoint(net, valAcc), nil
}

// Evaluate returns the fraction of samples the network labels correctly.
func Evaluate(net *AppleNet, samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	correct := 0
	for _, s := range samples {
		logits := net.Forward(s.Pixels)
		if argmax(logits) == s.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples))
}

func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// adam is the optimizer state for one set of parameters.
type adam struct {
	params []*tensor
	m, v   [][]float64
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int
}

func newAdam(params []*tensor, lr float64) *adam {
	a := &adam{
		params: params,
		lr:     lr,
		beta1:  0.9,
		beta2:  0.999,
		eps:    1e-8,
	}
	for _, p := range params {
		a.m = append(a.m, make([]float64, len(p.data)))
		a.v = append(a.v, make([]float64, len(p.data)))
	}
	return a
}

// step applies one Adam update and clears the gradients.
func (a *adam) step() {
	a.t++
	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))
	for pi, p := range a.params {
		m, v := a.m[pi], a.v[pi]
		for i, g := range p.grad {
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			mHat := m[i] / bc1
			vHat := v[i] / bc2
			p.data[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
			p.grad[i] = 0
		}
	}
}
