package vision

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"
)

const testImageSize = 16

func TestSoftmaxIsDistribution(t *testing.T) {
	cases := [][]float64{
		{0, 0},
		{3.2, -1.7},
		{-40, 40},
		{1000, 1001}, // must not overflow
	}
	for _, logits := range cases {
		probs := Softmax(logits)
		sum := 0.0
		for _, p := range probs {
			if p < 0 || p > 1 || math.IsNaN(p) {
				t.Fatalf("softmax(%v) produced invalid probability %v", logits, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("softmax(%v) sums to %v", logits, sum)
		}
	}
}

func TestForwardIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	net := NewAppleNet(testImageSize, DefaultClasses, rng)
	sample := SynthDataset(1, testImageSize, rand.New(rand.NewSource(4)))[0]

	a := net.Forward(sample.Pixels)
	b := net.Forward(sample.Pixels)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("logit %d changed between identical passes: %v vs %v", i, a[i], b[i])
		}
	}
	if len(a) != len(DefaultClasses) {
		t.Errorf("expected %d logits, got %d", len(DefaultClasses), len(a))
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	net := NewAppleNet(testImageSize, DefaultClasses, rng)
	sample := SynthDataset(1, testImageSize, rand.New(rand.NewSource(6)))[0]
	want := net.Forward(sample.Pixels)

	path := filepath.Join(t.TempDir(), "models", "apple.gob")
	if err := NewCheckpoint(net, 0.9).Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	ck, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ck.ValAccuracy != 0.9 {
		t.Errorf("valAccuracy=%v want 0.9", ck.ValAccuracy)
	}
	restored, err := ck.Restore()
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	got := restored.Forward(sample.Pixels)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("logit %d drifted through the checkpoint: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	if _, err := LoadCheckpoint(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("missing checkpoint must be an error")
	}
}

func TestTrainingLossDecreases(t *testing.T) {
	tc := TrainConfig{
		Samples:   60,
		Epochs:    3,
		LearnRate: 1e-3,
		ImageSize: testImageSize,
		Seed:      11,
	}

	var stats []EpochStats
	ck, err := Train(tc, func(st EpochStats) { stats = append(stats, st) })
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if len(stats) != tc.Epochs {
		t.Fatalf("expected %d epoch reports, got %d", tc.Epochs, len(stats))
	}

	first, last := stats[0].TrainLoss, stats[len(stats)-1].TrainLoss
	if !(last < first) {
		t.Errorf("loss should decrease: first=%v last=%v", first, last)
	}
	if ck.ValAccuracy < 0.5 {
		t.Errorf("trained accuracy %v below chance", ck.ValAccuracy)
	}
	if ck.ImageSize != testImageSize {
		t.Errorf("checkpoint imageSize=%d want %d", ck.ImageSize, testImageSize)
	}
}

func TestSynthDatasetShape(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := SynthDataset(40, testImageSize, rng)
	if len(data) != 40 {
		t.Fatalf("expected 40 samples, got %d", len(data))
	}

	perLabel := map[int]int{}
	for _, s := range data {
		perLabel[s.Label]++
		r, c := s.Pixels.Dims()
		if r != 3 || c != testImageSize*testImageSize {
			t.Fatalf("sample dims %dx%d want 3x%d", r, c, testImageSize*testImageSize)
		}
		raw := s.Pixels.RawMatrix().Data
		for _, v := range raw {
			if v < -1 || v > 1 {
				t.Fatalf("pixel %v outside [-1,1]", v)
			}
		}
	}
	if perLabel[0] != 20 || perLabel[1] != 20 {
		t.Errorf("labels should split evenly, got %v", perLabel)
	}
}
