package vision

import (
	"encoding/gob"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

func zeroRand() *rand.Rand { return rand.New(rand.NewSource(0)) }

// Checkpoint is the serialized form of a trained AppleNet.
type Checkpoint struct {
	Classes     []string
	ImageSize   int
	ValAccuracy float64
	Tensors     [][]float64
}

// NewCheckpoint snapshots the network's parameters.
func NewCheckpoint(n *AppleNet, valAccuracy float64) *Checkpoint {
	ck := &Checkpoint{
		Classes:     append([]string(nil), n.Classes...),
		ImageSize:   n.ImageSize,
		ValAccuracy: valAccuracy,
	}
	for _, p := range n.Parameters() {
		buf := make([]float64, len(p.data))
		copy(buf, p.data)
		ck.Tensors = append(ck.Tensors, buf)
	}
	return ck
}

// Restore builds a network from the checkpoint.
func (ck *Checkpoint) Restore() (*AppleNet, error) {
	if len(ck.Classes) == 0 || ck.ImageSize <= 0 || ck.ImageSize%8 != 0 {
		return nil, fmt.Errorf("checkpoint metadata invalid (classes=%d imageSize=%d)", len(ck.Classes), ck.ImageSize)
	}
	n := NewAppleNet(ck.ImageSize, ck.Classes, zeroRand())
	params := n.Parameters()
	if len(params) != len(ck.Tensors) {
		return nil, fmt.Errorf("checkpoint has %d tensors, network expects %d", len(ck.Tensors), len(params))
	}
	for i, p := range params {
		if len(p.data) != len(ck.Tensors[i]) {
			return nil, fmt.Errorf("tensor %d has %d values, expected %d", i, len(ck.Tensors[i]), len(p.data))
		}
		copy(p.data, ck.Tensors[i])
	}
	return n, nil
}

// Save writes the checkpoint to path, creating parent directories.
func (ck *Checkpoint) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create checkpoint: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(ck); err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint from disk.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ck Checkpoint
	if err := gob.NewDecoder(f).Decode(&ck); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}
	return &ck, nil
}
