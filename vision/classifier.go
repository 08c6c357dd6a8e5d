package vision

import (
	"fmt"
	"image"
	"sync"

	"github.com/charmbracelet/log"
)

// Classifier runs checkpoint inference on a background goroutine.
// Snapshots are dropped when the queue is full so a slow model can
// never stall a frame.
type Classifier struct {
	net   *AppleNet
	queue chan snapshot

	mu         sync.Mutex
	lastLabel  string
	lastScore  float64
	hasVerdict bool

	closeOnce sync.Once
	done      chan struct{}
}

type snapshot struct {
	img   image.Image
	truth string
}

// LoadClassifier restores the checkpoint at path and starts the
// inference worker. A missing checkpoint is a hard error; the caller
// decides how loudly to fail.
func LoadClassifier(path string, queueSize int) (*Classifier, error) {
	ck, err := LoadCheckpoint(path)
	if err != nil {
		return nil, fmt.Errorf("load model checkpoint %q: %w", path, err)
	}
	net, err := ck.Restore()
	if err != nil {
		return nil, fmt.Errorf("restore model from %q: %w", path, err)
	}
	log.Info("apple classifier ready",
		"checkpoint", path,
		"imageSize", net.ImageSize,
		"valAccuracy", fmt.Sprintf("%.3f", ck.ValAccuracy))

	c := &Classifier{
		net:   net,
		queue: make(chan snapshot, queueSize),
		done:  make(chan struct{}),
	}
	go c.worker()
	return c, nil
}

// Submit enqueues a snapshot for classification, dropping it when the
// queue is full.
func (c *Classifier) Submit(img image.Image, truth string) {
	select {
	case c.queue <- snapshot{img: img, truth: truth}:
	default:
		log.Debug("classifier queue full, dropping snapshot")
	}
}

// Last returns the most recent verdict.
func (c *Classifier) Last() (string, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLabel, c.lastScore, c.hasVerdict
}

// Close stops the worker. Pending snapshots are discarded.
func (c *Classifier) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Classifier) worker() {
	for {
		select {
		case <-c.done:
			return
		case snap := <-c.queue:
			c.classify(snap)
		}
	}
}

// Classify runs one synchronous inference pass. Only the worker
// goroutine may call it concurrently with itself.
func (c *Classifier) Classify(img image.Image) (label string, confidence float64, probs []float64) {
	input := ImageToInput(img, c.net.ImageSize)
	probs = Softmax(c.net.Forward(input))
	best := argmax(probs)
	return c.net.Classes[best], probs[best], probs
}

func (c *Classifier) classify(snap snapshot) {
	label, confidence, _ := c.Classify(snap.img)

	c.mu.Lock()
	c.lastLabel = label
	c.lastScore = confidence
	c.hasVerdict = true
	c.mu.Unlock()

	log.Debug("apple classified",
		"predicted", label,
		"confidence", fmt.Sprintf("%.2f", confidence),
		"actual", snap.truth)
}
