package vision

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DefaultImageSize is the square input resolution the network expects.
const DefaultImageSize = 64

// DefaultClasses orders the output logits. Index 1 is the good apple.
var DefaultClasses = []string{"damaged", "good"}

// AppleNet is a small convolutional classifier: three conv/ReLU/pool
// stages followed by two fully connected layers. Feature maps are held
// as channels-by-pixels matrices so each stage is a single matrix
// multiply over the unrolled patches.
type AppleNet struct {
	ImageSize int
	Classes   []string

	conv [3]*convLayer
	pool [3]*poolLayer
	fc1  *fcLayer
	fc2  *fcLayer

	// relu masks cached for the backward pass
	convMask [3][]bool
	fc1Mask  []bool
	fc1In    []float64
}

// NewAppleNet builds a randomly initialized network.
func NewAppleNet(imageSize int, classes []string, rng *rand.Rand) *AppleNet {
	n := &AppleNet{
		ImageSize: imageSize,
		Classes:   classes,
	}
	channels := []int{3, 16, 32, 64}
	for i := 0; i < 3; i++ {
		n.conv[i] = newConvLayer(channels[i], channels[i+1], 3, rng)
		n.pool[i] = &poolLayer{}
	}
	flat := channels[3] * (imageSize / 8) * (imageSize / 8)
	n.fc1 = newFCLayer(flat, 256, rng)
	n.fc2 = newFCLayer(256, len(classes), rng)
	return n
}

// Forward runs the network on one image. The input has 3 rows (RGB)
// and ImageSize*ImageSize columns of normalized pixel values. It
// returns the raw class logits.
func (n *AppleNet) Forward(x *mat.Dense) []float64 {
	h, w := n.ImageSize, n.ImageSize
	for i := 0; i < 3; i++ {
		x = n.conv[i].forward(x, h, w)
		n.convMask[i] = reluInPlace(x)
		x, h, w = n.pool[i].forward(x, h, w)
	}
	flat := flatten(x)
	n.fc1In = flat
	hidden := n.fc1.forward(flat)
	n.fc1Mask = reluVecInPlace(hidden)
	return n.fc2.forward(hidden)
}

// Backward propagates the logit gradient through the network,
// accumulating parameter gradients in each layer.
func (n *AppleNet) Backward(dLogits []float64) {
	dHidden := n.fc2.backward(dLogits)
	maskVec(dHidden, n.fc1Mask)
	dFlat := n.fc1.backward(dHidden)

	h, w := n.ImageSize/8, n.ImageSize/8
	dx := unflatten(dFlat, n.conv[2].out, h*w)
	for i := 2; i >= 0; i-- {
		dx, h, w = n.pool[i].backward(dx, h, w)
		maskDense(dx, n.convMask[i])
		dx = n.conv[i].backward(dx, h, w)
	}
}

// Parameters returns every trainable tensor for the optimizer.
func (n *AppleNet) Parameters() []*tensor {
	var ps []*tensor
	for i := 0; i < 3; i++ {
		ps = append(ps, n.conv[i].params()...)
	}
	ps = append(ps, n.fc1.params()...)
	ps = append(ps, n.fc2.params()...)
	return ps
}

// Softmax converts logits into a probability distribution.
func Softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	out := make([]float64, len(logits))
	for i, v := range logits {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// tensor pairs a parameter buffer with its gradient accumulator.
type tensor struct {
	data []float64
	grad []float64
}

func newTensor(size int) *tensor {
	return &tensor{
		data: make([]float64, size),
		grad: make([]float64, size),
	}
}

type convLayer struct {
	in, out, k int
	weight     *tensor // out x in*k*k
	bias       *tensor

	cols     *mat.Dense
	inH, inW int
}

func newConvLayer(in, out, k int, rng *rand.Rand) *convLayer {
	l := &convLayer{in: in, out: out, k: k}
	fanIn := in * k * k
	l.weight = newTensor(out * fanIn)
	l.bias = newTensor(out)
	scale := math.Sqrt(2.0 / float64(fanIn))
	for i := range l.weight.data {
		l.weight.data[i] = rng.NormFloat64() * scale
	}
	return l
}

func (l *convLayer) params() []*tensor { return []*tensor{l.weight, l.bias} }

// forward computes a same-size 3x3 convolution with pad 1 by unrolling
// the input patches and multiplying once.
func (l *convLayer) forward(x *mat.Dense, h, w int) *mat.Dense {
	l.inH, l.inW = h, w
	l.cols = im2col(x, l.in, h, w, l.k)

	weightM := mat.NewDense(l.out, l.in*l.k*l.k, l.weight.data)
	out := mat.NewDense(l.out, h*w, nil)
	out.Mul(weightM, l.cols)
	for c := 0; c < l.out; c++ {
		row := out.RawRowView(c)
		b := l.bias.data[c]
		for i := range row {
			row[i] += b
		}
	}
	return out
}

func (l *convLayer) backward(dOut *mat.Dense, h, w int) *mat.Dense {
	// dW = dOut * cols^T, accumulated into the gradient buffer.
	dW := mat.NewDense(l.out, l.in*l.k*l.k, nil)
	dW.Mul(dOut, l.cols.T())
	raw := dW.RawMatrix().Data
	for i := range raw {
		l.weight.grad[i] += raw[i]
	}
	for c := 0; c < l.out; c++ {
		row := dOut.RawRowView(c)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		l.bias.grad[c] += sum
	}

	weightM := mat.NewDense(l.out, l.in*l.k*l.k, l.weight.data)
	dCols := mat.NewDense(l.in*l.k*l.k, h*w, nil)
	dCols.Mul(weightM.T(), dOut)
	return col2im(dCols, l.in, l.inH, l.inW, l.k)
}

type poolLayer struct {
	argmax []int
	inCols int
}

// forward is a 2x2 max pool with stride 2, remembering where each
// maximum came from.
func (p *poolLayer) forward(x *mat.Dense, h, w int) (*mat.Dense, int, int) {
	channels, _ := x.Dims()
	oh, ow := h/2, w/2
	p.inCols = h * w
	p.argmax = make([]int, channels*oh*ow)
	out := mat.NewDense(channels, oh*ow, nil)

	for c := 0; c < channels; c++ {
		src := x.RawRowView(c)
		dst := out.RawRowView(c)
		for y := 0; y < oh; y++ {
			for xo := 0; xo < ow; xo++ {
				best := math.Inf(-1)
				bestIdx := 0
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 2; dx++ {
						idx := (y*2+dy)*w + xo*2 + dx
						if src[idx] > best {
							best = src[idx]
							bestIdx = idx
						}
					}
				}
				dst[y*ow+xo] = best
				p.argmax[c*oh*ow+y*ow+xo] = bestIdx
			}
		}
	}
	return out, oh, ow
}

func (p *poolLayer) backward(dOut *mat.Dense, oh, ow int) (*mat.Dense, int, int) {
	channels, _ := dOut.Dims()
	dIn := mat.NewDense(channels, p.inCols, nil)
	for c := 0; c < channels; c++ {
		src := dOut.RawRowView(c)
		dst := dIn.RawRowView(c)
		for i := 0; i < oh*ow; i++ {
			dst[p.argmax[c*oh*ow+i]] += src[i]
		}
	}
	return dIn, oh * 2, ow * 2
}

type fcLayer struct {
	in, out int
	weight  *tensor // out x in
	bias    *tensor
	lastIn  []float64
}

func newFCLayer(in, out int, rng *rand.Rand) *fcLayer {
	l := &fcLayer{in: in, out: out}
	l.weight = newTensor(out * in)
	l.bias = newTensor(out)
	scale := math.Sqrt(2.0 / float64(in))
	for i := range l.weight.data {
		l.weight.data[i] = rng.NormFloat64() * scale
	}
	return l
}

func (l *fcLayer) params() []*tensor { return []*tensor{l.weight, l.bias} }

func (l *fcLayer) forward(x []float64) []float64 {
	l.lastIn = x
	weightM := mat.NewDense(l.out, l.in, l.weight.data)
	out := mat.NewVecDense(l.out, nil)
	out.MulVec(weightM, mat.NewVecDense(l.in, x))
	res := make([]float64, l.out)
	copy(res, out.RawVector().Data)
	for i := range res {
		res[i] += l.bias.data[i]
	}
	return res
}

func (l *fcLayer) backward(dOut []float64) []float64 {
	for o := 0; o < l.out; o++ {
		g := dOut[o]
		l.bias.grad[o] += g
		row := l.weight.grad[o*l.in : (o+1)*l.in]
		for i, v := range l.lastIn {
			row[i] += g * v
		}
	}
	dIn := make([]float64, l.in)
	for o := 0; o < l.out; o++ {
		g := dOut[o]
		row := l.weight.data[o*l.in : (o+1)*l.in]
		for i, w := range row {
			dIn[i] += g * w
		}
	}
	return dIn
}

// im2col unrolls k x k patches (pad (k-1)/2, stride 1) into columns.
func im2col(x *mat.Dense, channels, h, w, k int) *mat.Dense {
	pad := (k - 1) / 2
	cols := mat.NewDense(channels*k*k, h*w, nil)
	for c := 0; c < channels; c++ {
		src := x.RawRowView(c)
		for dy := 0; dy < k; dy++ {
			for dx := 0; dx < k; dx++ {
				row := cols.RawRowView(c*k*k + dy*k + dx)
				for y := 0; y < h; y++ {
					sy := y + dy - pad
					if sy < 0 || sy >= h {
						continue
					}
					for xo := 0; xo < w; xo++ {
						sx := xo + dx - pad
						if sx < 0 || sx >= w {
							continue
						}
						row[y*w+xo] = src[sy*w+sx]
					}
				}
			}
		}
	}
	return cols
}

// col2im scatters patch-gradient columns back onto the input grid.
func col2im(dCols *mat.Dense, channels, h, w, k int) *mat.Dense {
	pad := (k - 1) / 2
	dx := mat.NewDense(channels, h*w, nil)
	for c := 0; c < channels; c++ {
		dst := dx.RawRowView(c)
		for dy := 0; dy < k; dy++ {
			for dxo := 0; dxo < k; dxo++ {
				row := dCols.RawRowView(c*k*k + dy*k + dxo)
				for y := 0; y < h; y++ {
					sy := y + dy - pad
					if sy < 0 || sy >= h {
						continue
					}
					for xo := 0; xo < w; xo++ {
						sx := xo + dxo - pad
						if sx < 0 || sx >= w {
							continue
						}
						dst[sy*w+sx] += row[y*w+xo]
					}
				}
			}
		}
	}
	return dx
}

func reluInPlace(x *mat.Dense) []bool {
	raw := x.RawMatrix().Data
	mask := make([]bool, len(raw))
	for i, v := range raw {
		if v > 0 {
			mask[i] = true
		} else {
			raw[i] = 0
		}
	}
	return mask
}

func reluVecInPlace(x []float64) []bool {
	mask := make([]bool, len(x))
	for i, v := range x {
		if v > 0 {
			mask[i] = true
		} else {
			x[i] = 0
		}
	}
	return mask
}

func maskDense(x *mat.Dense, mask []bool) {
	raw := x.RawMatrix().Data
	for i := range raw {
		if !mask[i] {
			raw[i] = 0
		}
	}
}

func maskVec(x []float64, mask []bool) {
	for i := range x {
		if !mask[i] {
			x[i] = 0
		}
	}
}

func flatten(x *mat.Dense) []float64 {
	raw := x.RawMatrix().Data
	out := make([]float64, len(raw))
	copy(out, raw)
	return out
}

func unflatten(v []float64, rows, cols int) *mat.Dense {
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewDense(rows, cols, data)
}
