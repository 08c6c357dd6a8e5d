package vision

import (
	"image"
	"math/rand"

	"github.com/harvestgames/orchard/assets"
	"github.com/harvestgames/orchard/components"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// Sample is one training example: a normalized image and its class.
type Sample struct {
	Pixels *mat.Dense // 3 x ImageSize*ImageSize
	Label  int        // index into the class list
}

// SynthDataset renders n labeled apples with the game's own procedural
// art, split roughly evenly between the two classes.
func SynthDataset(n, imageSize int, rng *rand.Rand) []Sample {
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		quality := components.QualityGood
		label := 1
		if i%2 == 0 {
			quality = components.QualityDamaged
			label = 0
		}
		art := assets.AppleArt(rng.Int63(), quality)
		samples = append(samples, Sample{
			Pixels: ImageToInput(art, imageSize),
			Label:  label,
		})
	}
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return samples
}

// ImageToInput resizes an image to the network resolution and
// normalizes each channel to [-1, 1].
func ImageToInput(src image.Image, imageSize int) *mat.Dense {
	resized := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	xdraw.ApproxBiLinear.Scale(resized, resized.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	x := mat.NewDense(3, imageSize*imageSize, nil)
	r := x.RawRowView(0)
	g := x.RawRowView(1)
	b := x.RawRowView(2)
	for y := 0; y < imageSize; y++ {
		for xo := 0; xo < imageSize; xo++ {
			i := resized.PixOffset(xo, y)
			idx := y*imageSize + xo
			r[idx] = (float64(resized.Pix[i])/255 - 0.5) / 0.5
			g[idx] = (float64(resized.Pix[i+1])/255 - 0.5) / 0.5
			b[idx] = (float64(resized.Pix[i+2])/255 - 0.5) / 0.5
		}
	}
	return x
}
