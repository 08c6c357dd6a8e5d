package assets

import (
	"bytes"
	"testing"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
)

func TestAppleArtDeterministic(t *testing.T) {
	a := AppleArt(42, components.QualityGood)
	b := AppleArt(42, components.QualityGood)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed and quality must render identical pixels")
	}
}

func TestAppleArtVariesBySeed(t *testing.T) {
	a := AppleArt(1, components.QualityGood)
	b := AppleArt(2, components.QualityGood)
	if a.Rect == b.Rect && bytes.Equal(a.Pix, b.Pix) {
		t.Error("different seeds should render different apples")
	}
}

func TestAppleArtQualityChangesLook(t *testing.T) {
	good := AppleArt(7, components.QualityGood)
	bad := AppleArt(7, components.QualityDamaged)
	if bytes.Equal(good.Pix, bad.Pix) {
		t.Error("good and damaged apples must look different")
	}
}

func TestAppleArtCanvasBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		img := AppleArt(seed, components.QualityGood)
		w := img.Rect.Dx()
		r := (w - 20) / 2
		if r < cfg.Apple.MinRadius || r > cfg.Apple.MaxRadius {
			t.Fatalf("seed %d: radius %d outside [%d,%d]", seed, r, cfg.Apple.MinRadius, cfg.Apple.MaxRadius)
		}
		if img.Rect.Dy() != 2*r+30 {
			t.Fatalf("seed %d: height %d want %d", seed, img.Rect.Dy(), 2*r+30)
		}
	}
}

func TestAppleArtHasOpaquePixels(t *testing.T) {
	img := AppleArt(3, components.QualityDamaged)
	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("rendered apple is fully transparent")
	}
}
