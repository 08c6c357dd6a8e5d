package components

import "github.com/yohamta/donburi"

// AppleQuality is the hidden ground-truth flag assigned at spawn. The
// string values double as classifier class names.
type AppleQuality string

const (
	QualityGood    AppleQuality = "good"
	QualityDamaged AppleQuality = "damaged"
)

type AppleData struct {
	Quality   AppleQuality
	Collected bool
	FallSpeed float64 // catch mode: px/s, jitter baked in at spawn
	Spin      float64 // runner mode: cosmetic rotation, radians
	ArtSeed   int64   // seeds the procedural sprite
	Seq       uint64  // spawn order, collision tie-break key
}

var Apple = donburi.NewComponentType[AppleData]()
