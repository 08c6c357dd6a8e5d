package config

import "image/color"

var (
	White        = color.RGBA{255, 255, 255, 255}
	Gold         = color.RGBA{255, 215, 0, 255}
	HeartRed     = color.RGBA{220, 40, 40, 255}
	RottenBrown  = color.RGBA{139, 90, 43, 255}
	HUDBackdrop  = color.RGBA{0, 0, 0, 150}
	OverlayShade = color.RGBA{0, 0, 0, 190}
)
