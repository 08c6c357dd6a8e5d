package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Apple  = donburi.NewTag().SetName("Apple")
	Flight = donburi.NewTag().SetName("Flight")
	Basket = donburi.NewTag().SetName("Basket")
)

// Resolv tags for the collision space
const (
	ResolvPlayer = "player"
	ResolvApple  = "apple"
)
