package components

import "github.com/yohamta/donburi"

type BasketData struct {
	X, Y       float64 // center
	AppleCount int     // good apples shown inside (capped visually)
}

var Basket = donburi.NewComponentType[BasketData]()
