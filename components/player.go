package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Direction int // 1 facing right, -1 facing left
}

var Player = donburi.NewComponentType[PlayerData]()
