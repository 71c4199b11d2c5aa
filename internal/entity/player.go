package entity

// Player is one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	PlayerX Player = iota + 1 // moves first
	PlayerO
)

// Opponent returns the side that moves after that.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Number is the 1-based seat number shown in the turn banner.
func (that Player) Number() int {
	return int(that)
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}
