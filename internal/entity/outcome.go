package entity

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

// Outcome is the status of a game. The winner is only meaningful for StatusWon.
type Outcome struct {
	status Status
	winner Player
}

func InProgress() Outcome {
	return Outcome{status: StatusInProgress}
}

func Won(player Player) Outcome {
	return Outcome{status: StatusWon, winner: player}
}

func Drawn() Outcome {
	return Outcome{status: StatusDrawn}
}

func (that Outcome) Status() Status {
	return that.status
}

// Winner reports the winning player, ok is false unless the game was won.
func (that Outcome) Winner() (Player, bool) {
	if that.status != StatusWon {
		return 0, false
	}
	return that.winner, true
}

func (that Outcome) IsTerminal() bool {
	return that.status != StatusInProgress
}

func (that Outcome) String() string {
	switch that.status {
	case StatusWon:
		return that.winner.String() + " wins"
	case StatusDrawn:
		return "draw"
	default:
		return "in progress"
	}
}
