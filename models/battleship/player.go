package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	number      int
	matchStatus int
	board       *Board
}

func NewPlayer(number int) *Player {
	return &Player{
		number:      number,
		matchStatus: PlayerMatchStatusUndefined,
		board:       NewBoard(),
	}
}

// Number is the 1-based seat of the player in the match.
func (p *Player) Number() int {
	return p.number
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

func (p *Player) IsLoser() bool {
	return p.board.IsDefeated() || p.matchStatus == PlayerMatchStatusLost
}

func (p *Player) setMatchStatus(status int) {
	p.matchStatus = status
}
