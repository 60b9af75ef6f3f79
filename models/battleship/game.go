package battleship

import (
	"golang.org/x/exp/rand"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type MatchPhase uint8

const (
	MatchPhasePlacement MatchPhase = iota
	MatchPhaseBattle
	MatchPhaseFinished
)

func (p MatchPhase) String() string {
	switch p {
	case MatchPhasePlacement:
		return "placement"
	case MatchPhaseBattle:
		return "battle"
	case MatchPhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

const PlayersPerMatch = 2

// Match runs two boards through placement and battle. Turn order
// lives here, not in the boards.
type Match struct {
	uuid           string
	phase          MatchPhase
	players        [PlayersPerMatch]*Player
	current        int
	winner         *Player
	extraTurnOnHit bool
	shotsFired     int
}

type MatchOption func(*Match)

// WithExtraTurnOnHit lets an attacker keep shooting after a hit or a sink.
// It is on by default.
func WithExtraTurnOnHit(extraTurn bool) MatchOption {
	return func(m *Match) {
		m.extraTurnOnHit = extraTurn
	}
}

func NewMatch(uuid string, opts ...MatchOption) *Match {
	m := &Match{
		uuid:           uuid,
		phase:          MatchPhasePlacement,
		players:        [PlayersPerMatch]*Player{NewPlayer(1), NewPlayer(2)},
		current:        0,
		extraTurnOnHit: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) Phase() MatchPhase {
	return m.phase
}

func (m *Match) IsFinished() bool {
	return m.phase == MatchPhaseFinished
}

func (m *Match) ShotsFired() int {
	return m.shotsFired
}

// returns the players in seat order.
func (m *Match) Players() []*Player {
	return []*Player{m.players[0], m.players[1]}
}

func (m *Match) FetchPlayer(number int) (*Player, error) {
	if number < 1 || number > PlayersPerMatch {
		return nil, cerr.ErrPlayerNotExist(number)
	}
	return m.players[number-1], nil
}

func (m *Match) CurrentPlayer() *Player {
	return m.players[m.current]
}

func (m *Match) Opponent() *Player {
	return m.players[1-m.current]
}

// Winner is nil until the match is finished.
func (m *Match) Winner() *Player {
	return m.winner
}

func (m *Match) PlaceShip(number int, kind ShipKind, start, end Coordinates) error {
	if m.phase != MatchPhasePlacement {
		return cerr.ErrMatchNotInPlacement
	}
	player, err := m.FetchPlayer(number)
	if err != nil {
		return err
	}
	return player.board.Place(kind, start, end)
}

func (m *Match) AutoPlace(number int, r *rand.Rand) error {
	if m.phase != MatchPhasePlacement {
		return cerr.ErrMatchNotInPlacement
	}
	player, err := m.FetchPlayer(number)
	if err != nil {
		return err
	}
	return PlaceRandomly(player.board, r)
}

// Start ends the placement phase. Player 1 shoots first.
func (m *Match) Start() error {
	if m.phase != MatchPhasePlacement {
		return cerr.ErrMatchNotInPlacement
	}
	for _, player := range m.players {
		if !player.board.IsFleetComplete() {
			return cerr.ErrPlayerFleetIncomplete(player.number)
		}
	}

	m.phase = MatchPhaseBattle
	m.current = 0
	return nil
}

// Attack fires the current player's shot at the opponent's board.
// A rejected shot leaves the turn where it was.
func (m *Match) Attack(c Coordinates) (AttackOutcome, error) {
	switch m.phase {
	case MatchPhaseFinished:
		return AttackOutcome{}, cerr.ErrMatchFinished
	case MatchPhasePlacement:
		return AttackOutcome{}, cerr.ErrMatchNotInBattle
	}

	attacker, defender := m.CurrentPlayer(), m.Opponent()
	outcome, err := defender.board.Attack(c)
	if err != nil {
		return AttackOutcome{}, err
	}
	m.shotsFired++

	if defender.board.IsDefeated() {
		m.finish(attacker, defender)
		return outcome, nil
	}

	if outcome.Result == AttackMiss || !m.extraTurnOnHit {
		m.current = 1 - m.current
	}
	return outcome, nil
}

func (m *Match) Forfeit(number int) error {
	if m.phase == MatchPhaseFinished {
		return cerr.ErrMatchFinished
	}
	loser, err := m.FetchPlayer(number)
	if err != nil {
		return err
	}
	m.finish(m.players[PlayersPerMatch-number], loser)
	return nil
}

func (m *Match) finish(winner, loser *Player) {
	m.phase = MatchPhaseFinished
	m.winner = winner
	winner.setMatchStatus(PlayerMatchStatusWon)
	loser.setMatchStatus(PlayerMatchStatusLost)
}
