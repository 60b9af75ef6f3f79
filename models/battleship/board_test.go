package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type placement struct {
	kind  ShipKind
	start Coordinates
	end   Coordinates
}

// one ship per row, starting at column 0
var testFleet = []placement{
	{ShipKindDestroyer, NewCoordinates(0, 0), NewCoordinates(0, 1)},
	{ShipKindCruiser, NewCoordinates(2, 0), NewCoordinates(2, 1)},
	{ShipKindSubmarine, NewCoordinates(4, 0), NewCoordinates(4, 2)},
	{ShipKindBattleship, NewCoordinates(6, 0), NewCoordinates(6, 3)},
	{ShipKindCarrier, NewCoordinates(8, 0), NewCoordinates(8, 4)},
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	board := NewBoard()
	for _, p := range testFleet {
		require.NoError(t, board.Place(p.kind, p.start, p.end))
	}
	require.True(t, board.IsFleetComplete())
	return board
}

func sinkShip(t *testing.T, board *Board, kind ShipKind) AttackOutcome {
	t.Helper()
	ship, prs := board.Ship(kind)
	require.True(t, prs)

	var outcome AttackOutcome
	for _, c := range ship.Cells() {
		var err error
		outcome, err = board.Attack(c)
		require.NoError(t, err)
	}
	return outcome
}

func TestBoardPlace(t *testing.T) {
	board := NewBoard()

	require.NoError(t, board.Place(ShipKindDestroyer, NewCoordinates(0, 0), NewCoordinates(0, 1)))
	require.Equal(t, OccupiedCell(ShipKindDestroyer), board.RevealedView()[0][0])
	require.Equal(t, OccupiedCell(ShipKindDestroyer), board.RevealedView()[0][1])
	require.Equal(t, EmptyCell(), board.RevealedView()[0][2])

	tests := []struct {
		name        string
		placement   placement
		expectedErr error
	}{
		{
			name:        "overlap with destroyer",
			placement:   placement{ShipKindSubmarine, NewCoordinates(0, 1), NewCoordinates(2, 1)},
			expectedErr: cerr.ErrOverlap,
		},
		{
			name:        "out of grid bound columns",
			placement:   placement{ShipKindCarrier, NewCoordinates(5, 7), NewCoordinates(5, 11)},
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "negative row",
			placement:   placement{ShipKindCruiser, NewCoordinates(-1, 4), NewCoordinates(0, 4)},
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "diagonal",
			placement:   placement{ShipKindCruiser, NewCoordinates(3, 3), NewCoordinates(4, 4)},
			expectedErr: cerr.ErrInvalidShape,
		},
		{
			name:        "wrong size",
			placement:   placement{ShipKindCarrier, NewCoordinates(9, 9), NewCoordinates(9, 3)},
			expectedErr: cerr.ErrInvalidSize,
		},
		{
			name:        "destroyer placed twice",
			placement:   placement{ShipKindDestroyer, NewCoordinates(5, 5), NewCoordinates(5, 6)},
			expectedErr: cerr.ErrShipAlreadyPlaced,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := board.RevealedView()
			err := board.Place(test.placement.kind, test.placement.start, test.placement.end)
			require.ErrorIs(t, err, test.expectedErr)

			require.Equal(t, before, board.RevealedView())
			require.Equal(t, 1, board.PlacedShips())
		})
	}
}

func TestBoardPlaceOverlapLeavesStateUnchanged(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.Place(ShipKindBattleship, NewCoordinates(3, 2), NewCoordinates(3, 5)))
	before := board.RevealedView()

	// crosses the battleship at (3, 4); (1, 4) and (2, 4) are free
	err := board.Place(ShipKindSubmarine, NewCoordinates(1, 4), NewCoordinates(3, 4))
	require.ErrorIs(t, err, cerr.ErrOverlap)
	require.Equal(t, before, board.RevealedView())
	_, prs := board.Ship(ShipKindSubmarine)
	require.False(t, prs)
	require.Equal(t, []ShipKind{ShipKindDestroyer, ShipKindCruiser, ShipKindSubmarine, ShipKindCarrier}, board.UnplacedKinds())
}

func TestBoardAttackMiss(t *testing.T) {
	board := newTestBoard(t)

	outcome, err := board.Attack(NewCoordinates(5, 5))
	require.NoError(t, err)
	require.Equal(t, AttackOutcome{Result: AttackMiss}, outcome)
	require.Equal(t, MarkerCell(CellMiss), board.RevealedView()[5][5])

	_, err = board.Attack(NewCoordinates(5, 5))
	require.ErrorIs(t, err, cerr.ErrAlreadyAttacked)
}

func TestBoardAttackOutOfBounds(t *testing.T) {
	board := newTestBoard(t)
	before := board.RevealedView()

	for _, c := range []Coordinates{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := board.Attack(c)
		require.ErrorIs(t, err, cerr.ErrOutOfBounds)
	}
	require.Equal(t, before, board.RevealedView())
}

func TestBoardAttackSinkDestroyer(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.Place(ShipKindDestroyer, NewCoordinates(0, 0), NewCoordinates(0, 1)))

	outcome, err := board.Attack(NewCoordinates(0, 0))
	require.NoError(t, err)
	require.Equal(t, AttackHit, outcome.Result)
	require.Equal(t, MarkerCell(CellHit), board.RevealedView()[0][0])
	require.Equal(t, OccupiedCell(ShipKindDestroyer), board.RevealedView()[0][1])
	require.False(t, board.IsDefeated())

	outcome, err = board.Attack(NewCoordinates(0, 1))
	require.NoError(t, err)
	require.Equal(t, AttackSunk, outcome.Result)
	require.Equal(t, ShipKindDestroyer, outcome.Kind)
	require.Equal(t, []Coordinates{{0, 0}, {0, 1}}, outcome.SunkCells)
	require.Equal(t, MarkerCell(CellSunk), board.RevealedView()[0][0])
	require.Equal(t, MarkerCell(CellSunk), board.RevealedView()[0][1])
	require.Equal(t, 1, board.SunkShips())

	for _, c := range []Coordinates{{0, 0}, {0, 1}} {
		_, err = board.Attack(c)
		require.ErrorIs(t, err, cerr.ErrAlreadyAttacked)
	}
}

func TestBoardAttackHitsUntilLastCell(t *testing.T) {
	board := newTestBoard(t)
	ship, _ := board.Ship(ShipKindCarrier)
	cells := ship.Cells()

	for _, c := range cells[:len(cells)-1] {
		outcome, err := board.Attack(c)
		require.NoError(t, err)
		require.Equal(t, AttackHit, outcome.Result)
		require.False(t, board.IsDefeated())
	}

	outcome, err := board.Attack(cells[len(cells)-1])
	require.NoError(t, err)
	require.Equal(t, AttackSunk, outcome.Result)
	require.Equal(t, ShipKindCarrier, outcome.Kind)
	for _, c := range cells {
		require.Equal(t, CellSunk, board.RevealedView()[c.Row][c.Col].State)
	}
}

func TestBoardSameLengthShipsResolvedByIdentity(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.Place(ShipKindDestroyer, NewCoordinates(0, 0), NewCoordinates(0, 1)))
	require.NoError(t, board.Place(ShipKindCruiser, NewCoordinates(1, 0), NewCoordinates(1, 1)))

	_, err := board.Attack(NewCoordinates(1, 0))
	require.NoError(t, err)
	outcome, err := board.Attack(NewCoordinates(1, 1))
	require.NoError(t, err)
	require.Equal(t, AttackSunk, outcome.Result)
	require.Equal(t, ShipKindCruiser, outcome.Kind)

	destroyer, _ := board.Ship(ShipKindDestroyer)
	require.Zero(t, destroyer.Hits())
}

func TestBoardIsDefeated(t *testing.T) {
	require.False(t, NewBoard().IsDefeated())

	board := newTestBoard(t)
	for i, p := range testFleet {
		require.False(t, board.IsDefeated())
		outcome := sinkShip(t, board, p.kind)
		require.Equal(t, AttackSunk, outcome.Result)
		require.Equal(t, p.kind, outcome.Kind)
		require.Equal(t, i+1, board.SunkShips())
	}
	require.True(t, board.IsDefeated())
}

func TestBoardOpponentView(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.Place(ShipKindSubmarine, NewCoordinates(2, 2), NewCoordinates(2, 4)))
	_, err := board.Attack(NewCoordinates(7, 7))
	require.NoError(t, err)

	view := board.OpponentView()
	for row := range view {
		for col := range view[row] {
			if row == 7 && col == 7 {
				require.Equal(t, MarkerCell(CellMiss), view[row][col])
				continue
			}
			require.Equal(t, EmptyCell(), view[row][col], "row %d col %d", row, col)
		}
	}

	_, err = board.Attack(NewCoordinates(2, 3))
	require.NoError(t, err)
	view = board.OpponentView()
	require.Equal(t, MarkerCell(CellHit), view[2][3])
	require.Equal(t, EmptyCell(), view[2][2])

	// the revealed view still shows the unhit cells
	require.Equal(t, OccupiedCell(ShipKindSubmarine), board.RevealedView()[2][2])
}

func TestBoardViewsAreCopies(t *testing.T) {
	board := NewBoard()
	view := board.RevealedView()
	view[0][0] = OccupiedCell(ShipKindCarrier)

	cell, err := board.Cell(NewCoordinates(0, 0))
	require.NoError(t, err)
	require.Equal(t, EmptyCell(), cell)

	_, err = board.Cell(NewCoordinates(0, 10))
	require.ErrorIs(t, err, cerr.ErrOutOfBounds)
}

func TestPlaceRandomly(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		board := NewBoard()
		require.NoError(t, board.Place(ShipKindCarrier, NewCoordinates(0, 0), NewCoordinates(0, 4)))
		require.NoError(t, PlaceRandomly(board, NewRand(seed)))
		require.True(t, board.IsFleetComplete())

		occupied := 0
		view := board.RevealedView()
		for row := range view {
			for col := range view[row] {
				if view[row][col].State == CellOccupied {
					occupied++
				}
			}
		}
		require.Equal(t, 2+2+3+4+5, occupied)

		carrier, _ := board.Ship(ShipKindCarrier)
		require.Equal(t, NewCoordinates(0, 0), carrier.Cells()[0])
	}
}
