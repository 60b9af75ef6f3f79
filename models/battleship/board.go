package battleship

import (
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type AttackResult uint8

const (
	AttackMiss AttackResult = iota
	AttackHit
	AttackSunk
)

func (r AttackResult) String() string {
	switch r {
	case AttackMiss:
		return "miss"
	case AttackHit:
		return "hit"
	case AttackSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// AttackOutcome is what the defender's board reports back.
// Kind and SunkCells are only set when Result is AttackSunk.
type AttackOutcome struct {
	Result    AttackResult  `json:"result"`
	Kind      ShipKind      `json:"kind,omitempty"`
	SunkCells []Coordinates `json:"sunk_cells,omitempty"`
}

// Board is one player's own waters: the grid and the ships placed on it.
type Board struct {
	grid      Grid
	ships     map[ShipKind]*Ship
	sunkShips int
}

func NewBoard() *Board {
	return &Board{
		grid:      NewGrid(),
		ships:     make(map[ShipKind]*Ship, FleetSize),
		sunkShips: 0,
	}
}

// Place builds a ship of kind between start and end and commits it to
// the grid. Nothing changes on the board unless every check passes.
func (b *Board) Place(kind ShipKind, start, end Coordinates) error {
	if _, prs := b.ships[kind]; prs {
		return cerr.ErrShipKindAlreadyPlaced(kind.String())
	}

	ship, err := NewShip(kind, start, end)
	if err != nil {
		return err
	}

	for _, c := range ship.cells {
		if !c.InBounds() {
			return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
		}
	}
	for _, c := range ship.cells {
		if b.grid.At(c).State != CellEmpty {
			return cerr.ErrShipOverlap(c.Row, c.Col)
		}
	}

	for _, c := range ship.cells {
		b.grid.set(c, OccupiedCell(kind))
	}
	b.ships[kind] = ship
	return nil
}

// Attack resolves one opponent shot against this board.
func (b *Board) Attack(c Coordinates) (AttackOutcome, error) {
	if !c.InBounds() {
		return AttackOutcome{}, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}

	cell := b.grid.At(c)
	if cell.IsAttacked() {
		return AttackOutcome{}, cerr.ErrAttackPositionAlreadyFilled(c.Row, c.Col)
	}

	if cell.State == CellEmpty {
		b.grid.set(c, MarkerCell(CellMiss))
		return AttackOutcome{Result: AttackMiss}, nil
	}

	// Passed this line means the position holds a ship
	ship, prs := b.ships[cell.Kind]
	if !prs {
		// occupied cells are only ever written by Place
		panic("occupied cell without a placed ship")
	}
	if err := ship.Hit(c); err != nil {
		return AttackOutcome{}, err
	}

	if !ship.IsSunk() {
		b.grid.set(c, MarkerCell(CellHit))
		return AttackOutcome{Result: AttackHit}, nil
	}

	for _, sc := range ship.cells {
		b.grid.set(sc, MarkerCell(CellSunk))
	}
	b.sunkShips++

	return AttackOutcome{
		Result:    AttackSunk,
		Kind:      ship.kind,
		SunkCells: ship.Cells(),
	}, nil
}

// IsDefeated reports whether every placed ship has been sunk.
// A board with no ships is not defeated.
func (b *Board) IsDefeated() bool {
	return len(b.ships) > 0 && b.sunkShips == len(b.ships)
}

func (b *Board) SunkShips() int {
	return b.sunkShips
}

func (b *Board) PlacedShips() int {
	return len(b.ships)
}

func (b *Board) IsFleetComplete() bool {
	return len(b.ships) == FleetSize
}

func (b *Board) Ship(kind ShipKind) (*Ship, bool) {
	ship, prs := b.ships[kind]
	return ship, prs
}

// UnplacedKinds returns the fleet kinds not yet on the board, in identity order.
func (b *Board) UnplacedKinds() []ShipKind {
	kinds := make([]ShipKind, 0, FleetSize)
	for _, kind := range Fleet() {
		if _, prs := b.ships[kind]; !prs {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func (b *Board) Cell(c Coordinates) (Cell, error) {
	if !c.InBounds() {
		return Cell{}, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	return b.grid.At(c), nil
}

// RevealedView is the owner's view of the board with every ship visible.
func (b *Board) RevealedView() Grid {
	return b.grid
}

// OpponentView hides unattacked ships; only attack markers are visible.
func (b *Board) OpponentView() Grid {
	view := b.grid
	for row := range view {
		for col := range view[row] {
			if view[row][col].State == CellOccupied {
				view[row][col] = EmptyCell()
			}
		}
	}
	return view
}
