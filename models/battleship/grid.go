package battleship

const GridSize = 10

const (
	GridValidLowerBound = 0
	GridValidUpperBound = GridSize - 1
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) InBounds() bool {
	return c.Row >= GridValidLowerBound && c.Row <= GridValidUpperBound &&
		c.Col >= GridValidLowerBound && c.Col <= GridValidUpperBound
}

type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied

	// Attack markers. Once a cell holds one of
	// these it can never change again, except a
	// hit turning into sunk with the rest of its ship.
	CellMiss
	CellHit
	CellSunk
)

// Cell is the state of one grid position. Kind is
// only set when the state is CellOccupied.
type Cell struct {
	State CellState `json:"state"`
	Kind  ShipKind  `json:"kind,omitempty"`
}

func EmptyCell() Cell {
	return Cell{State: CellEmpty}
}

func OccupiedCell(kind ShipKind) Cell {
	return Cell{State: CellOccupied, Kind: kind}
}

func MarkerCell(state CellState) Cell {
	return Cell{State: state}
}

func (c Cell) IsAttacked() bool {
	return c.State == CellMiss || c.State == CellHit || c.State == CellSunk
}

type Grid [GridSize][GridSize]Cell

// Creates a new default grid
// All positions are CellEmpty
func NewGrid() Grid {
	return Grid{}
}

func (g *Grid) At(c Coordinates) Cell {
	return g[c.Row][c.Col]
}

func (g *Grid) set(c Coordinates, cell Cell) {
	g[c.Row][c.Col] = cell
}
