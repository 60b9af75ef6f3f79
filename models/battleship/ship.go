package battleship

import (
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type Ship struct {
	kind   ShipKind
	cells  []Coordinates
	damage map[Coordinates]bool
	hits   int
}

// NewShip lays a ship of the given kind between two inclusive
// endpoints. Endpoints may come in either order. Grid bounds
// are the board's concern and are not checked here.
func NewShip(kind ShipKind, start, end Coordinates) (*Ship, error) {
	if !kind.IsValid() {
		return nil, cerr.ErrShipKindUnknown(uint8(kind))
	}

	var (
		cells []Coordinates
		span  int
	)

	switch {
	case start.Row == end.Row:
		left, right := minMax(start.Col, end.Col)
		span = right - left + 1
		if span != kind.Length() {
			return nil, cerr.ErrInvalidShipSize(kind.String(), span, kind.Length())
		}
		cells = make([]Coordinates, 0, span)
		for col := left; col <= right; col++ {
			cells = append(cells, NewCoordinates(start.Row, col))
		}

	case start.Col == end.Col:
		top, bottom := minMax(start.Row, end.Row)
		span = bottom - top + 1
		if span != kind.Length() {
			return nil, cerr.ErrInvalidShipSize(kind.String(), span, kind.Length())
		}
		cells = make([]Coordinates, 0, span)
		for row := top; row <= bottom; row++ {
			cells = append(cells, NewCoordinates(row, start.Col))
		}

	default:
		return nil, cerr.ErrInvalidShipShape(start.Row, start.Col, end.Row, end.Col)
	}

	damage := make(map[Coordinates]bool, len(cells))
	for _, c := range cells {
		damage[c] = false
	}

	return &Ship{
		kind:   kind,
		cells:  cells,
		damage: damage,
		hits:   0,
	}, nil
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

func (sh *Ship) Length() int {
	return len(sh.cells)
}

// Cells returns a copy of the occupied coordinates,
// ordered from the smaller endpoint to the larger.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, len(sh.cells))
	copy(cells, sh.cells)
	return cells
}

func (sh *Ship) Occupies(c Coordinates) bool {
	_, prs := sh.damage[c]
	return prs
}

func (sh *Ship) IsHitAt(c Coordinates) bool {
	return sh.damage[c]
}

func (sh *Ship) Hit(c Coordinates) error {
	hit, prs := sh.damage[c]
	if !prs {
		return cerr.ErrPositionNotShipCell(sh.kind.String(), c.Row, c.Col)
	}
	if hit {
		return cerr.ErrAttackPositionAlreadyFilled(c.Row, c.Col)
	}

	sh.damage[c] = true
	sh.hits++
	return nil
}

func (sh *Ship) Hits() int {
	return sh.hits
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == len(sh.cells)
}
