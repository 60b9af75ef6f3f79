package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed    = "attack operation failed"
	ConstErrPlacementFailed = "ship placement failed"
)

var (
	ErrInvalidShape      = errors.New("ship endpoints must share a row or a column")
	ErrInvalidSize       = errors.New("ship span does not match its length")
	ErrOutOfBounds       = errors.New("coordinates are out of grid bound")
	ErrOverlap           = errors.New("ship overlaps another ship")
	ErrAlreadyAttacked   = errors.New("position already attacked")
	ErrShipAlreadyPlaced = errors.New("ship already placed on this board")
	ErrUnknownShipKind   = errors.New("unknown ship kind")
	ErrNotShipCell       = errors.New("position is not occupied by this ship")

	ErrFleetIncomplete     = errors.New("fleet is not completely placed")
	ErrMatchNotExists      = errors.New("match does not exist")
	ErrMatchNotInPlacement = errors.New("match is not in placement phase")
	ErrMatchNotInBattle    = errors.New("match is not in battle phase")
	ErrMatchFinished       = errors.New("match is already finished")
)

func ErrInvalidShipShape(startRow, startCol, endRow, endCol int) error {
	return fmt.Errorf("%w\tstart: (%d, %d)\tend: (%d, %d)", ErrInvalidShape, startRow, startCol, endRow, endCol)
}

func ErrInvalidShipSize(kind string, span, length int) error {
	return fmt.Errorf("%w\tship: %s\tspan: %d\tlength: %d", ErrInvalidSize, kind, span, length)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row, col)
}

func ErrShipOverlap(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOverlap, row, col)
}

func ErrAttackPositionAlreadyFilled(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyAttacked, row, col)
}

func ErrShipKindAlreadyPlaced(kind string) error {
	return fmt.Errorf("%w\tship: %s", ErrShipAlreadyPlaced, kind)
}

func ErrShipKindUnknown(kind interface{}) error {
	return fmt.Errorf("%w: %v", ErrUnknownShipKind, kind)
}

func ErrPositionNotShipCell(kind string, row, col int) error {
	return fmt.Errorf("%w\tship: %s\trow: %d\tcol: %d", ErrNotShipCell, kind, row, col)
}

func ErrPlayerFleetIncomplete(player int) error {
	return fmt.Errorf("%w\tplayer: %d", ErrFleetIncomplete, player)
}

func ErrMatchUuidNotExists(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchNotExists, matchUuid)
}

func ErrAutoPlacementFailed(kind string, attempts int) error {
	return fmt.Errorf("%w: could not place %s after %d attempts", ErrOverlap, kind, attempts)
}

func ErrPlayerNotExist(player int) error {
	return fmt.Errorf("player does not exist in this match, player: %d", player)
}
