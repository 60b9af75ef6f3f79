package api

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

const (
	symbolEmpty = "."
	symbolMiss  = "M"
	symbolHit   = "H"
	symbolSunk  = "S"
)

func cellSymbol(cell mb.Cell) string {
	switch cell.State {
	case mb.CellOccupied:
		return strconv.Itoa(int(cell.Kind.Identity()))
	case mb.CellMiss:
		return symbolMiss
	case mb.CellHit:
		return symbolHit
	case mb.CellSunk:
		return symbolSunk
	default:
		return symbolEmpty
	}
}

// RenderGrid writes the grid as a table with row and column numbers.
// Which cells are revealed is decided by the view passed in.
func RenderGrid(w io.Writer, grid mb.Grid) error {
	tw := tabwriter.NewWriter(w, 3, 0, 1, ' ', 0)

	fmt.Fprint(tw, "\t")
	for col := 0; col < mb.GridSize; col++ {
		fmt.Fprintf(tw, "%d\t", col)
	}
	fmt.Fprint(tw, "\n")

	for row := range grid {
		fmt.Fprintf(tw, "%d\t", row)
		for col := range grid[row] {
			fmt.Fprintf(tw, "%s\t", cellSymbol(grid[row][col]))
		}
		fmt.Fprint(tw, "\n")
	}
	return tw.Flush()
}
