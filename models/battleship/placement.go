package battleship

import (
	"golang.org/x/exp/rand"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

// arbitrary; a 10x10 grid always fits the fleet far sooner
const maxAutoPlaceAttempts = 1000

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// PlaceRandomly fills every unplaced fleet kind at random valid positions.
// Kinds already on the board are left where they are.
func PlaceRandomly(b *Board, r *rand.Rand) error {
	for _, kind := range b.UnplacedKinds() {
		placed := false

		for attempt := 0; attempt < maxAutoPlaceAttempts; attempt++ {
			start := NewCoordinates(r.Intn(GridSize), r.Intn(GridSize))
			end := start
			if r.Intn(2) == 0 {
				end.Col += kind.Length() - 1
			} else {
				end.Row += kind.Length() - 1
			}

			if err := b.Place(kind, start, end); err == nil {
				placed = true
				break
			}
		}

		if !placed {
			return cerr.ErrAutoPlacementFailed(kind.String(), maxAutoPlaceAttempts)
		}
	}
	return nil
}
