package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type ShipKind uint8

// Ship kinds double as the identity written to an occupied cell.
// The zero value is not a valid kind.
const (
	ShipKindDestroyer ShipKind = iota + 1
	ShipKindCruiser
	ShipKindSubmarine
	ShipKindBattleship
	ShipKindCarrier
)

type shipSpec struct {
	name     string
	length   int
	identity uint8
}

var shipCatalogue = map[ShipKind]shipSpec{
	ShipKindDestroyer:  {name: "destroyer", length: 2, identity: 1},
	ShipKindCruiser:    {name: "cruiser", length: 2, identity: 2},
	ShipKindSubmarine:  {name: "submarine", length: 3, identity: 3},
	ShipKindBattleship: {name: "battleship", length: 4, identity: 4},
	ShipKindCarrier:    {name: "carrier", length: 5, identity: 5},
}

// FleetSize is the number of ships each player places.
const FleetSize = 5

// Fleet returns every ship kind in identity order.
func Fleet() []ShipKind {
	return []ShipKind{
		ShipKindDestroyer,
		ShipKindCruiser,
		ShipKindSubmarine,
		ShipKindBattleship,
		ShipKindCarrier,
	}
}

func (k ShipKind) IsValid() bool {
	_, prs := shipCatalogue[k]
	return prs
}

func (k ShipKind) Length() int {
	return shipCatalogue[k].length
}

func (k ShipKind) Identity() uint8 {
	return shipCatalogue[k].identity
}

func (k ShipKind) String() string {
	spec, prs := shipCatalogue[k]
	if !prs {
		return "unknown"
	}
	return spec.name
}

// ParseShipKind resolves a ship name regardless of its case.
func ParseShipKind(name string) (ShipKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kind := range Fleet() {
		if shipCatalogue[kind].name == name {
			return kind, nil
		}
	}
	return 0, cerr.ErrShipKindUnknown(name)
}
