package board

import "github.com/mtgboard/tabletop/dom"

// Zone is the logical area a card currently occupies. Behavior is always
// dispatched on the zone derived at interaction time, not on whatever zone
// the card was in when the document was built, so a card moved to the
// graveyard stops tapping and a card put back in hand gets its menu.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneHand
	ZoneCreatures
	ZoneLands
	ZoneEnchantments
	ZoneGraveyard
)

var zoneIds = map[string]Zone{
	"hand":         ZoneHand,
	"creatures":    ZoneCreatures,
	"lands":        ZoneLands,
	"enchantments": ZoneEnchantments,
	"graveyard":    ZoneGraveyard,
}

var zoneNames = map[Zone]string{
	ZoneNone:         "none",
	ZoneHand:         "hand",
	ZoneCreatures:    "creatures",
	ZoneLands:        "lands",
	ZoneEnchantments: "enchantments",
	ZoneGraveyard:    "graveyard",
}

func (z Zone) String() string { return zoneNames[z] }

// InPlay reports whether cards in this zone can be tapped.
func (z Zone) InPlay() bool {
	return z == ZoneCreatures || z == ZoneLands || z == ZoneEnchantments
}

// ZoneOf walks the element's ancestors for a zone container id.
func ZoneOf(el *dom.Element) Zone {
	for cur := el; cur != nil; cur = cur.Parent() {
		if z, ok := zoneIds[cur.Attr("id")]; ok {
			return z
		}
	}
	return ZoneNone
}
