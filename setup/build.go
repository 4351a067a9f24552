package setup

import (
	"fmt"

	"github.com/mtgboard/tabletop/dom"
)

// Zone containers in the order they appear on the table.
var zoneOrder = []string{"lands", "creatures", "enchantments", "graveyard", "hand"}

// Build constructs the document tree the interaction controller runs over:
// one container per zone, a hidden preview slot, and a div.card wrapping an
// img for every entry. The controller never assumes a fixed card count, so
// empty sections are fine.
func (l *Layout) Build() (*dom.Document, error) {
	doc := dom.NewDocument()

	preview := doc.CreateElement("div")
	preview.SetAttr("id", "preview")
	preview.SetStyle("display", "none")
	doc.Body().AppendChild(preview)

	containers := map[string]*dom.Element{}
	for _, id := range zoneOrder {
		zone := doc.CreateElement("div", "zone")
		zone.SetAttr("id", id)
		doc.Body().AppendChild(zone)
		containers[id] = zone
	}

	for _, section := range l.Sections {
		container, ok := containers[section.Zone]
		if !ok {
			return nil, fmt.Errorf("unknown zone %q", section.Zone)
		}
		for _, entry := range section.Cards {
			card := doc.CreateElement("div", "card")
			card.SetAttr("name", entry.Name)
			if entry.Tapped {
				card.AddClass("tapped")
			}
			img := doc.CreateElement("img")
			img.SetAttr("src", entry.Image)
			card.AppendChild(img)
			container.AppendChild(card)
		}
	}
	return doc, nil
}
