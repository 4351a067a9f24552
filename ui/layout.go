package ui

import (
	"image"
	"strconv"
	"strings"

	"github.com/mtgboard/tabletop/dom"
)

// Box pairs an element with the screen rectangle it occupies this frame.
type Box struct {
	El   *dom.Element
	Rect image.Rectangle
}

const (
	margin     = 16
	rowHeight  = 120
	handHeight = 140
	panelWidth = 220
	cardWidth  = 80
	cardHeight = 104
	cardGap    = 8
	menuWidth  = 160
	itemHeight = 24
)

// Layout maps the document to screen rectangles, back to front: zone
// panels first, then cards (tapped cards turned sideways), the preview
// panel, and the action menu on top. It is a pure function of the
// document, so it runs headless in tests.
func Layout(doc *dom.Document, w, h int) []Box {
	var boxes []Box
	tableRight := w - panelWidth - 2*margin

	zones := map[string]image.Rectangle{
		"lands":        image.Rect(margin, margin, tableRight, margin+rowHeight),
		"creatures":    image.Rect(margin, 2*margin+rowHeight, tableRight, 2*margin+2*rowHeight),
		"enchantments": image.Rect(margin, 3*margin+2*rowHeight, tableRight, 3*margin+3*rowHeight),
		"hand":         image.Rect(margin, h-margin-handHeight, tableRight, h-margin),
		"graveyard":    image.Rect(w-panelWidth-margin, 2*margin+300, w-margin, h-margin),
	}
	previewRect := image.Rect(w-panelWidth-margin, margin, w-margin, margin+300)

	for _, id := range []string{"lands", "creatures", "enchantments", "graveyard", "hand"} {
		zone := doc.GetElementByID(id)
		if zone == nil {
			continue
		}
		rect := zones[id]
		boxes = append(boxes, Box{El: zone, Rect: rect})
		boxes = append(boxes, layoutCards(zone, rect)...)
	}

	if preview := doc.GetElementByID("preview"); preview != nil {
		boxes = append(boxes, Box{El: preview, Rect: previewRect})
		if preview.Style("display") != "none" {
			for _, img := range preview.Children() {
				inner := previewRect.Inset(cardGap)
				boxes = append(boxes, Box{El: img, Rect: inner})
			}
		}
	}

	for _, menu := range doc.FindAll(".card-menu") {
		x := stylePx(menu, "left")
		y := stylePx(menu, "top")
		items := menu.Children()
		rect := image.Rect(x, y, x+menuWidth, y+len(items)*itemHeight)
		boxes = append(boxes, Box{El: menu, Rect: rect})
		for i, item := range items {
			boxes = append(boxes, Box{El: item, Rect: image.Rect(
				x, y+i*itemHeight, x+menuWidth, y+(i+1)*itemHeight)})
		}
	}
	return boxes
}

func layoutCards(zone *dom.Element, rect image.Rectangle) []Box {
	var boxes []Box
	x := rect.Min.X + cardGap
	for _, card := range zone.Children() {
		if !card.HasClass("card") {
			continue
		}
		cw, ch := cardWidth, cardHeight
		if card.HasClass("tapped") {
			cw, ch = ch, cw
		}
		cardRect := image.Rect(x, rect.Min.Y+cardGap, x+cw, rect.Min.Y+cardGap+ch)
		boxes = append(boxes, Box{El: card, Rect: cardRect})
		for _, img := range card.Children() {
			if img.Tag == "img" {
				boxes = append(boxes, Box{El: img, Rect: cardRect})
			}
		}
		x += cw + cardGap
	}
	return boxes
}

// TopmostAt returns the element drawn last at the point, nil when the
// point hits nothing.
func TopmostAt(boxes []Box, x, y int) *dom.Element {
	pt := image.Pt(x, y)
	for i := len(boxes) - 1; i >= 0; i-- {
		if pt.In(boxes[i].Rect) {
			return boxes[i].El
		}
	}
	return nil
}

func stylePx(el *dom.Element, prop string) int {
	v := strings.TrimSuffix(el.Style(prop), "px")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
