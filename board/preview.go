package board

import "github.com/mtgboard/tabletop/dom"

// showPreview fills the preview slot with a fresh enlarged image of the
// hovered card. Last enter wins: the slot is cleared before the new image
// goes in, so it never holds more than one.
func (c *Controller) showPreview(target *dom.Element) {
	card := target.Closest(".card")
	if card == nil {
		return
	}
	src := cardImageSrc(card, target)
	if src == "" {
		return
	}
	slot := c.doc.GetElementByID(PreviewId)
	if slot == nil {
		return
	}
	slot.RemoveChildren()
	img := c.doc.CreateElement("img")
	img.SetAttr("src", src)
	slot.AppendChild(img)
	slot.SetStyle("display", "block")
}

// hidePreview empties and hides the slot regardless of prior state.
func (c *Controller) hidePreview() {
	slot := c.doc.GetElementByID(PreviewId)
	if slot == nil {
		return
	}
	slot.RemoveChildren()
	slot.SetStyle("display", "none")
}

func cardImageSrc(card, target *dom.Element) string {
	if target.Tag == "img" {
		return target.Attr("src")
	}
	for _, child := range card.Children() {
		if child.Tag == "img" {
			return child.Attr("src")
		}
	}
	return ""
}
