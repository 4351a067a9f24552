package board

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/mtgboard/tabletop/dom"
)

// Labels of the three menu actions, in display order.
const (
	ActionPlay      = "Put into play"
	ActionGraveyard = "Put into graveyard"
	ActionCancel    = "Cancel"
)

// openMenu tracks the single action menu instance. The card reference is
// captured at open time so the graveyard action moves the exact clicked
// card even when structurally identical cards exist.
type openMenu struct {
	el   *dom.Element
	card *dom.Element
}

// openMenu builds the three-item action menu anchored at the press
// coordinates and attaches it to the body. At most one menu exists: an
// already-open menu is closed first instead of stacking.
func (c *Controller) openMenu(card *dom.Element, x, y int) {
	if c.menu != nil {
		c.closeMenu()
	}
	el := c.doc.CreateElement("ul", ClassMenu)
	el.SetStyle("position", "absolute")
	el.SetStyle("left", strconv.Itoa(x)+"px")
	el.SetStyle("top", strconv.Itoa(y)+"px")
	for _, label := range []string{ActionPlay, ActionGraveyard, ActionCancel} {
		item := c.doc.CreateElement("li", ClassMenuRow)
		item.Text = label
		el.AppendChild(item)
	}
	c.doc.Body().AppendChild(el)
	c.menu = &openMenu{el: el, card: card}
	c.log.Debug("opened hand menu", zap.Int("x", x), zap.Int("y", y))
}

// activate fires exactly one terminal menu action and closes the menu.
func (c *Controller) activate(item *dom.Element) {
	m := c.menu
	switch item.Text {
	case ActionGraveyard:
		c.moveToGraveyard(m.card)
	case ActionPlay:
		// Putting a card into play is a declared action with no model
		// effect beyond closing the menu.
	case ActionCancel:
	}
	c.closeMenu()
}

// moveToGraveyard relocates the card into the graveyard container.
// A card that lost its parent since the menu opened is left alone.
func (c *Controller) moveToGraveyard(card *dom.Element) {
	if card.Parent() == nil {
		c.log.Debug("stale menu card, skipping relocation")
		return
	}
	grave := c.doc.GetElementByID(GraveyardId)
	if grave == nil {
		return
	}
	grave.AppendChild(card)
	c.log.Debug("card moved to graveyard")
}

func (c *Controller) closeMenu() {
	if c.menu == nil {
		return
	}
	c.menu.el.Remove()
	c.menu = nil
}
