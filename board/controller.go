package board

import (
	"go.uber.org/zap"

	"github.com/mtgboard/tabletop/dom"
)

const (
	ClassTapped  = "tapped"
	PreviewId    = "preview"
	GraveyardId  = "graveyard"
	ClassMenu    = "card-menu"
	ClassMenuRow = "card-menu-item"
)

// Controller drives the three tabletop interactions over a document tree:
// preview-on-hover, tap toggling for in-play cards and the hand card action
// menu. It owns no rendering; it only mutates the document, and the host
// translates pointer input into MouseEvents.
type Controller struct {
	doc  *dom.Document
	menu *openMenu
	log  *zap.Logger
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func New(doc *dom.Document, opts ...Option) *Controller {
	c := &Controller{doc: doc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Menu returns the open action menu element, or nil when no menu is shown.
func (c *Controller) Menu() *dom.Element {
	if c.menu == nil {
		return nil
	}
	return c.menu.el
}

// Dispatch routes one pointer event. Events run to completion in the order
// they are delivered; there is no queueing or debouncing here.
func (c *Controller) Dispatch(ev MouseEvent) {
	if ev.Target == nil {
		return
	}
	switch ev.Action {
	case MouseEnter:
		c.showPreview(ev.Target)
	case MouseLeave:
		c.hidePreview()
	case MousePress:
		c.press(ev)
	}
}

func (c *Controller) press(ev MouseEvent) {
	if item := c.menuItem(ev.Target); item != nil {
		c.activate(item)
		return
	}
	card := ev.Target.Closest(".card")
	if card == nil {
		return
	}
	zone := ZoneOf(card)
	switch {
	case zone.InPlay():
		tapped := card.ToggleClass(ClassTapped)
		c.log.Debug("toggled card",
			zap.String("zone", zone.String()),
			zap.Bool("tapped", tapped))
	case zone == ZoneHand:
		c.openMenu(card, ev.X, ev.Y)
	}
}

// menuItem resolves a press target to an item of the currently open menu.
// Items of an already-closed menu are inert.
func (c *Controller) menuItem(target *dom.Element) *dom.Element {
	if c.menu == nil {
		return nil
	}
	item := target.Closest("." + ClassMenuRow)
	if item == nil || !c.menu.el.Contains(item) {
		return nil
	}
	return item
}
