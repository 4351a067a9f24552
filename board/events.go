package board

import "github.com/mtgboard/tabletop/dom"

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseEnter
	MouseLeave
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// MouseEvent is the event contract the controller consumes: an action, the
// viewport coordinates of the pointer and the originating element. The host
// (ebiten program, test, anything else) is responsible for delivering
// events in input order; the controller runs each to completion.
type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button MouseButton
	Target *dom.Element
}
