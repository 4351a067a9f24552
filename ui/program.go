package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/mtgboard/tabletop/board"
	"github.com/mtgboard/tabletop/dom"
)

// Program hosts the interaction controller inside an ebiten game loop. It
// lays out the document each frame, synthesizes enter/leave events from
// cursor transitions over card images (topmost wins), turns button presses
// into press events, and draws the result. All controller dispatches run
// to completion inside Update, so the document is never observed mid-
// mutation.
type Program struct {
	Doc           *dom.Document
	Ctl           *board.Controller
	Width, Height int
	Log           *zap.Logger
	ShowDebug     bool

	boxes                  []Box
	hovered                *dom.Element
	LastMouseX, LastMouseY int
}

func (p *Program) Update() error {
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	p.boxes = Layout(p.Doc, p.Width, p.Height)
	mx, my := ebiten.CursorPosition()

	if mx != p.LastMouseX || my != p.LastMouseY {
		p.setHovered(hoverTarget(p.boxes, mx, my), mx, my)
		p.LastMouseX = mx
		p.LastMouseY = my
	}

	// A press anywhere is routed to the topmost element under the cursor;
	// the controller decides by live zone what it means. The right mouse
	// button maps to the same press, standing in for the browser's
	// context click with default handling suppressed.
	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			target := TopmostAt(p.boxes, mx, my)
			if target == nil {
				continue
			}
			button := board.MouseButtonLeft
			if btn == ebiten.MouseButtonRight {
				button = board.MouseButtonRight
			}
			p.Ctl.Dispatch(board.MouseEvent{
				X: mx, Y: my, Action: board.MousePress, Button: button, Target: target,
			})
			// Layout may have changed under the cursor; the hover
			// transition that implies still gets its leave/enter pair.
			p.boxes = Layout(p.Doc, p.Width, p.Height)
			p.setHovered(hoverTarget(p.boxes, mx, my), mx, my)
		}
	}
	return nil
}

// setHovered dispatches the leave/enter pair a hover transition implies
// before recording the new hovered element, so the preview slot always
// tracks what is actually under the cursor.
func (p *Program) setHovered(target *dom.Element, x, y int) {
	if target == p.hovered {
		return
	}
	if p.hovered != nil {
		p.Ctl.Dispatch(board.MouseEvent{
			X: x, Y: y, Action: board.MouseLeave, Target: p.hovered,
		})
	}
	if target != nil {
		p.Ctl.Dispatch(board.MouseEvent{
			X: x, Y: y, Action: board.MouseEnter, Target: target,
		})
	}
	p.hovered = target
}

// hoverTarget picks the topmost card image under the cursor. Only card
// thumbnails take part in hover, matching the preview contract.
func hoverTarget(boxes []Box, x, y int) *dom.Element {
	el := TopmostAt(boxes, x, y)
	if el == nil {
		return nil
	}
	if el.Tag == "img" && el.Closest(".card") != nil {
		return el
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	drawBoxes(screen, p.boxes)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}
