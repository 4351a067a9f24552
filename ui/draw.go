package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	tableColor   = color.RGBA{0x1d, 0x3b, 0x24, 0xff}
	zoneColor    = color.RGBA{0x16, 0x2c, 0x1b, 0xff}
	zoneBorder   = color.RGBA{0x3f, 0x5a, 0x42, 0xff}
	cardColor    = color.RGBA{0xe8, 0xdc, 0xc0, 0xff}
	tappedColor  = color.RGBA{0xc9, 0xb8, 0x92, 0xff}
	cardBorder   = color.RGBA{0x33, 0x2b, 0x1d, 0xff}
	previewColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	menuColor    = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	menuBorder   = color.RGBA{0x55, 0x55, 0x55, 0xff}
	inkColor     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	labelColor   = color.RGBA{0x9c, 0xb5, 0x9e, 0xff}
	lightColor   = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

func drawBoxes(screen *ebiten.Image, boxes []Box) {
	screen.Fill(tableColor)
	face := basicfont.Face7x13
	for _, box := range boxes {
		x := float32(box.Rect.Min.X)
		y := float32(box.Rect.Min.Y)
		w := float32(box.Rect.Dx())
		h := float32(box.Rect.Dy())
		switch {
		case box.El.HasClass("zone"):
			vector.DrawFilledRect(screen, x, y, w, h, zoneColor, false)
			vector.StrokeRect(screen, x, y, w, h, 1, zoneBorder, false)
			text.Draw(screen, box.El.Attr("id"), face, box.Rect.Min.X+4, box.Rect.Min.Y+12, labelColor)
		case box.El.HasClass("card"):
			fill := cardColor
			if box.El.HasClass("tapped") {
				fill = tappedColor
			}
			vector.DrawFilledRect(screen, x, y, w, h, fill, false)
			vector.StrokeRect(screen, x, y, w, h, 1, cardBorder, false)
			text.Draw(screen, box.El.Attr("name"), face, box.Rect.Min.X+4, box.Rect.Min.Y+14, inkColor)
		case box.El.Attr("id") == "preview":
			if box.El.Style("display") == "none" {
				continue
			}
			vector.DrawFilledRect(screen, x, y, w, h, previewColor, false)
			vector.StrokeRect(screen, x, y, w, h, 1, zoneBorder, false)
		case box.El.Tag == "img" && box.El.Parent() != nil && box.El.Parent().Attr("id") == "preview":
			text.Draw(screen, box.El.Attr("src"), face, box.Rect.Min.X+4, box.Rect.Min.Y+16, lightColor)
		case box.El.HasClass("card-menu"):
			vector.DrawFilledRect(screen, x, y, w, h, menuColor, false)
			vector.StrokeRect(screen, x, y, w, h, 1, menuBorder, false)
		case box.El.HasClass("card-menu-item"):
			text.Draw(screen, box.El.Text, face, box.Rect.Min.X+8, box.Rect.Min.Y+16, inkColor)
		}
	}
}
