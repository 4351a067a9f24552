package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtgboard/tabletop/board"
	"github.com/mtgboard/tabletop/dom"
	"github.com/mtgboard/tabletop/setup"
)

const (
	testW = 960
	testH = 720
)

func buildDoc(t *testing.T) *dom.Document {
	t.Helper()
	layout, err := setup.NewLayoutParser().Parse(`hand:
	"Dragon Whelp" dragon_whelp.jpg
	"Counterspell" counterspell.jpg
	creatures:
	"Shivan Dragon" shivan_dragon.jpg
	lands:
	"Forest" forest.jpg tapped`)
	require.NoError(t, err)
	doc, err := layout.Build()
	require.NoError(t, err)
	return doc
}

func boxOf(boxes []Box, el *dom.Element) (Box, bool) {
	for _, b := range boxes {
		if b.El == el {
			return b, true
		}
	}
	return Box{}, false
}

func TestLayoutPlacesCardsInsideTheirZone(t *testing.T) {
	doc := buildDoc(t)
	boxes := Layout(doc, testW, testH)

	hand := doc.GetElementByID("hand")
	handBox, ok := boxOf(boxes, hand)
	require.True(t, ok)

	cards := doc.FindAll("#hand .card")
	require.Len(t, cards, 2)
	var prev Box
	for i, card := range cards {
		b, ok := boxOf(boxes, card)
		require.True(t, ok)
		assert.True(t, b.Rect.In(handBox.Rect), "card outside hand zone")
		if i > 0 {
			assert.True(t, b.Rect.Min.X >= prev.Rect.Max.X, "cards overlap")
		}
		prev = b
	}
}

func TestLayoutTurnsTappedCardsSideways(t *testing.T) {
	doc := buildDoc(t)
	boxes := Layout(doc, testW, testH)

	forest := doc.FindAll("#lands .card")[0]
	require.True(t, forest.HasClass("tapped"))
	b, ok := boxOf(boxes, forest)
	require.True(t, ok)
	assert.Greater(t, b.Rect.Dx(), b.Rect.Dy())

	dragon := doc.FindAll("#creatures .card")[0]
	b, ok = boxOf(boxes, dragon)
	require.True(t, ok)
	assert.Greater(t, b.Rect.Dy(), b.Rect.Dx())
}

func TestLayoutPutsMenuOnTop(t *testing.T) {
	doc := buildDoc(t)
	ctl := board.New(doc)

	img := doc.FindAll("#hand .card img")[0]
	ctl.Dispatch(board.MouseEvent{X: 100, Y: 600, Action: board.MousePress, Target: img})
	require.NotNil(t, ctl.Menu())

	boxes := Layout(doc, testW, testH)
	menuBox, ok := boxOf(boxes, ctl.Menu())
	require.True(t, ok)
	assert.Equal(t, 100, menuBox.Rect.Min.X)
	assert.Equal(t, 600, menuBox.Rect.Min.Y)

	// The menu covers the hand but its items win the hit test.
	top := TopmostAt(boxes, 108, 608)
	require.NotNil(t, top)
	assert.True(t, top.HasClass("card-menu-item"))
}

func TestHoverTargetOnlyMatchesCardImages(t *testing.T) {
	doc := buildDoc(t)
	boxes := Layout(doc, testW, testH)

	img := doc.FindAll("#creatures .card img")[0]
	b, ok := boxOf(boxes, img)
	require.True(t, ok)
	assert.Equal(t, img, hoverTarget(boxes, b.Rect.Min.X+1, b.Rect.Min.Y+1))

	// A point in the zone but outside any card hovers nothing.
	zoneBox, ok := boxOf(boxes, doc.GetElementByID("creatures"))
	require.True(t, ok)
	assert.Nil(t, hoverTarget(boxes, zoneBox.Rect.Max.X-2, zoneBox.Rect.Max.Y-2))
}

func TestLayoutShowsPreviewImageOnlyWhenVisible(t *testing.T) {
	doc := buildDoc(t)
	ctl := board.New(doc)
	img := doc.FindAll("#creatures .card img")[0]

	boxes := Layout(doc, testW, testH)
	assert.Empty(t, doc.GetElementByID("preview").Children())

	ctl.Dispatch(board.MouseEvent{Action: board.MouseEnter, Target: img})
	boxes = Layout(doc, testW, testH)
	preview := doc.GetElementByID("preview")
	require.Len(t, preview.Children(), 1)
	_, ok := boxOf(boxes, preview.Children()[0])
	assert.True(t, ok, "visible preview image gets a box")

	ctl.Dispatch(board.MouseEvent{Action: board.MouseLeave, Target: img})
	boxes = Layout(doc, testW, testH)
	assert.Empty(t, preview.Children())
}
